package report

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/fleetcalc/internal/game/spotting"
	"github.com/udisondev/fleetcalc/internal/model"
	"github.com/udisondev/fleetcalc/internal/testutil"
)

func newPlan(t *testing.T) *model.Plan {
	t.Helper()
	fx := testutil.Fixtures

	main := testutil.NewFleet(t, "Main",
		testutil.NewShip(t, fx.LightCruiser,
			testutil.Equip(fx.TwinGun),
			testutil.Equip(fx.TwinGun),
			testutil.EquipPlane(fx.Recon, 4),
		),
		testutil.NewShip(t, fx.Destroyer, testutil.Equip(fx.Drum)),
	)
	expedition := testutil.NewFleet(t, "Expedition",
		testutil.NewShip(t, fx.Destroyer,
			testutil.EquipStars(fx.Daihatsu, 4),
			testutil.Equip(fx.Toku),
		),
	)

	plan, err := model.NewPlan([]*model.Fleet{main, expedition}, 0, false)
	require.NoError(t, err)
	return plan
}

func TestBuild(t *testing.T) {
	r, err := Build(context.Background(), newPlan(t), Options{AirState: spotting.AirStateSupremacy})
	require.NoError(t, err)

	require.Len(t, r.Fleets, 2)
	main := r.Fleets[0]
	assert.Equal(t, "Main", main.Name)
	require.Len(t, main.Ships, 2)

	tama := main.Ships[0]
	assert.Equal(t, 20, tama.Firepower)
	assert.InDelta(t, 2*math.Sqrt(2), tama.FitBonus, 1e-12)
	assert.Equal(t, 1.0, tama.AmmoPenalty)
	assert.InDelta(t, 20+2*math.Sqrt(2)+5, tama.ShellingPower, 1e-12)
	assert.InDelta(t, 10+5*2, tama.FleetLosFactor, 1e-12)
	assert.Greater(t, tama.SpottingRate, 0.0, "two main guns and a recon plane enable double attack")
	assert.Len(t, tama.Fingerprint, 32)

	mutsuki := main.Ships[1]
	assert.Equal(t, 0.0, mutsuki.SpottingRate)

	// S = 20 + 4 = 24 → floor(4.899 + 2.4) = 7
	assert.Equal(t, 7, main.LosModifier)
	assert.Equal(t, model.TP{S: 2 + 10, A: 8}, main.TransportPoint)
	assert.Equal(t, main.TransportPoint, r.TransportPoint, "plan TP counts the main fleet only")

	// B1 = 10, stars = 10 × 0.01 × 2 = 0.2, toku(1) = 2
	exp := r.Fleets[1]
	assert.InDelta(t, 12.2, exp.ExpeditionBonus, 1e-9)
	assert.Equal(t, model.TP{S: 21, A: 14}, exp.TransportPoint)
}

func TestBuild_AirStateOtherDisablesSpotting(t *testing.T) {
	r, err := Build(context.Background(), newPlan(t), Options{AirState: spotting.AirStateOther})
	require.NoError(t, err)

	for _, f := range r.Fleets {
		for _, s := range f.Ships {
			assert.Zero(t, s.SpottingRate, s.Name)
		}
	}
}

func TestBuild_FingerprintTracksGear(t *testing.T) {
	r, err := Build(context.Background(), newPlan(t), Options{})
	require.NoError(t, err)

	mainDD := r.Fleets[0].Ships[1]
	expDD := r.Fleets[1].Ships[0]
	assert.NotEqual(t, mainDD.Fingerprint, expDD.Fingerprint, "different gear")
}

func TestBuild_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, newPlan(t), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWrite(t *testing.T) {
	r, err := Build(context.Background(), newPlan(t), Options{AirState: spotting.AirStateSuperiority})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "Fleet 1: Main (main)")
	assert.Contains(t, out, "Fleet 2: Expedition\n")
	assert.Contains(t, out, "Tama")
	assert.Contains(t, out, "LoS modifier: 7")
	assert.Contains(t, out, "Expedition bonus: 12.2%")
	assert.Contains(t, out, "Plan TP: S 12 / A 8")
}

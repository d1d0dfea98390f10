// Package mathutil содержит числовые примитивы, общие для всех формул:
// объединение независимых вероятностей, округление без артефактов float64
// и ограниченный генератор случайных целых.
package mathutil

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidProbability is returned when a probability falls outside [0,1] or is NaN.
var ErrInvalidProbability = errors.New("probability out of range [0,1]")

// UnionProbability returns the probability that at least one of several
// independent events occurs.
// Formula: 1 - Π(1 - p_i)
//
// Inputs are assumed valid (see ValidateProbability). Empty input yields 0.
func UnionProbability(ps []float64) float64 {
	miss := 1.0
	for _, p := range ps {
		miss *= 1 - p
	}
	return 1 - miss
}

// ValidateProbability проверяет, что p лежит в [0,1].
func ValidateProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidProbability, p)
	}
	return nil
}

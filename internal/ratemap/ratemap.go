// Package ratemap accumulates independent per-cause probabilities and reports
// the combined probability that at least one cause fires.
package ratemap

import (
	"fmt"

	"github.com/udisondev/fleetcalc/internal/mathutil"
)

// RateMap maps a cause to its probability. Keys keep insertion order.
// Total and Complement are recomputed from the current contents on every call.
//
// Not safe for concurrent mutation; build one per computation.
type RateMap[K comparable] struct {
	index map[K]int
	keys  []K
	rates []float64
}

// New creates an empty RateMap.
func New[K comparable]() *RateMap[K] {
	return &RateMap[K]{index: make(map[K]int)}
}

// Set inserts or replaces the probability for key.
// Replacing keeps the key's original position and does not compound.
func (m *RateMap[K]) Set(key K, p float64) error {
	if err := mathutil.ValidateProbability(p); err != nil {
		return fmt.Errorf("setting rate for %v: %w", key, err)
	}
	if m.index == nil {
		m.index = make(map[K]int)
	}
	if i, ok := m.index[key]; ok {
		m.rates[i] = p
		return nil
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.rates = append(m.rates, p)
	return nil
}

// Get returns the probability stored for key.
func (m *RateMap[K]) Get(key K) (float64, bool) {
	i, ok := m.index[key]
	if !ok {
		return 0, false
	}
	return m.rates[i], true
}

// Len returns the number of causes.
func (m *RateMap[K]) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *RateMap[K]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

// Total returns the probability that at least one cause fires.
// Formula: 1 - Π(1 - p_i)
func (m *RateMap[K]) Total() float64 {
	return mathutil.UnionProbability(m.rates)
}

// Complement returns the probability that no cause fires.
func (m *RateMap[K]) Complement() float64 {
	return 1 - m.Total()
}

// Remove deletes key. Returns false if the key was absent.
func (m *RateMap[K]) Remove(key K) bool {
	i, ok := m.index[key]
	if !ok {
		return false
	}
	delete(m.index, key)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.rates = append(m.rates[:i], m.rates[i+1:]...)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j]] = j
	}
	return true
}

// Clear removes all causes.
func (m *RateMap[K]) Clear() {
	clear(m.index)
	m.keys = m.keys[:0]
	m.rates = m.rates[:0]
}

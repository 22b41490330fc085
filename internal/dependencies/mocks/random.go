package mocks

import (
	"github.com/skyfleet/starhunt/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// BetweenResults is a queue of results to return from Between
	BetweenResults []int
	betweenIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// Between returns the next queued result, or min if none remaining
func (r *MockRandom) Between(min, max int) int {
	if r.betweenIndex >= len(r.BetweenResults) {
		return min
	}
	result := r.BetweenResults[r.betweenIndex]
	r.betweenIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueBetween adds values to the Between result queue
func (r *MockRandom) QueueBetween(values ...int) {
	r.BetweenResults = append(r.BetweenResults, values...)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.BetweenResults = nil
	r.betweenIndex = 0
}

package mocks

import (
	"github.com/mcoot/hangmanbot/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// IntnCalls counts every Intn call, including ones past the end of the queue
	IntnCalls int

	// Fallback is returned from Intn once the queue is drained
	Fallback int

	// StringResults is a queue of results to return from String
	StringResults []string
	stringIndex   int

	// Factories counts how many times Factory handed out this mock
	Factories int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or Fallback if none remaining
func (r *MockRandom) Intn(n int) int {
	r.IntnCalls++
	if r.intnIndex >= len(r.IntnResults) {
		return r.Fallback
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// String returns the next queued result, or empty string if none remaining
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex >= len(r.StringResults) {
		return ""
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// Factory returns a random.Factory that always hands out this mock, so a
// single queue drives every stream the code under test creates
func (r *MockRandom) Factory() random.Factory {
	return func() random.Random {
		r.Factories++
		return r
	}
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}

// Reset clears all queued results and counters
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.IntnCalls = 0
	r.Fallback = 0
	r.StringResults = nil
	r.stringIndex = 0
	r.Factories = 0
}

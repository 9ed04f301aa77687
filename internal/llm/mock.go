package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResult is a canned outcome for the MockGenerator.
type MockResult struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockGenerator is a deterministic Generator for tests. It replays
// canned results in FIFO order and records every request.
type MockGenerator struct {
	mu      sync.Mutex
	results []MockResult
	Calls   []Request
}

// NewMockGenerator creates a MockGenerator with the given canned
// results.
func NewMockGenerator(results ...MockResult) *MockGenerator {
	return &MockGenerator{results: results}
}

// Generate returns the next canned result, or UnavailableError when
// the queue is empty.
func (m *MockGenerator) Generate(_ context.Context, req Request) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.results) == 0 {
		return nil, &UnavailableError{}
	}

	res := m.results[0]
	m.results = m.results[1:]

	if res.Err != nil {
		return nil, res.Err
	}

	return &Result{
		Content: res.Content,
		Usage:   res.Usage,
		Model:   "mock",
	}, nil
}

func (m *MockGenerator) Name() string  { return "mock" }
func (m *MockGenerator) Model() string { return "mock" }

// Queue appends a canned result.
func (m *MockGenerator) Queue(res MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, res)
}

// CallCount returns the number of Generate calls made.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

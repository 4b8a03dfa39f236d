package interview

import (
	"context"
	"sync"
)

// stubProvider is a scripted completion provider. Responses are consumed in
// order; once exhausted, fallback is returned. A non-nil err fails every
// call.
type stubProvider struct {
	mu        sync.Mutex
	responses []string
	fallback  string
	err       error
	calls     int
}

func (s *stubProvider) Complete(_ context.Context, _, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) > 0 {
		next := s.responses[0]
		s.responses = s.responses[1:]
		return next, nil
	}
	return s.fallback, nil
}

func (s *stubProvider) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var sampleAnswers = []string{
	"snacks",
	"20s",
	"female",
	"new product",
	"none",
}

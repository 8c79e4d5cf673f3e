// Package session tracks the state of one interactive calculation: the
// selected profile, the current step and the last report. A Session is
// owned by the CLI or TUI controller; the calculator never sees it.
package session

import (
	"sync"

	"github.com/rshade/pegada/internal/calculator"
)

// DefaultTotalSteps is the number of steps of the report viewer.
const DefaultTotalSteps = 3

const percentBase = 100

// Session is safe for concurrent use.
type Session struct {
	mu         sync.Mutex
	profile    calculator.Profile
	step       int
	totalSteps int
	last       *calculator.Report
}

// New returns a session at step 1 of totalSteps. Values below 1 select
// DefaultTotalSteps.
func New(totalSteps int) *Session {
	if totalSteps < 1 {
		totalSteps = DefaultTotalSteps
	}
	return &Session{step: 1, totalSteps: totalSteps}
}

// Select sets the profile and rewinds to step 1.
func (s *Session) Select(p calculator.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	s.step = 1
}

// Profile returns the selected profile, empty before Select.
func (s *Session) Profile() calculator.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Step returns the current step, starting at 1.
func (s *Session) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// TotalSteps returns the number of steps.
func (s *Session) TotalSteps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalSteps
}

// Next advances one step, stopping at the last. It reports whether the
// step changed.
func (s *Session) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step >= s.totalSteps {
		return false
	}
	s.step++
	return true
}

// Prev goes back one step, stopping at 1. It reports whether the step
// changed.
func (s *Session) Prev() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step <= 1 {
		return false
	}
	s.step--
	return true
}

// Progress returns the completion percentage of the current step.
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(s.step) / float64(s.totalSteps) * percentBase
}

// Record stores r as the last report.
func (s *Session) Record(r calculator.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &r
}

// LastReport returns the last recorded report, if any.
func (s *Session) LastReport() (calculator.Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return calculator.Report{}, false
	}
	return *s.last, true
}

// Reset clears the profile and the last report and rewinds to step 1.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = ""
	s.step = 1
	s.last = nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "sync"

// StatusRegion is the form's single error region. It holds the outcome of
// the most recent submission only and is visible exactly when it holds a
// message.
//
// Submissions run outside the Bubble Tea event loop, so access is guarded by
// a mutex. Concurrent submissions are not ordered: the last write wins.
type StatusRegion struct {
	mu      sync.Mutex
	message string
	visible bool
}

func NewStatusRegion() *StatusRegion {
	return &StatusRegion{}
}

// SetErrorState shows message, or clears and hides the region when message
// is empty.
func (s *StatusRegion) SetErrorState(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.message = message
	s.visible = message != ""
}

// State returns the current message and visibility.
func (s *StatusRegion) State() (message string, visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.message, s.visible
}

// View renders the error box, or nothing when the region is hidden.
func (s *StatusRegion) View() string {
	message, visible := s.State()
	if !visible {
		return ""
	}
	return errorBoxStyle.Render(message)
}

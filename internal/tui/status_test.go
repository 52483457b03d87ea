package tui

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusRegion_StartsHidden(t *testing.T) {
	s := NewStatusRegion()

	message, visible := s.State()
	assert.Empty(t, message)
	assert.False(t, visible)
	assert.Empty(t, s.View())
}

func TestStatusRegion_ShowsMessage(t *testing.T) {
	s := NewStatusRegion()

	s.SetErrorState("not found")

	message, visible := s.State()
	assert.Equal(t, "not found", message)
	assert.True(t, visible)
	assert.Contains(t, s.View(), "not found")
}

func TestStatusRegion_OverwritesPreviousMessage(t *testing.T) {
	s := NewStatusRegion()

	s.SetErrorState("not found")
	s.SetErrorState("rate limited")

	message, _ := s.State()
	assert.Equal(t, "rate limited", message)
	assert.NotContains(t, s.View(), "not found")
}

func TestStatusRegion_ClearIsIdempotent(t *testing.T) {
	s := NewStatusRegion()
	s.SetErrorState("Tweet cannot be empty.")

	s.SetErrorState("")
	firstMessage, firstVisible := s.State()
	s.SetErrorState("")
	secondMessage, secondVisible := s.State()

	assert.Equal(t, firstMessage, secondMessage)
	assert.Equal(t, firstVisible, secondVisible)
	assert.Empty(t, secondMessage)
	assert.False(t, secondVisible)
	assert.Empty(t, s.View())
}

func TestStatusRegion_ConcurrentWrites(t *testing.T) {
	s := NewStatusRegion()
	messages := []string{"a", "b", ""}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(message string) {
			defer wg.Done()
			s.SetErrorState(message)
		}(messages[i%len(messages)])
	}
	wg.Wait()

	message, visible := s.State()
	assert.Contains(t, messages, message)
	assert.Equal(t, message != "", visible)
}

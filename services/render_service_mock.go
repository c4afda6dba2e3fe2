package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockRenderer is a mock implementation of Renderer for testing.
type MockRenderer struct {
	mu      sync.Mutex
	counter int
	prompts []string
	edits   []string

	// GenerateErr, when set, makes every Generate call fail.
	GenerateErr error
	// EditErr, when set, makes every Edit call fail.
	EditErr error
	// FailPromptContaining makes Generate fail only for prompts that
	// contain the given substring, for single-angle failure scenarios.
	FailPromptContaining string
}

// NewMockRenderer creates a new mock renderer.
func NewMockRenderer() *MockRenderer {
	return &MockRenderer{}
}

// Generate returns a unique fake data URL and records the prompt.
func (m *MockRenderer) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	if m.FailPromptContaining != "" && strings.Contains(prompt, m.FailPromptContaining) {
		return "", fmt.Errorf("mock generation failure for %q", m.FailPromptContaining)
	}

	m.counter++
	m.prompts = append(m.prompts, prompt)
	return fmt.Sprintf("data:image/png;base64,mockimage%d", m.counter), nil
}

// Edit returns a fake edited data URL and records the instruction.
func (m *MockRenderer) Edit(ctx context.Context, imageDataURL, instruction string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.EditErr != nil {
		return "", m.EditErr
	}

	m.counter++
	m.edits = append(m.edits, instruction)
	return fmt.Sprintf("data:image/png;base64,edited%d", m.counter), nil
}

// Prompts returns the generation prompts seen so far (for assertions).
func (m *MockRenderer) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// Edits returns the edit instructions seen so far (for assertions).
func (m *MockRenderer) Edits() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.edits))
	copy(out, m.edits)
	return out
}

package shell

import (
	"strings"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
)

var _ dogewifi.Runner = &MockRunner{}

// MockRunner records every command it is given and replies with
// pre-programmed output. Commands nobody expected return "".
type MockRunner struct {
	Calls []string

	responses map[string][]string
}

// Expect queues output for an exact command string. Queued
// replies are handed out in order; the last one repeats.
func (m *MockRunner) Expect(command string, output ...string) *MockRunner {
	if m.responses == nil {
		m.responses = make(map[string][]string)
	}
	if len(output) == 0 {
		output = []string{""}
	}
	m.responses[command] = append(m.responses[command], output...)
	return m
}

func (m *MockRunner) Run(command string) string {
	m.Calls = append(m.Calls, command)

	queued, ok := m.responses[command]
	if !ok || len(queued) == 0 {
		return ""
	}
	out := queued[0]
	if len(queued) > 1 {
		m.responses[command] = queued[1:]
	}
	return out
}

func (m *MockRunner) WasCalled(command string) bool {
	return m.CallCount(command) > 0
}

func (m *MockRunner) CallCount(command string) int {
	count := 0
	for _, c := range m.Calls {
		if c == command {
			count++
		}
	}
	return count
}

// CalledWithPrefix reports every recorded command starting with prefix.
func (m *MockRunner) CalledWithPrefix(prefix string) []string {
	var out []string
	for _, c := range m.Calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

package system

import (
	"fmt"
	"sync"
)

// MockCall records a single command invocation made through the mock runner.
type MockCall struct {
	Name  string
	Args  []string
	Input string
}

// MockResponse is the canned result returned for a command name.
type MockResponse struct {
	Output string
	Err    error
}

// MockCommandRunner is a CommandRunner for tests. It records every call and
// returns canned responses keyed by command name.
type MockCommandRunner struct {
	mu        sync.Mutex
	Calls     []MockCall
	Responses map[string]MockResponse
}

// NewMockCommandRunner creates a new MockCommandRunner.
func NewMockCommandRunner() *MockCommandRunner {
	return &MockCommandRunner{
		Responses: make(map[string]MockResponse),
	}
}

// Run records the call and returns the canned response for name.
func (m *MockCommandRunner) Run(name string, args ...string) (string, error) {
	return m.RunWithInput("", name, args...)
}

// RunWithInput records the call, including stdin, and returns the canned
// response for name.
func (m *MockCommandRunner) RunWithInput(input string, name string, args ...string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Name: name, Args: args, Input: input})

	if resp, ok := m.Responses[name]; ok {
		return resp.Output, resp.Err
	}
	return "", nil
}

// CallsTo returns all recorded calls for the given command name.
func (m *MockCommandRunner) CallsTo(name string) []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	var calls []MockCall
	for _, c := range m.Calls {
		if c.Name == name {
			calls = append(calls, c)
		}
	}
	return calls
}

// FailWith configures name to fail with the given message.
func (m *MockCommandRunner) FailWith(name, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[name] = MockResponse{Err: fmt.Errorf("%s", message)}
}

package testutil

import (
	"context"
	"strings"
)

// GitCall records a single git invocation
type GitCall struct {
	Dir  string
	Args []string
}

// RecordingGitRunner implements git.Runner, recording invocations and
// replaying canned results keyed by subcommand.
type RecordingGitRunner struct {
	Calls []GitCall

	// Outputs maps a space-joined argument prefix to its canned output
	Outputs map[string]string

	// Errors maps a space-joined argument prefix to an error to return
	Errors map[string]error
}

// NewRecordingGitRunner creates an empty recording runner
func NewRecordingGitRunner() *RecordingGitRunner {
	return &RecordingGitRunner{
		Outputs: make(map[string]string),
		Errors:  make(map[string]error),
	}
}

// Run records the call and replays any configured result
func (r *RecordingGitRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	r.Calls = append(r.Calls, GitCall{Dir: dir, Args: args})

	joined := strings.Join(args, " ")
	for prefix, err := range r.Errors {
		if strings.HasPrefix(joined, prefix) {
			return r.Outputs[prefix], err
		}
	}
	for prefix, out := range r.Outputs {
		if strings.HasPrefix(joined, prefix) {
			return out, nil
		}
	}

	return "", nil
}

// CommandLines returns each recorded call as a space-joined string
func (r *RecordingGitRunner) CommandLines() []string {
	lines := make([]string, len(r.Calls))
	for i, call := range r.Calls {
		lines[i] = strings.Join(call.Args, " ")
	}
	return lines
}

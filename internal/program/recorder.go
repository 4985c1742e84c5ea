package program

import (
	"context"
	"strings"
)

// Call is one recorded invocation.
type Call struct {
	Name string
	Args []string
}

// String renders the call the way a shell user would type it.
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Recorder is a Runner that records calls instead of spawning processes.
// Err, when set, is returned from every Run.
type Recorder struct {
	Calls []Call
	Err   error
}

// Run records the call.
func (r *Recorder) Run(_ context.Context, name string, args ...string) error {
	copied := make([]string, len(args))
	copy(copied, args)
	r.Calls = append(r.Calls, Call{Name: name, Args: copied})
	return r.Err
}

// Last returns the most recent call, or a zero Call.
func (r *Recorder) Last() Call {
	if len(r.Calls) == 0 {
		return Call{}
	}
	return r.Calls[len(r.Calls)-1]
}

package report

import (
	"github.com/cockroachdb/errors"
)

// Status is the outcome of checking one argument.
type Status int

const (
	// StatusAccepted means the handler returned a path.
	StatusAccepted Status = iota
	// StatusRejected means the handler returned an error.
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusAccepted:
		return "accepted"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "accepted":
		*s = StatusAccepted
	case "rejected":
		*s = StatusRejected
	default:
		return errors.Newf("unknown status %q", text)
	}
	return nil
}

// Entry records one checked argument.
type Entry struct {
	// Kind is the path check that was applied.
	Kind string `json:"kind"`
	// Arg is the argument as given.
	Arg string `json:"arg"`
	// Status says whether the argument was accepted.
	Status Status `json:"status"`
	// Path is the normalized path of an accepted argument.
	Path string `json:"path,omitempty"`
	// Message is the rejection message.
	Message string `json:"message,omitempty"`
}

// Result aggregates entries in the order they were checked.
type Result struct {
	Entries []Entry `json:"entries"`
}

// Accept records an argument that passed.
func (r *Result) Accept(kind, arg, path string) {
	r.Entries = append(r.Entries, Entry{
		Kind:   kind,
		Arg:    arg,
		Status: StatusAccepted,
		Path:   path,
	})
}

// Reject records an argument that failed with err.
func (r *Result) Reject(kind, arg string, err error) {
	e := Entry{Kind: kind, Arg: arg, Status: StatusRejected}
	if err != nil {
		e.Message = err.Error()
	}
	r.Entries = append(r.Entries, e)
}

// HasRejections reports whether any entry was rejected.
func (r *Result) HasRejections() bool {
	return len(r.Rejected()) > 0
}

// Accepted returns the accepted entries.
func (r *Result) Accepted() []Entry {
	return r.filter(StatusAccepted)
}

// Rejected returns the rejected entries.
func (r *Result) Rejected() []Entry {
	return r.filter(StatusRejected)
}

func (r *Result) filter(s Status) []Entry {
	if r == nil {
		return nil
	}
	var res []Entry
	for _, e := range r.Entries {
		if e.Status == s {
			res = append(res, e)
		}
	}
	return res
}

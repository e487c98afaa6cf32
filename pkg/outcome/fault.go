package outcome

import "errors"

const absentUnwrapMessage = "called unwrap on an absent value"

// Fault marks a violated container contract, such as unwrapping an
// absent value. It is raised by panic and is inert data once constructed.
type Fault struct {
	msg string
}

func NewFault(msg string) *Fault {
	return &Fault{msg: msg}
}

func (f *Fault) Error() string {
	return f.msg
}

// AsFault classifies a recovered panic payload. It returns the Fault and
// true when the payload is a *Fault, or an error wrapping one.
func AsFault(v any) (*Fault, bool) {
	switch p := v.(type) {
	case *Fault:
		return p, true
	case error:
		var f *Fault
		if errors.As(p, &f) {
			return f, true
		}
	}
	return nil, false
}

// IsFault reports whether a recovered panic payload originated from a
// container contract violation.
func IsFault(v any) bool {
	_, ok := AsFault(v)
	return ok
}

package status

import "fmt"

// Status is the outcome of an access token check or a gated operation.
type Status int

const (
	FormatNotSupported Status = 103
	OK                 Status = 200
	InvalidKey         Status = 400
	DecodeFailed       Status = 401
	Forbidden          Status = 403
	NotFound           Status = 404
	Timeout            Status = 408
)

// Message maps a status code to the message returned to callers.
// 401 has no dedicated entry and reports "Unknown Error." like any other code.
func Message(s Status) string {
	switch s {
	case FormatNotSupported:
		return "Date format is not supported."
	case OK:
		return "Date matches today's date."
	case Timeout:
		return "Request or operation timed out."
	case InvalidKey:
		return "Invalid key provided."
	case Forbidden:
		return "Forbidden."
	default:
		return "Unknown Error."
	}
}

func (s Status) Message() string {
	return Message(s)
}

// OK reports whether the caller may proceed.
func (s Status) OK() bool {
	return s == OK
}

func (s Status) String() string {
	return fmt.Sprintf("%d %s", int(s), Message(s))
}

package order

import "errors"

var ErrInvalidStatus = errors.New("invalid order status")

// Status is a closed set. Any switch over it must name every value.
type Status uint8

const (
	StatusPending Status = iota + 1
	StatusPaid
	StatusExpired
	StatusCancelled
)

var statusNames = map[Status]string{
	StatusPending:   "pending",
	StatusPaid:      "paid",
	StatusExpired:   "expired",
	StatusCancelled: "cancelled",
}

func ParseStatus(s string) (Status, error) {
	for st, name := range statusNames {
		if name == s {
			return st, nil
		}
	}
	return 0, ErrInvalidStatus
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusPending:
		return false
	case StatusPaid, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next is reachable from s in one step.
// Only pending has outgoing edges.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		switch next {
		case StatusPaid, StatusExpired, StatusCancelled:
			return true
		case StatusPending:
			return false
		default:
			return false
		}
	case StatusPaid, StatusExpired, StatusCancelled:
		return false
	default:
		return false
	}
}

// Priority orders statuses for owner listings: lower sorts first.
func (s Status) Priority() int {
	switch s {
	case StatusPending:
		return 0
	case StatusPaid:
		return 1
	case StatusExpired:
		return 2
	case StatusCancelled:
		return 3
	default:
		return 4
	}
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, ErrInvalidStatus
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	parsed, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

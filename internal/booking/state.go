package booking

import "time"

// State buckets bookings into temporal categories for list queries.
type State int

const (
	StateAll State = iota
	StateCurrent
	StatePast
	StateFuture
	StateWaiting
	StateRejected
)

// ParseState maps a state name to its State. The match is exact; any other
// value is an error so callers can surface it as a client error instead of
// silently falling back to ALL.
func ParseState(name string) (State, error) {
	switch name {
	case "ALL":
		return StateAll, nil
	case "CURRENT":
		return StateCurrent, nil
	case "PAST":
		return StatePast, nil
	case "FUTURE":
		return StateFuture, nil
	case "WAITING":
		return StateWaiting, nil
	case "REJECTED":
		return StateRejected, nil
	default:
		return StateAll, ErrUnknownState
	}
}

// Classify translates a temporal state at the given instant into the filter
// fragment a repository query can apply. CURRENT includes bookings whose
// start or end equals now. Scope (booker/owner) and paging are set by the
// caller.
func Classify(state State, now time.Time) Filter {
	switch state {
	case StateAll:
		return Filter{}
	case StateCurrent:
		return Filter{CurrentAt: &now}
	case StatePast:
		return Filter{EndBefore: &now}
	case StateFuture:
		return Filter{StartAfter: &now}
	case StateWaiting:
		return Filter{Status: StatusWaiting}
	case StateRejected:
		return Filter{Status: StatusRejected}
	}
	return Filter{}
}

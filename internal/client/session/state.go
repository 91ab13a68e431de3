package session

// State is the lifecycle state of a Store.
type State int

const (
	StateUninitialized State = iota
	StateRestoring
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Loading reports whether the state is still inconclusive.
func (s State) Loading() bool {
	return s == StateUninitialized || s == StateRestoring
}

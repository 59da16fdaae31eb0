package registry

import "fmt"

// State is the lifecycle position of a Registry.
type State uint8

const (
	Uninitialized State = iota
	Initializing
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// MarshalText renders the state name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a state name written by MarshalText.
func (s *State) UnmarshalText(text []byte) error {
	for _, st := range []State{Uninitialized, Initializing, Ready} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown state %q", text)
}

// control packs a generation counter and a State into one word so both can
// change in a single compare-and-swap.
type control uint64

func pack(gen uint64, s State) control {
	return control(gen<<2 | uint64(s))
}

func (c control) state() State {
	return State(c & 3)
}

func (c control) generation() uint64 {
	return uint64(c) >> 2
}

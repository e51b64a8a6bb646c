package rop

// State is the tag of a container. The zero value is StateEmpty.
type State uint8

const (
	StateEmpty State = iota
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateSuccess:
		return "Success"
	case StateFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}

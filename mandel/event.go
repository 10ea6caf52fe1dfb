package mandel

import "fmt"

// Event is an advisory progress report sent by Run. Consuming events has
// no effect on scheduling.
type Event interface {
	String() string
}

// State represents a change in the state of the computation.
type State int

const (
	Executing State = iota
	Quitting
)

func (s State) String() string {
	switch s {
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

// StateChange is sent when the computation starts and when it finishes.
type StateChange struct {
	CompletedRows int
	NewState      State
}

func (e StateChange) String() string {
	return fmt.Sprintf("%d rows complete: %v", e.CompletedRows, e.NewState)
}

// Progress is sent at a fixed interval of dispatched rows. Completed is
// the watermark at the time of sending: every row below it has been
// written to the field.
type Progress struct {
	Dispatched int
	Completed  int
	Total      int
}

func (e Progress) String() string {
	return fmt.Sprintf("done %d / %d rows (%d dispatched)", e.Completed, e.Total, e.Dispatched)
}

// Package models contains data types and constants for the message view.
package models

// PayloadField is the JSON field of the response payload that carries the message text.
const PayloadField = "message"

// State of a mounted view
type State int

const (
	// StateEmpty is the initial state: no successful response yet
	StateEmpty State = iota
	// StatePopulated is terminal for the life of the mounted view
	StatePopulated
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	default:
		return "unknown"
	}
}

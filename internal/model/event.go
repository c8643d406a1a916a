package model

import "encoding/json"

const (
	// EventCommandExecutionResult is emitted once per transaction with its execution outcome.
	EventCommandExecutionResult = "commandExecutionResult"
)

// Event is a block event. Topics[0] is the id of the emitting transaction for transaction events.
type Event struct {
	Module  string
	Name    string
	Data    json.RawMessage
	Topics  []string
	Height  uint64
	Index   uint32
	BlockID string
}

// HasTopic reports whether topic is one of the event topics.
func (e Event) HasTopic(topic string) bool {
	for _, t := range e.Topics {
		if t == topic {
			return true
		}
	}
	return false
}

// TransactionEvents returns the events emitted by the transaction with the given id.
func TransactionEvents(events []Event, txID string) []Event {
	var out []Event
	for _, e := range events {
		if len(e.Topics) > 0 && e.Topics[0] == txID {
			out = append(out, e)
		}
	}
	return out
}

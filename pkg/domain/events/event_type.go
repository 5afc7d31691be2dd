package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	EventTypeTransactionPosted EventType = "Transaction.Posted"
	EventTypeInterestRuleAdded EventType = "InterestRule.Added"
)

func (t EventType) String() string { return string(t) }

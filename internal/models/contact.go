// Package models defines the record shapes persisted by the LuxAuto stores.
// JSON tags match the layout the web front end wrote, so an existing store
// keeps working after a switchover.
package models

// Priority of a contact message.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Rank returns the sort weight: urgent > high > normal > low.
// Unknown values rank as normal.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityLow:
		return 1
	default:
		return 2
	}
}

// ContactStatus tracks the lifecycle of a contact message.
type ContactStatus string

const (
	StatusNew      ContactStatus = "new"
	StatusRead     ContactStatus = "read"
	StatusReplied  ContactStatus = "replied"
	StatusArchived ContactStatus = "archived"
)

// ContactMessage is one entry in the contacts collection.
//
// Reply is written by an external admin tool; messages carrying a non-empty
// Reply participate in the replies feed.
type ContactMessage struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Priority  Priority      `json:"priority"`
	Status    ContactStatus `json:"status"`
	CreatedAt string        `json:"createdAt"`
	Reply     string        `json:"reply,omitempty"`
}

func (m ContactMessage) RecordID() int64 { return m.ID }

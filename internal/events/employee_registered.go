package events

import "time"

const EmployeeRegisteredTopic = "hr.employee.registered.v1"

// EmployeeRegisteredEvent fans the self-registration out to the welcome
// mail worker. Delivery is best-effort: registration never waits on it.
type EmployeeRegisteredEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID uint      `json:"employee_id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	OccurredAt time.Time `json:"occurred_at"`
}

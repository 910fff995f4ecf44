package loan

// Status is the derived loan state; OVERDUE is a search filter, not a stored
// state (an overdue loan is an active loan whose due date has passed).
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusReturned Status = "RETURNED"
	StatusOverdue  Status = "OVERDUE"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusReturned, StatusOverdue:
		return true
	default:
		return false
	}
}

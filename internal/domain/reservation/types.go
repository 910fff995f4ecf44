package reservation

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusFulfilled Status = "FULFILLED"
	StatusCanceled  Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusFulfilled, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status is final. FULFILLED and CANCELED
// reservations never change again.
func (s Status) IsTerminal() bool {
	return s == StatusFulfilled || s == StatusCanceled
}

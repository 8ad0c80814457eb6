package slot

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsBookable reports whether a new reservation may claim the slot.
func (s Status) IsBookable() bool {
	return s == StatusAvailable
}

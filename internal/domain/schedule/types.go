package schedule

type AssignmentStatus string

const (
	AssignmentConfirmed AssignmentStatus = "confirmed"
	AssignmentDeclined  AssignmentStatus = "declined"
)

func (s AssignmentStatus) String() string {
	return string(s)
}

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentConfirmed, AssignmentDeclined:
		return true
	default:
		return false
	}
}

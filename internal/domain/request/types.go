package request

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

type Kind string

const (
	KindSwap    Kind = "swap"
	KindTimeOff Kind = "time_off"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	return k == KindSwap || k == KindTimeOff
}

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

func (d Decision) IsValid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

type TimeOffType string

const (
	TimeOffVacation TimeOffType = "vacation"
	TimeOffSick     TimeOffType = "sick"
	TimeOffPersonal TimeOffType = "personal"
	TimeOffUnpaid   TimeOffType = "unpaid"
)

func (t TimeOffType) IsValid() bool {
	switch t {
	case TimeOffVacation, TimeOffSick, TimeOffPersonal, TimeOffUnpaid:
		return true
	default:
		return false
	}
}

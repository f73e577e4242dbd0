package booking

// Status values match the wire representation stored in Postgres and
// published on booking events.
type Status string

const (
	StatusCreated  Status = "CREATED"
	StatusActive   Status = "ACTIVE"
	StatusCanceled Status = "CANCELED"
	StatusFinished Status = "FINISHED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusActive, StatusCanceled, StatusFinished:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leads out of s.
func (s Status) IsTerminal() bool {
	return s == StatusCanceled || s == StatusFinished
}

// BlockingStatuses are the statuses that count toward date-conflict
// detection: a vehicle with a CREATED or ACTIVE booking cannot take an
// overlapping reservation.
func BlockingStatuses() []Status {
	return []Status{StatusCreated, StatusActive}
}

package appointment

import "github.com/clinicdesk/clinic-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending    Status = "Pending"
	StatusConfirmed  Status = "Confirmed"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
)

// InitialStatus is the status every booking starts in.
func InitialStatus() Status {
	return StatusPending
}

// IsTerminal reports whether no further transition is legal from s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Confirmed derives the legacy confirmed flag: true once the doctor has
// accepted the booking, and it stays true through the rest of the lifecycle.
func (s Status) Confirmed() bool {
	switch s {
	case StatusConfirmed, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Transition guards
// ===============================

// CanConfirm: only a pending booking awaits doctor confirmation.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanStart: consultation requires an explicit prior confirmation.
func CanStart(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanComplete: completing requires a running consultation.
func CanComplete(current Status) error {
	if current != StatusInProgress {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanCancel: any non-terminal appointment may be cancelled.
func CanCancel(current Status) error {
	if current.IsTerminal() {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

package domain

import "time"

// WorkStatus is the per-employee dashboard status derived from the time log
// collection. It is never stored.
type WorkStatus string

const (
	StatusNotStarted    WorkStatus = "NOT_STARTED"
	StatusWorking       WorkStatus = "WORKING"
	StatusFinishedToday WorkStatus = "FINISHED_TODAY"
)

// DeriveWorkStatus computes the dashboard status for one employee as a pure
// function of the log collection and the reference time. An active log wins
// over anything else; otherwise a completed log dated today means the
// employee finished for the day.
func DeriveWorkStatus(employeeID string, logs []TimeLog, now time.Time) WorkStatus {
	finishedToday := false
	for _, l := range logs {
		if l.EmployeeID != employeeID {
			continue
		}
		if l.Status == TimeLogActive {
			return StatusWorking
		}
		if l.Status == TimeLogCompleted && SameDate(now, l.LogDate) {
			finishedToday = true
		}
	}
	if finishedToday {
		return StatusFinishedToday
	}
	return StatusNotStarted
}

// ActiveLogFor returns the employee's open session, if any.
func ActiveLogFor(employeeID string, logs []TimeLog) *TimeLog {
	for i := range logs {
		if logs[i].EmployeeID == employeeID && logs[i].Status == TimeLogActive {
			return &logs[i]
		}
	}
	return nil
}

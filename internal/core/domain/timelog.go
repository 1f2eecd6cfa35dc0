package domain

import "time"

// TimeLogStatus tags a time log as an open or closed session.
type TimeLogStatus string

const (
	TimeLogActive    TimeLogStatus = "active"
	TimeLogCompleted TimeLogStatus = "completed"
)

// StatusForClockOut derives the status tag from the presence of a clock-out.
// The invariant status == active <=> clockOut absent is maintained by always
// going through this helper when boundaries change.
func StatusForClockOut(clockOut *time.Time) TimeLogStatus {
	if clockOut == nil {
		return TimeLogActive
	}
	return TimeLogCompleted
}

// EditRecord captures the pre-image of a single correction to a time log,
// together with the reason and the acting administrator. The edit sequence
// on a log is append-only; insertion order is chronological order.
type EditRecord struct {
	EditID      string     `json:"editID"`
	LogID       string     `json:"logID"`
	EditedAt    time.Time  `json:"date"`
	PreviousIn  time.Time  `json:"previousIn"`
	PreviousOut *time.Time `json:"previousOut,omitempty"`
	Reason      string     `json:"reason"`
	AdminID     string     `json:"adminID"`
	AdminName   string     `json:"adminName"`
}

// TimeLog is a single attendance session. ClockOut is absent while the
// session is open. ClockIn and ClockOut are mutated only through the
// correction engine, which records an EditRecord per change.
type TimeLog struct {
	LogID      string        `json:"id"`
	EmployeeID string        `json:"employeeId"`
	LogDate    time.Time     `json:"date"` // calendar date of clock-in
	ClockIn    time.Time     `json:"clockIn"`
	ClockOut   *time.Time    `json:"clockOut,omitempty"`
	Status     TimeLogStatus `json:"status"`
	Flagged    bool          `json:"flagged"` // inverted interval stored under the lenient policy
	Edits      []EditRecord  `json:"edits"`
	AuditFields
}

// HasInvertedInterval reports whether the current clock-out precedes the
// current clock-in.
func (l TimeLog) HasInvertedInterval() bool {
	return l.ClockOut != nil && l.ClockOut.Before(l.ClockIn)
}

// Interval is a (clockIn, clockOut) pair at some point in a log's history.
type Interval struct {
	In  time.Time
	Out *time.Time
}

// History reconstructs the log's boundary values over time from the edit
// trail: index 0 is the state at creation, index i the state after edit i,
// and the last element equals the current (ClockIn, ClockOut).
func (l TimeLog) History() []Interval {
	states := make([]Interval, 0, len(l.Edits)+1)
	for _, e := range l.Edits {
		states = append(states, Interval{In: e.PreviousIn, Out: e.PreviousOut})
	}
	states = append(states, Interval{In: l.ClockIn, Out: l.ClockOut})
	return states
}

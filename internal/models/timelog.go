package models

import "time"

// TimeLog is the database representation of an attendance session.
// Status is stored redundantly with clock_out so the partial unique index
// on (employee_id) WHERE status = 'active' can enforce the single active
// session invariant at commit time.
type TimeLog struct {
	LogID      string     `db:"log_id"`
	EmployeeID string     `db:"employee_id"`
	LogDate    time.Time  `db:"log_date"`
	ClockIn    time.Time  `db:"clock_in"`
	ClockOut   *time.Time `db:"clock_out"`
	Status     string     `db:"status"`
	Flagged    bool       `db:"flagged"`
	AuditFields
}

// TimeLogEdit is one row of the append-only audit trail. Seq is assigned by
// the database and preserves insertion order.
type TimeLogEdit struct {
	EditID      string     `db:"edit_id"`
	LogID       string     `db:"log_id"`
	Seq         int64      `db:"seq"`
	EditedAt    time.Time  `db:"edited_at"`
	PreviousIn  time.Time  `db:"previous_in"`
	PreviousOut *time.Time `db:"previous_out"`
	Reason      string     `db:"reason"`
	AdminID     string     `db:"admin_id"`
	AdminName   string     `db:"admin_name"`
}

package mapping

import (
	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	"github.com/jairjanssen9-web/levant---clock-in/internal/models"
)

// ToModelTimeLog converts a domain TimeLog to its database model. Edits are
// persisted separately, row by row, in the audit table.
func ToModelTimeLog(d domain.TimeLog) models.TimeLog {
	return models.TimeLog{
		LogID:       d.LogID,
		EmployeeID:  d.EmployeeID,
		LogDate:     d.LogDate,
		ClockIn:     d.ClockIn,
		ClockOut:    d.ClockOut,
		Status:      string(d.Status),
		Flagged:     d.Flagged,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTimeLog converts a database model to a domain TimeLog. The edit
// trail is attached by the caller once loaded.
func ToDomainTimeLog(m models.TimeLog) domain.TimeLog {
	return domain.TimeLog{
		LogID:       m.LogID,
		EmployeeID:  m.EmployeeID,
		LogDate:     m.LogDate,
		ClockIn:     m.ClockIn,
		ClockOut:    m.ClockOut,
		Status:      domain.TimeLogStatus(m.Status),
		Flagged:     m.Flagged,
		Edits:       []domain.EditRecord{},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTimeLogEdit converts a domain EditRecord to its database model.
func ToModelTimeLogEdit(d domain.EditRecord) models.TimeLogEdit {
	return models.TimeLogEdit{
		EditID:      d.EditID,
		LogID:       d.LogID,
		EditedAt:    d.EditedAt,
		PreviousIn:  d.PreviousIn,
		PreviousOut: d.PreviousOut,
		Reason:      d.Reason,
		AdminID:     d.AdminID,
		AdminName:   d.AdminName,
	}
}

// ToDomainEditRecord converts a database model to a domain EditRecord.
func ToDomainEditRecord(m models.TimeLogEdit) domain.EditRecord {
	return domain.EditRecord{
		EditID:      m.EditID,
		LogID:       m.LogID,
		EditedAt:    m.EditedAt,
		PreviousIn:  m.PreviousIn,
		PreviousOut: m.PreviousOut,
		Reason:      m.Reason,
		AdminID:     m.AdminID,
		AdminName:   m.AdminName,
	}
}

package domain_test

import (
	"testing"
	"time"

	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestDeriveWorkStatus(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.Local)
	today := domain.DateOf(now)
	yesterday := today.AddDate(0, 0, -1)
	out := timePtr(now.Add(-time.Hour))

	tests := []struct {
		name string
		logs []domain.TimeLog
		want domain.WorkStatus
	}{
		{
			name: "no logs at all",
			logs: nil,
			want: domain.StatusNotStarted,
		},
		{
			name: "active log means working",
			logs: []domain.TimeLog{
				{EmployeeID: "emp-1", LogDate: today, Status: domain.TimeLogActive},
			},
			want: domain.StatusWorking,
		},
		{
			name: "completed log today means finished today",
			logs: []domain.TimeLog{
				{EmployeeID: "emp-1", LogDate: today, ClockOut: out, Status: domain.TimeLogCompleted},
			},
			want: domain.StatusFinishedToday,
		},
		{
			name: "completed log yesterday means not started",
			logs: []domain.TimeLog{
				{EmployeeID: "emp-1", LogDate: yesterday, ClockOut: out, Status: domain.TimeLogCompleted},
			},
			want: domain.StatusNotStarted,
		},
		{
			name: "active log wins over completed log today",
			logs: []domain.TimeLog{
				{EmployeeID: "emp-1", LogDate: today, ClockOut: out, Status: domain.TimeLogCompleted},
				{EmployeeID: "emp-1", LogDate: today, Status: domain.TimeLogActive},
			},
			want: domain.StatusWorking,
		},
		{
			name: "other employees' logs are ignored",
			logs: []domain.TimeLog{
				{EmployeeID: "emp-2", LogDate: today, Status: domain.TimeLogActive},
				{EmployeeID: "emp-3", LogDate: today, ClockOut: out, Status: domain.TimeLogCompleted},
			},
			want: domain.StatusNotStarted,
		},
		{
			name: "active log from yesterday still means working",
			logs: []domain.TimeLog{
				{EmployeeID: "emp-1", LogDate: yesterday, Status: domain.TimeLogActive},
			},
			want: domain.StatusWorking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.DeriveWorkStatus("emp-1", tt.logs, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveWorkStatus_StoredDatesAreMidnightUTC(t *testing.T) {
	// Dates scanned from the store carry midnight UTC. An evening reference
	// time in a zone west of UTC still falls on the same calendar date.
	eastern := time.FixedZone("UTC-5", -5*60*60)
	logDate := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, eastern)
	out := timePtr(now.Add(-time.Hour))

	logs := []domain.TimeLog{
		{EmployeeID: "emp-1", LogDate: logDate, ClockOut: out, Status: domain.TimeLogCompleted},
	}

	assert.Equal(t, domain.StatusFinishedToday, domain.DeriveWorkStatus("emp-1", logs, now))
}

func TestActiveLogFor(t *testing.T) {
	logs := []domain.TimeLog{
		{LogID: "log-1", EmployeeID: "emp-1", Status: domain.TimeLogCompleted},
		{LogID: "log-2", EmployeeID: "emp-1", Status: domain.TimeLogActive},
		{LogID: "log-3", EmployeeID: "emp-2", Status: domain.TimeLogActive},
	}

	active := domain.ActiveLogFor("emp-1", logs)
	assert.NotNil(t, active)
	assert.Equal(t, "log-2", active.LogID)

	assert.Nil(t, domain.ActiveLogFor("emp-9", logs))
}

func TestTimeLog_History(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	firstOut := timePtr(created.Add(8 * time.Hour))
	secondIn := created.Add(-5 * time.Minute)

	log := domain.TimeLog{
		LogID:    "log-1",
		ClockIn:  secondIn,
		ClockOut: firstOut,
		Status:   domain.TimeLogCompleted,
		Edits: []domain.EditRecord{
			{PreviousIn: created, PreviousOut: nil, Reason: "forgot to clock out"},
			{PreviousIn: created, PreviousOut: firstOut, Reason: "rounding"},
		},
	}

	history := log.History()
	assert.Len(t, history, 3)

	// State at creation is the first edit's pre-image.
	assert.Equal(t, created, history[0].In)
	assert.Nil(t, history[0].Out)

	// Intermediate state after the first edit.
	assert.Equal(t, created, history[1].In)
	assert.Equal(t, firstOut, history[1].Out)

	// Final replayed state equals the current boundaries.
	assert.Equal(t, log.ClockIn, history[2].In)
	assert.Equal(t, log.ClockOut, history[2].Out)
}

func TestTimeLog_HasInvertedInterval(t *testing.T) {
	in := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)

	assert.False(t, domain.TimeLog{ClockIn: in}.HasInvertedInterval())
	assert.False(t, domain.TimeLog{ClockIn: in, ClockOut: timePtr(in.Add(time.Hour))}.HasInvertedInterval())
	assert.True(t, domain.TimeLog{ClockIn: in, ClockOut: timePtr(in.Add(-time.Minute))}.HasInvertedInterval())
}

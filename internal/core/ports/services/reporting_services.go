package services

import (
	"context"
	"time"

	"github.com/jairjanssen9-web/levant---clock-in/internal/dto"
)

// ReportingSvcFacade builds the derived views. It is a pure reader of the
// employee registry and time log store.
type ReportingSvcFacade interface {
	// DashboardStatus returns the work status of every active employee at
	// the given reference time.
	DashboardStatus(ctx context.Context, now time.Time) (*dto.DashboardResponse, error)

	// HoursReport aggregates completed logs into per-employee hours and pay
	// over an inclusive date window.
	HoursReport(ctx context.Context, from, to time.Time) (*dto.HoursReportResponse, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"timetrack/internal/auth"
	"timetrack/internal/model"
	"timetrack/internal/repository"
)

// serverTimeLocation is the wall clock stamped onto timesheet entries for
// display; the crews this app was built for work on Spanish time.
var serverTimeLocation = mustLoadLocation("Europe/Madrid")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TimesheetInput carries a new entry's payload fields.
type TimesheetInput struct {
	Date        string
	Time        string
	Description string
}

// TimesheetQuery carries the supported GET filters.
type TimesheetQuery struct {
	User  string
	Date  string
	Month string
	Year  string
}

// TimesheetService handles timesheet operations.
type TimesheetService interface {
	Create(ctx context.Context, claims *auth.Claims, input TimesheetInput) (*model.TimesheetEntry, error)
	List(ctx context.Context, claims *auth.Claims, query TimesheetQuery) ([]model.TimesheetEntry, error)
}

type timesheetService struct {
	repo repository.TimesheetRepository
}

// NewTimesheetService creates a new timesheet service.
func NewTimesheetService(repo repository.TimesheetRepository) TimesheetService {
	return &timesheetService{repo: repo}
}

// Create stamps owner identity and server time onto the entry and appends it.
func (s *timesheetService) Create(ctx context.Context, claims *auth.Claims, input TimesheetInput) (*model.TimesheetEntry, error) {
	now := time.Now()
	entry := &model.TimesheetEntry{
		ID:          model.NewRecordID(""),
		Date:        input.Date,
		Time:        input.Time,
		Description: input.Description,
		UserID:      claims.UserID,
		Username:    claims.Username,
		Timestamp:   now.UTC(),
		ServerTime:  now.In(serverTimeLocation).Format("2/1/2006, 15:04:05"),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create timesheet entry: %w", err)
	}
	return entry, nil
}

// List returns the caller's entries, newest first.
func (s *timesheetService) List(ctx context.Context, claims *auth.Claims, query TimesheetQuery) ([]model.TimesheetEntry, error) {
	filter := repository.TimesheetFilter{
		OwnerID:       claims.UserID,
		OwnerUsername: claims.Username,
		Username:      adminScope(claims, query.User),
		Date:          query.Date,
		Month:         monthPrefix(query.Month, query.Year),
	}
	return s.repo.List(ctx, filter)
}

// adminScope widens the query to another user's records, admins only.
func adminScope(claims *auth.Claims, user string) string {
	if user != "" && claims.Position == "admin" {
		return user
	}
	return ""
}

// monthPrefix builds a YYYY-MM date prefix, zero-padding the month. Both
// parts are required; a lone month or year is ignored.
func monthPrefix(month, year string) string {
	if month == "" || year == "" {
		return ""
	}
	if len(month) == 1 {
		month = "0" + month
	}
	return fmt.Sprintf("%s-%s", year, month)
}

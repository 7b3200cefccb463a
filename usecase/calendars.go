package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/naludev/cohabitdb/model"
	"github.com/naludev/cohabitdb/utils"
)

type CalendarService struct {
	Calendars CalendarStore
}

func NewCalendarService(calendars CalendarStore) *CalendarService {
	return &CalendarService{Calendars: calendars}
}

// CreateCalendar persists a standalone calendar for a group. The
// normal path creates calendars as part of CreateGroup; this exists
// for callers that manage the pairing themselves.
func (s *CalendarService) CreateCalendar(ctx context.Context, groupID string, tasks []string) (*model.Calendar, error) {
	if tasks == nil {
		tasks = []string{}
	}

	now := time.Now()
	calendar := &model.Calendar{
		CalendarID: utils.NewID(),
		GroupID:    groupID,
		Tasks:      tasks,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Calendars.CreateCalendar(ctx, calendar); err != nil {
		return nil, fmt.Errorf("failed to create calendar: %w", err)
	}

	return calendar, nil
}

func (s *CalendarService) CalendarByID(ctx context.Context, calendarID string) (*model.Calendar, error) {
	calendar, err := s.Calendars.FindByID(ctx, calendarID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up calendar: %w", err)
	}
	if calendar == nil {
		return nil, ErrCalendarNotFound
	}
	return calendar, nil
}

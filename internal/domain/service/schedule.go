package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shingu-dev/club-server/internal/domain/common/errorz"
	"github.com/shingu-dev/club-server/internal/domain/entity"
)

const scheduleDateLayout = "2006-01-02"

type ScheduleStorage interface {
	Create(ctx context.Context, entry *entity.ScheduleEntry) (*entity.ScheduleEntry, error)
	GetByClubID(ctx context.Context, clubID string) ([]entity.ScheduleEntry, error)
	GetByDate(ctx context.Context, clubID, date string) ([]entity.ScheduleEntry, error)
	Delete(ctx context.Context, clubID, id string) error
}

// ScheduleService manages a club's calendar. Writes are president-only.
type ScheduleService struct {
	storage       ScheduleStorage
	memberStorage MemberStorage
}

func NewScheduleService(storage ScheduleStorage, memberStorage MemberStorage) *ScheduleService {
	return &ScheduleService{
		storage:       storage,
		memberStorage: memberStorage,
	}
}

func (s *ScheduleService) requirePresident(ctx context.Context, callerID, clubID string) error {
	if callerID == "" {
		return errorz.Unauthenticated
	}
	record, err := s.memberStorage.Get(ctx, clubID, callerID)
	if err != nil {
		if errors.Is(err, errorz.NotFound) {
			return errorz.Forbidden
		}
		return err
	}
	if record.Role != entity.RolePresident {
		return errorz.Forbidden
	}
	return nil
}

func (s *ScheduleService) Create(ctx context.Context, callerID, clubID, date, title, content string) (*entity.ScheduleEntry, error) {
	if err := s.requirePresident(ctx, callerID, clubID); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, errorz.Validation
	}
	if _, err := time.Parse(scheduleDateLayout, date); err != nil {
		return nil, errorz.Validation
	}
	return s.storage.Create(ctx, &entity.ScheduleEntry{
		ID:        uuid.New().String(),
		ClubID:    clubID,
		Date:      date,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *ScheduleService) Delete(ctx context.Context, callerID, clubID, entryID string) error {
	if err := s.requirePresident(ctx, callerID, clubID); err != nil {
		return err
	}
	return s.storage.Delete(ctx, clubID, entryID)
}

func (s *ScheduleService) GetByClubID(ctx context.Context, clubID string) ([]entity.ScheduleEntry, error) {
	return s.storage.GetByClubID(ctx, clubID)
}

func (s *ScheduleService) GetByDate(ctx context.Context, clubID, date string) ([]entity.ScheduleEntry, error) {
	return s.storage.GetByDate(ctx, clubID, date)
}

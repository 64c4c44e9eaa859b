package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shingu-dev/club-server/internal/domain/common/errorz"
	"github.com/shingu-dev/club-server/internal/domain/entity"
)

type NoticeStorage interface {
	Create(ctx context.Context, notice *entity.Notice) (*entity.Notice, error)
	Get(ctx context.Context, clubID, id string) (*entity.Notice, error)
	GetPinned(ctx context.Context, clubID string) (*entity.Notice, error)
	GetWithPagination(ctx context.Context, clubID string, offset, limit int) ([]entity.Notice, error)
	CountUnpinned(ctx context.Context, clubID string) (int64, error)
	SetPinned(ctx context.Context, clubID, id string, pinned bool) error
	Delete(ctx context.Context, clubID, id string) error
}

// NoticeService manages a club's notice board. Writes reuse the
// president authority check of the membership model.
type NoticeService struct {
	storage       NoticeStorage
	memberStorage MemberStorage
}

func NewNoticeService(storage NoticeStorage, memberStorage MemberStorage) *NoticeService {
	return &NoticeService{
		storage:       storage,
		memberStorage: memberStorage,
	}
}

func (s *NoticeService) requirePresident(ctx context.Context, callerID, clubID string) error {
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

// Create posts a new notice, always unpinned.
func (s *NoticeService) Create(ctx context.Context, callerID, clubID, title, content string) (*entity.Notice, error) {
	if err := s.requirePresident(ctx, callerID, clubID); err != nil {
		return nil, err
	}
	if title == "" || content == "" {
		return nil, errorz.Validation
	}
	return s.storage.Create(ctx, &entity.Notice{
		ID:        uuid.New().String(),
		ClubID:    clubID,
		Title:     title,
		Content:   content,
		IsPinned:  false,
		CreatedAt: time.Now().UTC(),
	})
}

// TogglePin pins or unpins a notice. Only one notice per club may be
// pinned, so pinning fails while another notice holds the slot.
func (s *NoticeService) TogglePin(ctx context.Context, callerID, clubID, noticeID string) error {
	if err := s.requirePresident(ctx, callerID, clubID); err != nil {
		return err
	}
	notice, err := s.storage.Get(ctx, clubID, noticeID)
	if err != nil {
		return err
	}
	if !notice.IsPinned {
		pinned, err := s.storage.GetPinned(ctx, clubID)
		switch {
		case err == nil && pinned != nil:
			return errorz.Validation
		case err != nil && !errors.Is(err, errorz.NotFound):
			return err
		}
	}
	return s.storage.SetPinned(ctx, clubID, noticeID, !notice.IsPinned)
}

func (s *NoticeService) Delete(ctx context.Context, callerID, clubID, noticeID string) error {
	if err := s.requirePresident(ctx, callerID, clubID); err != nil {
		return err
	}
	return s.storage.Delete(ctx, clubID, noticeID)
}

// Pinned returns the club's pinned notice, or nil when there is none.
func (s *NoticeService) Pinned(ctx context.Context, clubID string) (*entity.Notice, error) {
	notice, err := s.storage.GetPinned(ctx, clubID)
	if err != nil {
		if errors.Is(err, errorz.NotFound) {
			return nil, nil
		}
		return nil, err
	}
	return notice, nil
}

// Page lists unpinned notices newest-first.
func (s *NoticeService) Page(ctx context.Context, clubID string, page, pageSize int) ([]entity.Notice, int64, error) {
	if page < 1 {
		page = 1
	}
	notices, err := s.storage.GetWithPagination(ctx, clubID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.storage.CountUnpinned(ctx, clubID)
	if err != nil {
		return nil, 0, err
	}
	return notices, total, nil
}

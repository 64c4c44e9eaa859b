package service

import (
	"context"
	"errors"

	"github.com/shingu-dev/club-server/internal/domain/common/errorz"
	"github.com/shingu-dev/club-server/internal/domain/dto"
	"github.com/shingu-dev/club-server/internal/domain/entity"
)

type ClubStorage interface {
	Create(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	GetWithPagination(ctx context.Context, offset, limit int, order string) ([]entity.Club, error)
	Update(ctx context.Context, id string, update dto.ClubUpdate) error
	Count(ctx context.Context) (int64, error)
}

type ClubService struct {
	storage       ClubStorage
	memberStorage MemberStorage
}

func NewClubService(storage ClubStorage, memberStorage MemberStorage) *ClubService {
	return &ClubService{
		storage:       storage,
		memberStorage: memberStorage,
	}
}

func (s *ClubService) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	return s.storage.Create(ctx, club)
}

func (s *ClubService) Get(ctx context.Context, id string) (*entity.Club, error) {
	return s.storage.Get(ctx, id)
}

func (s *ClubService) GetWithPagination(ctx context.Context, offset, limit int, order string) ([]entity.Club, error) {
	return s.storage.GetWithPagination(ctx, offset, limit, order)
}

func (s *ClubService) Count(ctx context.Context) (int64, error) {
	return s.storage.Count(ctx)
}

// UpdateInfo edits the club's descriptive fields. Presidents only; the
// check reads the caller's roster record, not the profile.
func (s *ClubService) UpdateInfo(ctx context.Context, callerID, clubID string, update dto.ClubUpdate) error {
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
	return s.storage.Update(ctx, clubID, update)
}

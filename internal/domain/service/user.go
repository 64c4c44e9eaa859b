package service

import (
	"context"

	"github.com/shingu-dev/club-server/internal/domain/dto"
	"github.com/shingu-dev/club-server/internal/domain/entity"
)

type UserStorage interface {
	Create(ctx context.Context, user *entity.UserProfile) (*entity.UserProfile, error)
	Get(ctx context.Context, id string) (*entity.UserProfile, error)
	Update(ctx context.Context, userID string, update dto.ProfileUpdate) error
	SetAffiliation(ctx context.Context, userID string, status entity.ClubStatus, clubID string) error
	SetPresidentOf(ctx context.Context, userID, clubID string) error
	Delete(ctx context.Context, id string) error
}

type UserService struct {
	userStorage   UserStorage
	memberStorage MemberStorage
}

func NewUserService(userStorage UserStorage, memberStorage MemberStorage) *UserService {
	return &UserService{
		userStorage:   userStorage,
		memberStorage: memberStorage,
	}
}

func (s *UserService) Get(ctx context.Context, userID string) (*entity.UserProfile, error) {
	return s.userStorage.Get(ctx, userID)
}

// EditProfile updates the caller's own profile and propagates the
// denormalized fields into their roster record when they are an
// approved club member. Pending applicants have no roster record yet.
// The roster write is a merge so the role survives.
func (s *UserService) EditProfile(ctx context.Context, callerID string, update dto.ProfileUpdate) error {
	if err := s.userStorage.Update(ctx, callerID, update); err != nil {
		return err
	}
	user, err := s.userStorage.Get(ctx, callerID)
	if err != nil {
		return err
	}
	if user.MyClubStatus != entity.ClubStatusApproved || user.MyClubID == "" {
		return nil
	}
	return s.memberStorage.MergeProfile(ctx, user.MyClubID, callerID, dto.ProfileSnapshot{
		Name:       user.Name,
		StudentID:  user.StudentID,
		Department: user.Department,
		Phone:      user.Phone,
	})
}

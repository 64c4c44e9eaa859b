package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/shingu-dev/club-server/internal/adapters/logger"
	"github.com/shingu-dev/club-server/internal/domain/common/errorz"
	"github.com/shingu-dev/club-server/internal/domain/dto"
	"github.com/shingu-dev/club-server/internal/domain/entity"
)

type MemberStorage interface {
	Get(ctx context.Context, clubID, userID string) (*entity.MembershipRecord, error)
	Upsert(ctx context.Context, record *entity.MembershipRecord) error
	UpdateRole(ctx context.Context, clubID, userID string, role entity.Role) error
	MergeProfile(ctx context.Context, clubID, userID string, snapshot dto.ProfileSnapshot) error
	GetByClubID(ctx context.Context, clubID string) ([]entity.MembershipRecord, error)
	Delete(ctx context.Context, clubID, userID string) error
}

type ApplicationStorage interface {
	Create(ctx context.Context, application *entity.ClubApplication) (*entity.ClubApplication, error)
	Get(ctx context.Context, id string) (*entity.ClubApplication, error)
	SetStatus(ctx context.Context, id string, status entity.ApplicationStatus) error
	GetPendingByClubID(ctx context.Context, clubID string) ([]entity.ClubApplication, error)
}

type clubGetter interface {
	Get(ctx context.Context, id string) (*entity.Club, error)
}

// MembershipService is the membership lifecycle engine: every state
// change of a user's club affiliation and roster role goes through it.
//
// The profile and roster documents for a user are one logical aggregate
// stored as two documents; operations that touch affiliation write both
// as an ordered sequence of independent writes. There is no rollback on
// partial failure: the first failed step is reported with its index and
// the committed prefix is logged.
type MembershipService struct {
	memberStorage      MemberStorage
	applicationStorage ApplicationStorage
	userStorage        UserStorage
	clubStorage        clubGetter
	log                *logger.Logger
}

func NewMembershipService(
	memberStorage MemberStorage,
	applicationStorage ApplicationStorage,
	userStorage UserStorage,
	clubStorage clubGetter,
	log *logger.Logger,
) *MembershipService {
	return &MembershipService{
		memberStorage:      memberStorage,
		applicationStorage: applicationStorage,
		userStorage:        userStorage,
		clubStorage:        clubStorage,
		log:                log,
	}
}

type step struct {
	name string
	fn   func(ctx context.Context) error
}

// runSteps executes the mutations of one lifecycle operation in order.
// Steps before the first failure stay committed; the failure is wrapped
// with its index so callers and tests can reason about partial state.
func (s *MembershipService) runSteps(ctx context.Context, op string, steps []step) error {
	for i, st := range steps {
		if err := st.fn(ctx); err != nil {
			s.log.Errorf("%s aborted at step %d (%s), %d write(s) already committed: %v", op, i, st.name, i, err)
			return &errorz.StepError{Op: op, Index: i, Step: st.name, Err: err}
		}
	}
	return nil
}

// requirePresident resolves the caller's roster record for the club and
// checks the president role. Authority lives on the roster document, not
// the profile. Only a missing record denies authority; a store failure
// propagates so it is never mistaken for a denial.
func (s *MembershipService) requirePresident(ctx context.Context, callerID, clubID string) error {
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

// Apply submits a join request for the caller. The caller must be
// unaffiliated and have a complete profile; the profile fields are
// snapshotted into the application for the approval queue.
func (s *MembershipService) Apply(ctx context.Context, callerID, clubID, intro string) (*entity.ClubApplication, error) {
	if callerID == "" {
		return nil, errorz.Unauthenticated
	}
	if intro == "" {
		return nil, errorz.Validation
	}
	if _, err := s.clubStorage.Get(ctx, clubID); err != nil {
		return nil, err
	}
	user, err := s.userStorage.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if user.MyClubStatus != entity.ClubStatusNone {
		return nil, errorz.AlreadyAffiliated
	}
	if !user.HasRequiredFields() {
		return nil, errorz.IncompleteProfile
	}

	application := &entity.ClubApplication{
		ID:         uuid.New().String(),
		ClubID:     clubID,
		UserID:     callerID,
		Status:     entity.ApplicationPending,
		Name:       user.Name,
		Department: user.Department,
		StudentID:  user.StudentID,
		Email:      user.Email,
		Phone:      user.Phone,
		Intro:      intro,
		CreatedAt:  time.Now().UTC(),
	}

	err = s.runSteps(ctx, "apply", []step{
		{"create application", func(ctx context.Context) error {
			_, err := s.applicationStorage.Create(ctx, application)
			return err
		}},
		{"mark profile pending", func(ctx context.Context) error {
			return s.userStorage.SetAffiliation(ctx, callerID, entity.ClubStatusPending, clubID)
		}},
	})
	if err != nil {
		return nil, err
	}
	return application, nil
}

// Approve settles a pending application and admits the applicant as a
// member. Three independent writes: application status, roster record,
// profile affiliation.
func (s *MembershipService) Approve(ctx context.Context, callerID, applicationID string) error {
	application, err := s.applicationStorage.Get(ctx, applicationID)
	if err != nil {
		return err
	}
	if err = s.requirePresident(ctx, callerID, application.ClubID); err != nil {
		return err
	}
	if application.Status != entity.ApplicationPending {
		return errorz.InvalidTransition
	}

	record := &entity.MembershipRecord{
		ClubID:     application.ClubID,
		UserID:     application.UserID,
		Name:       application.Name,
		StudentID:  application.StudentID,
		Department: application.Department,
		Phone:      application.Phone,
		Role:       entity.RoleMember,
		JoinedAt:   time.Now().UTC(),
	}

	return s.runSteps(ctx, "approve", []step{
		{"settle application", func(ctx context.Context) error {
			return s.applicationStorage.SetStatus(ctx, applicationID, entity.ApplicationApproved)
		}},
		{"create roster record", func(ctx context.Context) error {
			return s.memberStorage.Upsert(ctx, record)
		}},
		{"mark profile approved", func(ctx context.Context) error {
			return s.userStorage.SetAffiliation(ctx, application.UserID, entity.ClubStatusApproved, application.ClubID)
		}},
	})
}

// Reject settles a pending application and frees the applicant to apply
// elsewhere.
func (s *MembershipService) Reject(ctx context.Context, callerID, applicationID string) error {
	application, err := s.applicationStorage.Get(ctx, applicationID)
	if err != nil {
		return err
	}
	if err = s.requirePresident(ctx, callerID, application.ClubID); err != nil {
		return err
	}
	if application.Status != entity.ApplicationPending {
		return errorz.InvalidTransition
	}

	return s.runSteps(ctx, "reject", []step{
		{"settle application", func(ctx context.Context) error {
			return s.applicationStorage.SetStatus(ctx, applicationID, entity.ApplicationRejected)
		}},
		{"reset profile affiliation", func(ctx context.Context) error {
			return s.userStorage.SetAffiliation(ctx, application.UserID, entity.ClubStatusNone, "")
		}},
	})
}

// ChangeRole moves a member between the member and staff roles.
// Escalation to president goes through DelegatePresident only, and a
// sitting president cannot be demoted through this path.
func (s *MembershipService) ChangeRole(ctx context.Context, callerID, clubID, userID string, newRole entity.Role) error {
	if newRole != entity.RoleStaff && newRole != entity.RoleMember {
		return errorz.InvalidTransition
	}
	if err := s.requirePresident(ctx, callerID, clubID); err != nil {
		return err
	}
	record, err := s.memberStorage.Get(ctx, clubID, userID)
	if err != nil {
		return err
	}
	if record.Role == entity.RolePresident {
		return errorz.InvalidTransition
	}
	if record.Role == newRole {
		return nil
	}
	return s.memberStorage.UpdateRole(ctx, clubID, userID, newRole)
}

// DelegatePresident hands the president role to a staff member. Four
// independent writes: both roster roles, then both profile presidentOf
// pointers. The one-president invariant holds only if all four succeed.
func (s *MembershipService) DelegatePresident(ctx context.Context, callerID, clubID, newPresidentID string) error {
	if err := s.requirePresident(ctx, callerID, clubID); err != nil {
		return err
	}
	if newPresidentID == callerID {
		return errorz.InvalidTransition
	}
	target, err := s.memberStorage.Get(ctx, clubID, newPresidentID)
	if err != nil {
		return err
	}
	if target.Role != entity.RoleStaff {
		return errorz.InvalidTransition
	}

	return s.runSteps(ctx, "delegate president", []step{
		{"demote current president", func(ctx context.Context) error {
			return s.memberStorage.UpdateRole(ctx, clubID, callerID, entity.RoleStaff)
		}},
		{"promote new president", func(ctx context.Context) error {
			return s.memberStorage.UpdateRole(ctx, clubID, newPresidentID, entity.RolePresident)
		}},
		{"clear caller presidentOf", func(ctx context.Context) error {
			return s.userStorage.SetPresidentOf(ctx, callerID, "")
		}},
		{"set target presidentOf", func(ctx context.Context) error {
			return s.userStorage.SetPresidentOf(ctx, newPresidentID, clubID)
		}},
	})
}

// RemoveMember force-removes a member from the roster. A president
// cannot remove themselves; they delegate first and leave as staff.
func (s *MembershipService) RemoveMember(ctx context.Context, callerID, clubID, userID string) error {
	if err := s.requirePresident(ctx, callerID, clubID); err != nil {
		return err
	}
	if userID == callerID {
		return errorz.InvalidTransition
	}
	if _, err := s.memberStorage.Get(ctx, clubID, userID); err != nil {
		return err
	}

	return s.runSteps(ctx, "remove member", []step{
		{"delete roster record", func(ctx context.Context) error {
			return s.memberStorage.Delete(ctx, clubID, userID)
		}},
		{"reset profile affiliation", func(ctx context.Context) error {
			return s.userStorage.SetAffiliation(ctx, userID, entity.ClubStatusNone, "")
		}},
	})
}

// Leave is the self-service counterpart of RemoveMember for
// non-president members.
func (s *MembershipService) Leave(ctx context.Context, callerID, clubID string) error {
	if callerID == "" {
		return errorz.Unauthenticated
	}
	record, err := s.memberStorage.Get(ctx, clubID, callerID)
	if err != nil {
		return err
	}
	if record.Role == entity.RolePresident {
		return errorz.InvalidTransition
	}

	return s.runSteps(ctx, "leave", []step{
		{"delete roster record", func(ctx context.Context) error {
			return s.memberStorage.Delete(ctx, clubID, callerID)
		}},
		{"reset profile affiliation", func(ctx context.Context) error {
			return s.userStorage.SetAffiliation(ctx, callerID, entity.ClubStatusNone, "")
		}},
	})
}

// ResyncMemberProfile pushes the user's current profile fields into
// their roster record, preserving the role. Called after profile edits
// so the roster view does not diverge from the profile.
func (s *MembershipService) ResyncMemberProfile(ctx context.Context, userID string) error {
	user, err := s.userStorage.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user.MyClubStatus != entity.ClubStatusApproved || user.MyClubID == "" {
		return nil
	}
	return s.memberStorage.MergeProfile(ctx, user.MyClubID, userID, dto.ProfileSnapshot{
		Name:       user.Name,
		StudentID:  user.StudentID,
		Department: user.Department,
		Phone:      user.Phone,
	})
}

// Members lists the club roster for its president, officers first.
func (s *MembershipService) Members(ctx context.Context, callerID, clubID string) ([]entity.MembershipRecord, error) {
	if err := s.requirePresident(ctx, callerID, clubID); err != nil {
		return nil, err
	}
	records, err := s.memberStorage.GetByClubID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Role.Priority() < records[j].Role.Priority()
	})
	return records, nil
}

// PendingApplications lists the club's approval queue for its president.
func (s *MembershipService) PendingApplications(ctx context.Context, callerID, clubID string) ([]entity.ClubApplication, error) {
	if err := s.requirePresident(ctx, callerID, clubID); err != nil {
		return nil, err
	}
	return s.applicationStorage.GetPendingByClubID(ctx, clubID)
}

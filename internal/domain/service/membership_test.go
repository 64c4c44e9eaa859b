package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shingu-dev/club-server/internal/adapters/logger"
	"github.com/shingu-dev/club-server/internal/domain/common/errorz"
	"github.com/shingu-dev/club-server/internal/domain/dto"
	"github.com/shingu-dev/club-server/internal/domain/entity"
	"github.com/shingu-dev/club-server/internal/domain/service"
)

type fakeUserStorage struct {
	users map[string]*entity.UserProfile
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{users: map[string]*entity.UserProfile{}}
}

func (f *fakeUserStorage) Create(_ context.Context, user *entity.UserProfile) (*entity.UserProfile, error) {
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserStorage) Get(_ context.Context, id string) (*entity.UserProfile, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errorz.NotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStorage) Update(_ context.Context, userID string, update dto.ProfileUpdate) error {
	user, ok := f.users[userID]
	if !ok {
		return errorz.NotFound
	}
	user.Name = update.Name
	user.Phone = update.Phone
	user.Major = update.Major
	user.Department = update.Department
	user.StudentID = update.StudentID
	return nil
}

func (f *fakeUserStorage) SetAffiliation(_ context.Context, userID string, status entity.ClubStatus, clubID string) error {
	user, ok := f.users[userID]
	if !ok {
		return errorz.NotFound
	}
	user.MyClubStatus = status
	user.MyClubID = clubID
	return nil
}

func (f *fakeUserStorage) SetPresidentOf(_ context.Context, userID, clubID string) error {
	user, ok := f.users[userID]
	if !ok {
		return errorz.NotFound
	}
	user.PresidentOf = clubID
	return nil
}

func (f *fakeUserStorage) Delete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

type fakeMemberStorage struct {
	records   map[string]*entity.MembershipRecord
	failStep  string
	getErr    error
	upserts   int
	roleEdits int
}

func newFakeMemberStorage() *fakeMemberStorage {
	return &fakeMemberStorage{records: map[string]*entity.MembershipRecord{}}
}

func memberKey(clubID, userID string) string {
	return fmt.Sprintf("%s/%s", clubID, userID)
}

func (f *fakeMemberStorage) Get(_ context.Context, clubID, userID string) (*entity.MembershipRecord, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	record, ok := f.records[memberKey(clubID, userID)]
	if !ok {
		return nil, errorz.NotFound
	}
	copied := *record
	return &copied, nil
}

func (f *fakeMemberStorage) Upsert(_ context.Context, record *entity.MembershipRecord) error {
	if f.failStep == "upsert" {
		return errors.New("store unavailable")
	}
	f.upserts++
	copied := *record
	f.records[memberKey(record.ClubID, record.UserID)] = &copied
	return nil
}

func (f *fakeMemberStorage) UpdateRole(_ context.Context, clubID, userID string, role entity.Role) error {
	record, ok := f.records[memberKey(clubID, userID)]
	if !ok {
		return errorz.NotFound
	}
	f.roleEdits++
	record.Role = role
	return nil
}

func (f *fakeMemberStorage) MergeProfile(_ context.Context, clubID, userID string, snapshot dto.ProfileSnapshot) error {
	record, ok := f.records[memberKey(clubID, userID)]
	if !ok {
		return errorz.NotFound
	}
	record.Name = snapshot.Name
	record.StudentID = snapshot.StudentID
	record.Department = snapshot.Department
	record.Phone = snapshot.Phone
	return nil
}

func (f *fakeMemberStorage) GetByClubID(_ context.Context, clubID string) ([]entity.MembershipRecord, error) {
	var records []entity.MembershipRecord
	for _, record := range f.records {
		if record.ClubID == clubID {
			records = append(records, *record)
		}
	}
	return records, nil
}

func (f *fakeMemberStorage) Delete(_ context.Context, clubID, userID string) error {
	delete(f.records, memberKey(clubID, userID))
	return nil
}

type fakeApplicationStorage struct {
	applications map[string]*entity.ClubApplication
}

func newFakeApplicationStorage() *fakeApplicationStorage {
	return &fakeApplicationStorage{applications: map[string]*entity.ClubApplication{}}
}

func (f *fakeApplicationStorage) Create(_ context.Context, application *entity.ClubApplication) (*entity.ClubApplication, error) {
	copied := *application
	f.applications[application.ID] = &copied
	return application, nil
}

func (f *fakeApplicationStorage) Get(_ context.Context, id string) (*entity.ClubApplication, error) {
	application, ok := f.applications[id]
	if !ok {
		return nil, errorz.NotFound
	}
	copied := *application
	return &copied, nil
}

func (f *fakeApplicationStorage) SetStatus(_ context.Context, id string, status entity.ApplicationStatus) error {
	application, ok := f.applications[id]
	if !ok {
		return errorz.NotFound
	}
	application.Status = status
	return nil
}

func (f *fakeApplicationStorage) GetPendingByClubID(_ context.Context, clubID string) ([]entity.ClubApplication, error) {
	var pending []entity.ClubApplication
	for _, application := range f.applications {
		if application.ClubID == clubID && application.Status == entity.ApplicationPending {
			pending = append(pending, *application)
		}
	}
	return pending, nil
}

type fakeClubStorage struct {
	clubs map[string]*entity.Club
}

func newFakeClubStorage(ids ...string) *fakeClubStorage {
	f := &fakeClubStorage{clubs: map[string]*entity.Club{}}
	for _, id := range ids {
		f.clubs[id] = &entity.Club{ID: id, Name: "club " + id}
	}
	return f
}

func (f *fakeClubStorage) Get(_ context.Context, id string) (*entity.Club, error) {
	club, ok := f.clubs[id]
	if !ok {
		return nil, errorz.NotFound
	}
	return club, nil
}

type fixture struct {
	users        *fakeUserStorage
	members      *fakeMemberStorage
	applications *fakeApplicationStorage
	clubs        *fakeClubStorage
	engine       *service.MembershipService
}

func newFixture(t *testing.T, clubIDs ...string) *fixture {
	t.Helper()
	users := newFakeUserStorage()
	members := newFakeMemberStorage()
	applications := newFakeApplicationStorage()
	clubs := newFakeClubStorage(clubIDs...)
	engine := service.NewMembershipService(members, applications, users, clubs, logger.Nop())
	return &fixture{
		users:        users,
		members:      members,
		applications: applications,
		clubs:        clubs,
		engine:       engine,
	}
}

func (f *fixture) addUser(id string) *entity.UserProfile {
	user := &entity.UserProfile{
		ID:           id,
		Email:        id + "@g.shingu.ac.kr",
		Name:         "name " + id,
		Phone:        "01012345678",
		StudentID:    "2026" + id,
		Department:   "dept",
		MyClubStatus: entity.ClubStatusNone,
	}
	f.users.users[id] = user
	return user
}

func (f *fixture) addMember(clubID, userID string, role entity.Role) {
	user := f.users.users[userID]
	if user == nil {
		user = f.addUser(userID)
	}
	user.MyClubStatus = entity.ClubStatusApproved
	user.MyClubID = clubID
	if role == entity.RolePresident {
		user.PresidentOf = clubID
	}
	f.members.records[memberKey(clubID, userID)] = &entity.MembershipRecord{
		ClubID:   clubID,
		UserID:   userID,
		Name:     user.Name,
		Role:     role,
		JoinedAt: time.Now(),
	}
}

// checkAffiliationInvariant asserts myClubStatus == none iff myClubId
// is empty, for every user.
func (f *fixture) checkAffiliationInvariant(t *testing.T) {
	t.Helper()
	for id, user := range f.users.users {
		if (user.MyClubStatus == entity.ClubStatusNone) != (user.MyClubID == "") {
			t.Fatalf("user %s: status %q with clubID %q violates affiliation invariant", id, user.MyClubStatus, user.MyClubID)
		}
	}
}

func TestApplyThenApprove(t *testing.T) {
	f := newFixture(t, "c1")
	f.addUser("kim")
	f.addMember("c1", "pres", entity.RolePresident)

	application, err := f.engine.Apply(context.Background(), "kim", "c1", "관심있습니다")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if application.Status != entity.ApplicationPending {
		t.Fatalf("application status = %q, want pending", application.Status)
	}
	if got := f.users.users["kim"].MyClubStatus; got != entity.ClubStatusPending {
		t.Fatalf("myClubStatus = %q, want pending", got)
	}
	f.checkAffiliationInvariant(t)

	if err = f.engine.Approve(context.Background(), "pres", application.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	record, err := f.members.Get(context.Background(), "c1", "kim")
	if err != nil {
		t.Fatalf("roster record missing after approve: %v", err)
	}
	if record.Role != entity.RoleMember {
		t.Fatalf("role = %q, want member", record.Role)
	}
	user := f.users.users["kim"]
	if user.MyClubStatus != entity.ClubStatusApproved || user.MyClubID != "c1" {
		t.Fatalf("profile after approve = (%q, %q), want (approved, c1)", user.MyClubStatus, user.MyClubID)
	}
	f.checkAffiliationInvariant(t)
}

func TestApplyWhileAffiliatedFailsWithoutStateChange(t *testing.T) {
	f := newFixture(t, "c1", "c2")
	f.addMember("c1", "kim", entity.RoleMember)

	_, err := f.engine.Apply(context.Background(), "kim", "c2", "hi")
	if !errors.Is(err, errorz.AlreadyAffiliated) {
		t.Fatalf("err = %v, want AlreadyAffiliated", err)
	}
	if len(f.applications.applications) != 0 {
		t.Fatal("application created despite AlreadyAffiliated")
	}
	user := f.users.users["kim"]
	if user.MyClubStatus != entity.ClubStatusApproved || user.MyClubID != "c1" {
		t.Fatal("profile mutated despite AlreadyAffiliated")
	}
}

func TestApplyValidation(t *testing.T) {
	f := newFixture(t, "c1")
	f.addUser("kim")

	if _, err := f.engine.Apply(context.Background(), "kim", "c1", ""); !errors.Is(err, errorz.Validation) {
		t.Fatalf("empty intro: err = %v, want Validation", err)
	}
	if _, err := f.engine.Apply(context.Background(), "", "c1", "hi"); !errors.Is(err, errorz.Unauthenticated) {
		t.Fatalf("no caller: err = %v, want Unauthenticated", err)
	}
	if _, err := f.engine.Apply(context.Background(), "kim", "missing", "hi"); !errors.Is(err, errorz.NotFound) {
		t.Fatalf("missing club: err = %v, want NotFound", err)
	}

	incomplete := f.addUser("lee")
	incomplete.Phone = ""
	if _, err := f.engine.Apply(context.Background(), "lee", "c1", "hi"); !errors.Is(err, errorz.IncompleteProfile) {
		t.Fatalf("incomplete profile: err = %v, want IncompleteProfile", err)
	}
}

func TestApproveRequiresPresident(t *testing.T) {
	f := newFixture(t, "c1")
	f.addUser("kim")
	f.addMember("c1", "pres", entity.RolePresident)
	f.addMember("c1", "staffer", entity.RoleStaff)

	application, err := f.engine.Apply(context.Background(), "kim", "c1", "hi")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if err = f.engine.Approve(context.Background(), "staffer", application.ID); !errors.Is(err, errorz.Forbidden) {
		t.Fatalf("staff approve: err = %v, want Forbidden", err)
	}
	if err = f.engine.Approve(context.Background(), "", application.ID); !errors.Is(err, errorz.Unauthenticated) {
		t.Fatalf("anonymous approve: err = %v, want Unauthenticated", err)
	}
}

func TestApproveSettledApplicationRejected(t *testing.T) {
	f := newFixture(t, "c1")
	f.addUser("kim")
	f.addMember("c1", "pres", entity.RolePresident)

	application, _ := f.engine.Apply(context.Background(), "kim", "c1", "hi")
	if err := f.engine.Approve(context.Background(), "pres", application.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := f.engine.Approve(context.Background(), "pres", application.ID); !errors.Is(err, errorz.InvalidTransition) {
		t.Fatalf("second approve: err = %v, want InvalidTransition", err)
	}
}

func TestRejectResetsAffiliation(t *testing.T) {
	f := newFixture(t, "c1")
	f.addUser("kim")
	f.addMember("c1", "pres", entity.RolePresident)

	application, _ := f.engine.Apply(context.Background(), "kim", "c1", "hi")
	if err := f.engine.Reject(context.Background(), "pres", application.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	user := f.users.users["kim"]
	if user.MyClubStatus != entity.ClubStatusNone || user.MyClubID != "" {
		t.Fatalf("profile after reject = (%q, %q), want (none, empty)", user.MyClubStatus, user.MyClubID)
	}
	stored, _ := f.applications.Get(context.Background(), application.ID)
	if stored.Status != entity.ApplicationRejected {
		t.Fatalf("application status = %q, want rejected", stored.Status)
	}
	f.checkAffiliationInvariant(t)
}

func TestChangeRole(t *testing.T) {
	f := newFixture(t, "c1")
	f.addMember("c1", "pres", entity.RolePresident)
	f.addMember("c1", "kim", entity.RoleMember)

	if err := f.engine.ChangeRole(context.Background(), "pres", "c1", "kim", entity.RoleStaff); err != nil {
		t.Fatalf("promote: %v", err)
	}
	record, _ := f.members.Get(context.Background(), "c1", "kim")
	if record.Role != entity.RoleStaff {
		t.Fatalf("role = %q, want staff", record.Role)
	}

	// Demotion back to member.
	if err := f.engine.ChangeRole(context.Background(), "pres", "c1", "kim", entity.RoleMember); err != nil {
		t.Fatalf("demote: %v", err)
	}

	// Escalation to president must not pass through this path.
	if err := f.engine.ChangeRole(context.Background(), "pres", "c1", "kim", entity.RolePresident); !errors.Is(err, errorz.InvalidTransition) {
		t.Fatalf("escalate: err = %v, want InvalidTransition", err)
	}

	// A sitting president cannot be changed here.
	if err := f.engine.ChangeRole(context.Background(), "pres", "c1", "pres", entity.RoleStaff); !errors.Is(err, errorz.InvalidTransition) {
		t.Fatalf("demote president: err = %v, want InvalidTransition", err)
	}

	// Non-presidents hold no authority.
	if err := f.engine.ChangeRole(context.Background(), "kim", "c1", "kim", entity.RoleStaff); !errors.Is(err, errorz.Forbidden) {
		t.Fatalf("member changes role: err = %v, want Forbidden", err)
	}
}

func TestDelegateRequiresStaffTarget(t *testing.T) {
	f := newFixture(t, "c1")
	f.addMember("c1", "a", entity.RolePresident)
	f.addMember("c1", "b", entity.RoleMember)

	err := f.engine.DelegatePresident(context.Background(), "a", "c1", "b")
	if !errors.Is(err, errorz.InvalidTransition) {
		t.Fatalf("err = %v, want InvalidTransition", err)
	}
	aRecord, _ := f.members.Get(context.Background(), "c1", "a")
	bRecord, _ := f.members.Get(context.Background(), "c1", "b")
	if aRecord.Role != entity.RolePresident || bRecord.Role != entity.RoleMember {
		t.Fatal("roles changed despite failed delegation")
	}
}

func TestDelegateBackAndForth(t *testing.T) {
	f := newFixture(t, "c1")
	f.addMember("c1", "a", entity.RolePresident)
	f.addMember("c1", "b", entity.RoleStaff)

	if err := f.engine.DelegatePresident(context.Background(), "a", "c1", "b"); err != nil {
		t.Fatalf("delegate a->b: %v", err)
	}
	aRecord, _ := f.members.Get(context.Background(), "c1", "a")
	bRecord, _ := f.members.Get(context.Background(), "c1", "b")
	if aRecord.Role != entity.RoleStaff || bRecord.Role != entity.RolePresident {
		t.Fatalf("after a->b: a=%q b=%q", aRecord.Role, bRecord.Role)
	}
	if f.users.users["a"].PresidentOf != "" || f.users.users["b"].PresidentOf != "c1" {
		t.Fatal("presidentOf pointers wrong after a->b")
	}

	if err := f.engine.DelegatePresident(context.Background(), "b", "c1", "a"); err != nil {
		t.Fatalf("delegate b->a: %v", err)
	}
	aRecord, _ = f.members.Get(context.Background(), "c1", "a")
	bRecord, _ = f.members.Get(context.Background(), "c1", "b")
	if aRecord.Role != entity.RolePresident || bRecord.Role != entity.RoleStaff {
		t.Fatalf("after b->a: a=%q b=%q", aRecord.Role, bRecord.Role)
	}
	if f.users.users["a"].PresidentOf != "c1" || f.users.users["b"].PresidentOf != "" {
		t.Fatal("presidentOf pointers wrong after b->a")
	}

	// Exactly one president remains.
	presidents := 0
	for _, record := range f.members.records {
		if record.Role == entity.RolePresident {
			presidents++
		}
	}
	if presidents != 1 {
		t.Fatalf("president count = %d, want 1", presidents)
	}
}

func TestRemoveThenReapply(t *testing.T) {
	f := newFixture(t, "c1")
	f.addMember("c1", "pres", entity.RolePresident)
	f.addMember("c1", "kim", entity.RoleMember)

	if err := f.engine.RemoveMember(context.Background(), "pres", "c1", "kim"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := f.members.Get(context.Background(), "c1", "kim"); err == nil {
		t.Fatal("roster record still present after removal")
	}
	f.checkAffiliationInvariant(t)

	application, err := f.engine.Apply(context.Background(), "kim", "c1", "hi")
	if err != nil {
		t.Fatalf("reapply after removal: %v", err)
	}
	if application.Status != entity.ApplicationPending {
		t.Fatalf("reapplication status = %q, want pending", application.Status)
	}
}

func TestPresidentCannotRemoveSelfOrLeave(t *testing.T) {
	f := newFixture(t, "c1")
	f.addMember("c1", "pres", entity.RolePresident)

	if err := f.engine.RemoveMember(context.Background(), "pres", "c1", "pres"); !errors.Is(err, errorz.InvalidTransition) {
		t.Fatalf("self-removal: err = %v, want InvalidTransition", err)
	}
	if err := f.engine.Leave(context.Background(), "pres", "c1"); !errors.Is(err, errorz.InvalidTransition) {
		t.Fatalf("president leave: err = %v, want InvalidTransition", err)
	}
}

func TestLeave(t *testing.T) {
	f := newFixture(t, "c1")
	f.addMember("c1", "pres", entity.RolePresident)
	f.addMember("c1", "kim", entity.RoleStaff)

	if err := f.engine.Leave(context.Background(), "kim", "c1"); err != nil {
		t.Fatalf("leave: %v", err)
	}
	if _, err := f.members.Get(context.Background(), "c1", "kim"); err == nil {
		t.Fatal("roster record still present after leave")
	}
	user := f.users.users["kim"]
	if user.MyClubStatus != entity.ClubStatusNone || user.MyClubID != "" {
		t.Fatal("profile affiliation not reset after leave")
	}
	f.checkAffiliationInvariant(t)
}

func TestApprovePartialFailureReportsStepIndex(t *testing.T) {
	f := newFixture(t, "c1")
	f.addUser("kim")
	f.addMember("c1", "pres", entity.RolePresident)

	application, _ := f.engine.Apply(context.Background(), "kim", "c1", "hi")
	f.members.failStep = "upsert"

	err := f.engine.Approve(context.Background(), "pres", application.ID)
	var stepErr *errorz.StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("err = %v, want StepError", err)
	}
	if stepErr.Index != 1 {
		t.Fatalf("failed step index = %d, want 1", stepErr.Index)
	}

	// Step 0 committed: the application is already settled.
	stored, _ := f.applications.Get(context.Background(), application.ID)
	if stored.Status != entity.ApplicationApproved {
		t.Fatalf("application status = %q, want approved (step 0 committed)", stored.Status)
	}
	// Step 2 never ran: profile still pending.
	if f.users.users["kim"].MyClubStatus != entity.ClubStatusPending {
		t.Fatal("profile mutated past the failed step")
	}
}

func TestFullLifecycleScenario(t *testing.T) {
	f := newFixture(t, "C1")
	f.addUser("kim")
	f.addMember("C1", "pres", entity.RolePresident)

	application, err := f.engine.Apply(context.Background(), "kim", "C1", "관심있습니다")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if application.Status != entity.ApplicationPending || f.users.users["kim"].MyClubStatus != entity.ClubStatusPending {
		t.Fatal("apply did not leave application and profile pending")
	}

	if err = f.engine.Approve(context.Background(), "pres", application.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}
	record, _ := f.members.Get(context.Background(), "C1", "kim")
	user := f.users.users["kim"]
	if record.Role != entity.RoleMember || user.MyClubStatus != entity.ClubStatusApproved || user.MyClubID != "C1" {
		t.Fatal("approve did not settle member state")
	}

	if err = f.engine.ChangeRole(context.Background(), "pres", "C1", "kim", entity.RoleStaff); err != nil {
		t.Fatalf("promote: %v", err)
	}
	record, _ = f.members.Get(context.Background(), "C1", "kim")
	if record.Role != entity.RoleStaff {
		t.Fatalf("role = %q, want staff", record.Role)
	}

	if err = f.engine.DelegatePresident(context.Background(), "pres", "C1", "kim"); err != nil {
		t.Fatalf("delegate: %v", err)
	}
	kimRecord, _ := f.members.Get(context.Background(), "C1", "kim")
	presRecord, _ := f.members.Get(context.Background(), "C1", "pres")
	if kimRecord.Role != entity.RolePresident || presRecord.Role != entity.RoleStaff {
		t.Fatal("delegation did not swap roles")
	}
	if f.users.users["kim"].PresidentOf != "C1" {
		t.Fatalf("kim.presidentOf = %q, want C1", f.users.users["kim"].PresidentOf)
	}
	f.checkAffiliationInvariant(t)
}

func TestResyncMemberProfile(t *testing.T) {
	f := newFixture(t, "c1")
	f.addMember("c1", "kim", entity.RoleStaff)
	f.users.users["kim"].Name = "renamed"
	f.users.users["kim"].Phone = "01099998888"

	if err := f.engine.ResyncMemberProfile(context.Background(), "kim"); err != nil {
		t.Fatalf("resync: %v", err)
	}
	record, _ := f.members.Get(context.Background(), "c1", "kim")
	if record.Name != "renamed" || record.Phone != "01099998888" {
		t.Fatal("roster record not refreshed from profile")
	}
	if record.Role != entity.RoleStaff {
		t.Fatalf("role = %q, want staff preserved", record.Role)
	}

	// Unaffiliated users are a no-op.
	f.addUser("lee")
	if err := f.engine.ResyncMemberProfile(context.Background(), "lee"); err != nil {
		t.Fatalf("resync without club: %v", err)
	}
}

func TestMembersSortedByRole(t *testing.T) {
	f := newFixture(t, "c1")
	f.addMember("c1", "m1", entity.RoleMember)
	f.addMember("c1", "pres", entity.RolePresident)
	f.addMember("c1", "s1", entity.RoleStaff)

	members, err := f.engine.Members(context.Background(), "pres", "c1")
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("len = %d, want 3", len(members))
	}
	if members[0].Role != entity.RolePresident || members[1].Role != entity.RoleStaff || members[2].Role != entity.RoleMember {
		t.Fatalf("order = %q,%q,%q", members[0].Role, members[1].Role, members[2].Role)
	}

	if _, err = f.engine.Members(context.Background(), "m1", "c1"); !errors.Is(err, errorz.Forbidden) {
		t.Fatalf("member lists roster: err = %v, want Forbidden", err)
	}
}

func TestPendingApplicationsPresidentOnly(t *testing.T) {
	f := newFixture(t, "c1")
	f.addUser("kim")
	f.addMember("c1", "pres", entity.RolePresident)

	if _, err := f.engine.Apply(context.Background(), "kim", "c1", "hi"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	pending, err := f.engine.PendingApplications(context.Background(), "pres", "c1")
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 || pending[0].UserID != "kim" {
		t.Fatalf("pending = %+v, want one application from kim", pending)
	}
	if _, err = f.engine.PendingApplications(context.Background(), "kim", "c1"); !errors.Is(err, errorz.Forbidden) {
		t.Fatalf("applicant lists queue: err = %v, want Forbidden", err)
	}
}

func TestStoreOutageIsNotAuthorityDenial(t *testing.T) {
	f := newFixture(t, "c1")
	f.addUser("kim")
	f.addMember("c1", "pres", entity.RolePresident)

	application, err := f.engine.Apply(context.Background(), "kim", "c1", "hi")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	f.members.getErr = fmt.Errorf("%w: connection reset by peer", errorz.Store)

	err = f.engine.Approve(context.Background(), "pres", application.ID)
	if errors.Is(err, errorz.Forbidden) {
		t.Fatalf("store outage reported as Forbidden: %v", err)
	}
	if errors.Is(err, errorz.NotFound) {
		t.Fatalf("store outage reported as NotFound: %v", err)
	}
	if !errors.Is(err, errorz.Store) {
		t.Fatalf("err = %v, want Store", err)
	}

	// Same for the self-service read path.
	if err = f.engine.Leave(context.Background(), "pres", "c1"); !errors.Is(err, errorz.Store) {
		t.Fatalf("leave during outage: err = %v, want Store", err)
	}

	// The application is untouched.
	stored, _ := f.applications.Get(context.Background(), application.ID)
	if stored.Status != entity.ApplicationPending {
		t.Fatalf("application status = %q, want pending", stored.Status)
	}
}

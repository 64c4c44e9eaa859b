package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shingu-dev/club-server/internal/domain/common/errorz"
	"github.com/shingu-dev/club-server/internal/domain/entity"
	"github.com/shingu-dev/club-server/internal/domain/service"
)

type fakeScheduleStorage struct {
	entries map[string]*entity.ScheduleEntry
}

func newFakeScheduleStorage() *fakeScheduleStorage {
	return &fakeScheduleStorage{entries: map[string]*entity.ScheduleEntry{}}
}

func (f *fakeScheduleStorage) Create(_ context.Context, entry *entity.ScheduleEntry) (*entity.ScheduleEntry, error) {
	copied := *entry
	f.entries[entry.ID] = &copied
	return entry, nil
}

func (f *fakeScheduleStorage) GetByClubID(_ context.Context, clubID string) ([]entity.ScheduleEntry, error) {
	var entries []entity.ScheduleEntry
	for _, entry := range f.entries {
		if entry.ClubID == clubID {
			entries = append(entries, *entry)
		}
	}
	return entries, nil
}

func (f *fakeScheduleStorage) GetByDate(_ context.Context, clubID, date string) ([]entity.ScheduleEntry, error) {
	var entries []entity.ScheduleEntry
	for _, entry := range f.entries {
		if entry.ClubID == clubID && entry.Date == date {
			entries = append(entries, *entry)
		}
	}
	return entries, nil
}

func (f *fakeScheduleStorage) Delete(_ context.Context, clubID, id string) error {
	delete(f.entries, id)
	return nil
}

func TestScheduleCreate(t *testing.T) {
	f := newFixture(t, "c1")
	f.addMember("c1", "pres", entity.RolePresident)
	f.addMember("c1", "kim", entity.RoleMember)
	schedules := service.NewScheduleService(newFakeScheduleStorage(), f.members)
	ctx := context.Background()

	entry, err := schedules.Create(ctx, "pres", "c1", "2026-09-01", "정기 모임", "동아리방")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if entry.Date != "2026-09-01" {
		t.Fatalf("date = %q, want 2026-09-01", entry.Date)
	}

	if _, err = schedules.Create(ctx, "pres", "c1", "09/01/2026", "x", ""); !errors.Is(err, errorz.Validation) {
		t.Fatalf("bad date format: err = %v, want Validation", err)
	}
	if _, err = schedules.Create(ctx, "pres", "c1", "2026-09-01", "", ""); !errors.Is(err, errorz.Validation) {
		t.Fatalf("empty title: err = %v, want Validation", err)
	}
	if _, err = schedules.Create(ctx, "kim", "c1", "2026-09-01", "x", ""); !errors.Is(err, errorz.Forbidden) {
		t.Fatalf("member creates entry: err = %v, want Forbidden", err)
	}
}

func TestScheduleByDate(t *testing.T) {
	f := newFixture(t, "c1")
	f.addMember("c1", "pres", entity.RolePresident)
	schedules := service.NewScheduleService(newFakeScheduleStorage(), f.members)
	ctx := context.Background()

	if _, err := schedules.Create(ctx, "pres", "c1", "2026-09-01", "a", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := schedules.Create(ctx, "pres", "c1", "2026-09-02", "b", ""); err != nil {
		t.Fatalf("create: %v", err)
	}

	entries, err := schedules.GetByDate(ctx, "c1", "2026-09-01")
	if err != nil {
		t.Fatalf("by date: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "a" {
		t.Fatalf("entries = %+v, want one entry titled a", entries)
	}

	all, err := schedules.GetByClubID(ctx, "c1")
	if err != nil {
		t.Fatalf("by club: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
}

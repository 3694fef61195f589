package schedule_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/rsetcampus/atspam-api/internal/dto"
	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/models"
	ucSchedule "github.com/rsetcampus/atspam-api/internal/usecase/schedule"
)

type memScheduleRepo struct {
	slots  map[uint]*models.TimeSlot
	booked map[uint]int64
	nextID uint
}

func newMemScheduleRepo() *memScheduleRepo {
	return &memScheduleRepo{
		slots:  map[uint]*models.TimeSlot{},
		booked: map[uint]int64{},
	}
}

func (m *memScheduleRepo) CreateSlot(_ context.Context, slot *models.TimeSlot) error {
	m.nextID++
	slot.ID = m.nextID
	cp := *slot
	m.slots[slot.ID] = &cp
	return nil
}

func (m *memScheduleRepo) ListForDay(_ context.Context, dayStart, dayEnd time.Time) ([]dto.TimeSlotDTO, error) {
	var out []dto.TimeSlotDTO
	for _, s := range m.slots {
		if s.StartTime.Before(dayStart) || !s.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, dto.TimeSlotDTO{TimeSlot: *s, BookedCount: m.booked[s.ID]})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (m *memScheduleRepo) SetAvailability(_ context.Context, slotID uint, available bool) (*models.TimeSlot, error) {
	s, ok := m.slots[slotID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	s.IsAvailable = available
	cp := *s
	return &cp, nil
}

var _ ucSchedule.Repository = (*memScheduleRepo)(nil)

func TestCreateSlot(t *testing.T) {
	repo := newMemScheduleRepo()
	uc := ucSchedule.NewCreateSlot(repo)

	slot, err := uc.Execute(context.Background(), ucSchedule.CreateSlotInput{
		Start:       "2026-09-01T09:00:00Z",
		End:         "2026-09-01T09:30:00Z",
		IsAvailable: true,
		CreatedBy:   1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if slot.ID == 0 {
		t.Error("slot not persisted")
	}
	if !slot.IsAvailable {
		t.Error("availability flag lost")
	}
}

func TestCreateSlotValidation(t *testing.T) {
	repo := newMemScheduleRepo()
	uc := ucSchedule.NewCreateSlot(repo)

	tests := []struct {
		name       string
		start, end string
	}{
		{"garbage start", "nine am", "2026-09-01T09:30:00Z"},
		{"garbage end", "2026-09-01T09:00:00Z", "later"},
		{"end before start", "2026-09-01T10:00:00Z", "2026-09-01T09:00:00Z"},
		{"zero length", "2026-09-01T09:00:00Z", "2026-09-01T09:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), ucSchedule.CreateSlotInput{
				Start: tt.start, End: tt.end, CreatedBy: 1,
			})
			if !httperr.IsBusiness(err, httperr.CodeValidation) {
				t.Errorf("err = %v, want validation_error", err)
			}
		})
	}

	if len(repo.slots) != 0 {
		t.Errorf("slots persisted on validation failure: %d", len(repo.slots))
	}
}

func TestListSlotsForDay(t *testing.T) {
	repo := newMemScheduleRepo()

	mustCreate := func(start, end string) *models.TimeSlot {
		t.Helper()
		slot, err := ucSchedule.NewCreateSlot(repo).Execute(context.Background(), ucSchedule.CreateSlotInput{
			Start: start, End: end, IsAvailable: true, CreatedBy: 1,
		})
		if err != nil {
			t.Fatalf("create %s: %v", start, err)
		}
		return slot
	}

	late := mustCreate("2026-09-01T14:00:00Z", "2026-09-01T14:30:00Z")
	early := mustCreate("2026-09-01T09:00:00Z", "2026-09-01T09:30:00Z")
	mustCreate("2026-09-02T09:00:00Z", "2026-09-02T09:30:00Z")

	repo.booked[late.ID] = 3

	uc := ucSchedule.NewListSlots(repo, "UTC")
	slots, err := uc.Execute(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(slots) != 2 {
		t.Fatalf("slots = %d, want 2", len(slots))
	}
	if slots[0].ID != early.ID || slots[1].ID != late.ID {
		t.Errorf("order = [%d %d], want ascending by start", slots[0].ID, slots[1].ID)
	}
	if slots[1].BookedCount != 3 {
		t.Errorf("booked_count = %d, want 3", slots[1].BookedCount)
	}

	if _, err := uc.Execute(context.Background(), "01/09/2026"); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Errorf("bad date err = %v, want validation_error", err)
	}
}

func TestSetAvailability(t *testing.T) {
	repo := newMemScheduleRepo()
	slot, err := ucSchedule.NewCreateSlot(repo).Execute(context.Background(), ucSchedule.CreateSlotInput{
		Start: "2026-09-01T09:00:00Z", End: "2026-09-01T09:30:00Z", IsAvailable: true, CreatedBy: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	uc := ucSchedule.NewSetAvailability(repo)
	updated, err := uc.Execute(context.Background(), slot.ID, false)
	if err != nil {
		t.Fatalf("set availability: %v", err)
	}
	if updated.IsAvailable {
		t.Error("slot still available after disabling")
	}

	if _, err := uc.Execute(context.Background(), 9999, true); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Errorf("missing slot err = %v, want not_found", err)
	}
}

package appointment_test

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/rsetcampus/atspam-api/internal/domain/appointment"
	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/models"
	"github.com/rsetcampus/atspam-api/internal/rbac"
)

// memRepo implements domain.Repository in memory. The single mutex gives
// the same check-and-set semantics the SQL implementation gets from its
// conditional UPDATEs, which is what the race tests exercise.
type memRepo struct {
	mu           sync.Mutex
	users        map[uint]models.User
	slots        map[uint]models.TimeSlot
	appointments map[uint]*models.Appointment
	counters     map[string]int
	nextID       uint
}

func newMemRepo() *memRepo {
	return &memRepo{
		users:        map[uint]models.User{},
		slots:        map[uint]models.TimeSlot{},
		appointments: map[uint]*models.Appointment{},
		counters:     map[string]int{},
	}
}

func (m *memRepo) addUser(name, role string, active bool) models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	u := models.User{ID: m.nextID, Name: name, Email: name + "@campus.test", Role: role, IsActive: active}
	m.users[u.ID] = u
	return u
}

func (m *memRepo) addSlot(start, end time.Time) models.TimeSlot {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s := models.TimeSlot{ID: m.nextID, StartTime: start, EndTime: end, IsAvailable: true}
	m.slots[s.ID] = s
	return s
}

func (m *memRepo) clone(ap *models.Appointment) *models.Appointment {
	cp := *ap
	if slot, ok := m.slots[ap.TimeSlotID]; ok {
		cp.TimeSlot = slot
	}
	if u, ok := m.users[ap.UserID]; ok {
		cp.User = u
	}
	return &cp
}

func (m *memRepo) GetUser(_ context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &u, nil
}

func (m *memRepo) ListReviewers(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for _, u := range m.users {
		if rbac.IsReviewer(rbac.Role(u.Role)) && u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memRepo) GetSlot(_ context.Context, id uint) (*models.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return &s, nil
}

func (m *memRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	ap.ID = m.nextID
	cp := *ap
	m.appointments[ap.ID] = &cp
	return nil
}

func (m *memRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ap, ok := m.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return m.clone(ap), nil
}

func (m *memRepo) ListByRequester(_ context.Context, userID uint) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.UserID == userID {
			out = append(out, *m.clone(ap))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].BookedAt.After(out[j].BookedAt)
	})
	return out, nil
}

func (m *memRepo) ListPending(_ context.Context) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.Status == string(domain.StatusPending) {
			out = append(out, *m.clone(ap))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].BookedAt.Before(out[j].BookedAt)
	})
	return out, nil
}

func inQueue(status string) bool {
	switch domain.Status(status) {
	case domain.StatusBooked, domain.StatusActive, domain.StatusCompleted, domain.StatusCancelled:
		return true
	default:
		return false
	}
}

func (m *memRepo) ListQueueForDay(_ context.Context, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Appointment
	for _, ap := range m.appointments {
		slot, ok := m.slots[ap.TimeSlotID]
		if !ok || !inQueue(ap.Status) {
			continue
		}
		if slot.StartTime.Before(dayStart) || !slot.StartTime.Before(dayEnd) {
			continue
		}
		out = append(out, *m.clone(ap))
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := out[i].TimeSlot.StartTime, out[j].TimeSlot.StartTime
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		ti, tj := 0, 0
		if out[i].TokenNumber != nil {
			ti = *out[i].TokenNumber
		}
		if out[j].TokenNumber != nil {
			tj = *out[j].TokenNumber
		}
		return ti < tj
	})
	return out, nil
}

func (m *memRepo) Approve(_ context.Context, appointmentID, reviewerID uint, day string, now time.Time) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ap, ok := m.appointments[appointmentID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	// Settle the race before minting, like the SQL CAS: a loser must
	// never advance the counter.
	if err := domain.CanReview(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	m.counters[day]++
	if err := domain.Approve(ap, reviewerID, m.counters[day], now); err != nil {
		return nil, err
	}
	return m.clone(ap), nil
}

func (m *memRepo) Reject(_ context.Context, appointmentID, reviewerID uint, now time.Time) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ap, ok := m.appointments[appointmentID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	if err := domain.Reject(ap, reviewerID, now); err != nil {
		return nil, err
	}
	return m.clone(ap), nil
}

func (m *memRepo) UpdateStatusCAS(_ context.Context, appointmentID uint, from, to domain.Status, now time.Time) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ap, ok := m.appointments[appointmentID]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}
	if ap.Status != string(from) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	if err := domain.SetStatus(ap, to, now); err != nil {
		return nil, err
	}
	return m.clone(ap), nil
}

var _ domain.Repository = (*memRepo)(nil)

// memSink collects dispatched notifications for assertions.
type memSink struct {
	mu       sync.Mutex
	received map[uint][]string
}

func newMemSink() *memSink {
	return &memSink{received: map[uint][]string{}}
}

func (s *memSink) Append(userID uint, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received[userID] = append(s.received[userID], message)
	return nil
}

func (s *memSink) messagesFor(userID uint) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.received[userID]...)
}

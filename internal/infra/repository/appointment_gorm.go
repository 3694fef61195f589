package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/rsetcampus/atspam-api/internal/domain/appointment"
	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/models"
	"github.com/rsetcampus/atspam-api/internal/rbac"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}
	return err
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &user, nil
}

func (r *AppointmentGormRepository) ListReviewers(
	ctx context.Context,
) ([]models.User, error) {

	var reviewers []models.User
	err := r.db.WithContext(ctx).
		Where("role IN ? AND is_active = ?",
			[]string{string(rbac.RolePrincipal), string(rbac.RoleAdmin)}, true).
		Find(&reviewers).Error
	if err != nil {
		return nil, err
	}
	return reviewers, nil
}

// --------------------------------------------------
// Time slot
// --------------------------------------------------

func (r *AppointmentGormRepository) GetSlot(
	ctx context.Context,
	id uint,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &slot, nil
}

// --------------------------------------------------
// Appointment (create / read)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("TimeSlot").
		First(&ap, id).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListByRequester(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("TimeSlot").
		Where("user_id = ?", userID).
		Order("booked_at DESC").
		Find(&aps).Error
	if err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListPending(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("TimeSlot").
		Where("status = ?", string(domain.StatusPending)).
		Order("booked_at ASC").
		Find(&aps).Error
	if err != nil {
		return nil, err
	}
	return aps, nil
}

var queueStatuses = []string{
	string(domain.StatusBooked),
	string(domain.StatusActive),
	string(domain.StatusCompleted),
	string(domain.StatusCancelled),
}

func (r *AppointmentGormRepository) ListQueueForDay(
	ctx context.Context,
	dayStart, dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	err := r.db.WithContext(ctx).
		Joins("JOIN time_slots ON time_slots.id = appointments.time_slot_id").
		Where("time_slots.start_time >= ? AND time_slots.start_time < ?", dayStart, dayEnd).
		Where("appointments.status IN ?", queueStatuses).
		Order("time_slots.start_time ASC, appointments.token_number ASC").
		Preload("User").
		Preload("TimeSlot").
		Find(&aps).Error
	if err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

// Approve is the race decider: the status CAS runs first, so a losing
// reviewer rolls back without ever touching the day counter.
func (r *AppointmentGormRepository) Approve(
	ctx context.Context,
	appointmentID, reviewerID uint,
	day string,
	now time.Time,
) (*models.Appointment, error) {

	var ap models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		res := tx.Model(&models.Appointment{}).
			Where("id = ? AND status = ?", appointmentID, string(domain.StatusPending)).
			Updates(map[string]any{
				"status":      string(domain.StatusBooked),
				"reviewed_by": reviewerID,
				"reviewed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness(httperr.CodeAlreadyReviewed)
		}

		var token int
		if err := tx.Raw(`
			INSERT INTO queue_counters (day, last_value, updated_at)
			VALUES (?, 1, ?)
			ON CONFLICT (day) DO UPDATE
			SET last_value = queue_counters.last_value + 1,
			    updated_at = EXCLUDED.updated_at
			RETURNING last_value`, day, now).Scan(&token).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Appointment{}).
			Where("id = ?", appointmentID).
			Update("token_number", token).Error; err != nil {
			return err
		}

		return tx.Preload("User").Preload("TimeSlot").First(&ap, appointmentID).Error
	})
	if err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) Reject(
	ctx context.Context,
	appointmentID, reviewerID uint,
	now time.Time,
) (*models.Appointment, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", appointmentID, string(domain.StatusPending)).
		Updates(map[string]any{
			"status":      string(domain.StatusRejected),
			"reviewed_by": reviewerID,
			"reviewed_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeAlreadyReviewed)
	}

	return r.GetAppointment(ctx, appointmentID)
}

func (r *AppointmentGormRepository) UpdateStatusCAS(
	ctx context.Context,
	appointmentID uint,
	from, to domain.Status,
	now time.Time,
) (*models.Appointment, error) {

	values := map[string]any{"status": string(to)}
	switch to {
	case domain.StatusCompleted:
		values["completed_at"] = now
	case domain.StatusCancelled:
		values["cancelled_at"] = now
	}

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", appointmentID, string(from)).
		Updates(values)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	return r.GetAppointment(ctx, appointmentID)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)

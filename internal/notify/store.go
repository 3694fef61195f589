package notify

import (
	"context"

	"gorm.io/gorm"

	"github.com/rsetcampus/atspam-api/internal/models"
)

// Store persists notifications and keeps the unread cache in step.
type Store struct {
	db    *gorm.DB
	cache *UnreadCache
}

func New(db *gorm.DB, cache *UnreadCache) *Store {
	return &Store{db: db, cache: cache}
}

func (s *Store) Append(userID uint, message string) error {
	n := models.Notification{
		UserID:  userID,
		Message: message,
	}

	if err := s.db.Create(&n).Error; err != nil {
		return err
	}

	s.cache.Incr(context.Background(), userID)
	return nil
}

func (s *Store) ListForUser(ctx context.Context, userID uint) ([]models.Notification, error) {
	var out []models.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// MarkAllRead flips every unread notification for the user. Running it
// twice is a no-op the second time.
func (s *Store) MarkAllRead(ctx context.Context, userID uint) error {
	err := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		return err
	}

	s.cache.Reset(ctx, userID)
	return nil
}

func (s *Store) CountUnread(ctx context.Context, userID uint) (int64, error) {
	if n, ok := s.cache.Get(ctx, userID); ok {
		return n, nil
	}

	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	s.cache.Set(ctx, userID, count)
	return count, nil
}

package session

import (
	"context"
	"strings"
	"time"

	"github.com/ljubanOpacic10/tiac-food-ordering/domain"
	"github.com/ljubanOpacic10/tiac-food-ordering/entities"

	"gorm.io/gorm"
)

type (
	SessionRepository interface {
		GetActiveVotingSession(ctx context.Context) (*entities.VotingSession, error)
		StartVotingSession(ctx context.Context) (*entities.VotingSession, error)
		EndVotingSession(ctx context.Context, id string) error

		GetActiveOrderingSession(ctx context.Context) (*entities.OrderingSession, error)
		StartOrderingSession(ctx context.Context) (*entities.OrderingSession, error)
		EndOrderingSession(ctx context.Context, id string) error
	}

	sessionRepository struct {
		db *gorm.DB
	}
)

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) GetActiveVotingSession(ctx context.Context) (*entities.VotingSession, error) {
	var session entities.VotingSession
	if err := r.db.WithContext(ctx).
		Where("status = ?", entities.SessionStatusActive).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// StartVotingSession inserts the new active row inside a transaction. The
// partial unique index on (status) WHERE status = 'active' rejects a
// concurrent second start, so the pre-check is advisory only. A new
// session starts with a clean ballot: counters zeroed, vote rows gone.
func (r *sessionRepository) StartVotingSession(ctx context.Context) (*entities.VotingSession, error) {
	session := &entities.VotingSession{
		StartTime: time.Now(),
		Status:    entities.SessionStatusActive,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.VotingSession{}).
			Where("status = ?", entities.SessionStatusActive).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrSessionAlreadyActive
		}

		if err := tx.Model(&entities.Restaurant{}).
			Where("votes <> 0").
			Update("votes", 0).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&entities.UserVote{}).Error; err != nil {
			return err
		}

		return tx.Create(session).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrSessionAlreadyActive
		}
		return nil, err
	}
	return session, nil
}

func (r *sessionRepository) EndVotingSession(ctx context.Context, id string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.VotingSession{}).
		Where("id = ? AND status = ?", id, entities.SessionStatusActive).
		Updates(map[string]interface{}{
			"status":   entities.SessionStatusInactive,
			"end_time": now,
		}).Error
}

func (r *sessionRepository) GetActiveOrderingSession(ctx context.Context) (*entities.OrderingSession, error) {
	var session entities.OrderingSession
	if err := r.db.WithContext(ctx).
		Where("status = ?", entities.SessionStatusActive).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) StartOrderingSession(ctx context.Context) (*entities.OrderingSession, error) {
	session := &entities.OrderingSession{
		StartTime: time.Now(),
		Status:    entities.SessionStatusActive,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.OrderingSession{}).
			Where("status = ?", entities.SessionStatusActive).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrSessionAlreadyActive
		}
		return tx.Create(session).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrSessionAlreadyActive
		}
		return nil, err
	}
	return session, nil
}

func (r *sessionRepository) EndOrderingSession(ctx context.Context, id string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.OrderingSession{}).
		Where("id = ? AND status = ?", id, entities.SessionStatusActive).
		Updates(map[string]interface{}{
			"status":   entities.SessionStatusInactive,
			"end_time": now,
		}).Error
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}

package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrActivityNotFound      = errors.New("activity not found")
	ErrActivityFull          = errors.New("activity is full")
	ErrAlreadyRegistered     = errors.New("already registered for this activity")
	ErrParticipationNotFound = errors.New("participation not found")
)

type Activity struct {
	ID uint `gorm:"primaryKey"`

	Title           string    `gorm:"not null"`
	Description     string    `gorm:"not null"`
	Type            string    `gorm:"not null"`
	Date            time.Time `gorm:"not null"`
	Location        string    `gorm:"not null"`
	Capacity        int       `gorm:"not null"`
	RegisteredCount int       `gorm:"not null;default:0"`
	ImageURL        string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Participation struct {
	ID uint `gorm:"primaryKey"`

	UserID     uint   `gorm:"not null;index"`
	ActivityID uint   `gorm:"not null;index"`
	Status     string `gorm:"not null;default:registered"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ActivityDAO struct {
	db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{
		db: db,
	}
}

func (d *ActivityDAO) Insert(ctx context.Context, activity Activity) (Activity, error) {
	result := d.db.WithContext(ctx).Create(&activity)
	if result.Error != nil {
		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *ActivityDAO) FindByID(ctx context.Context, id uint) (Activity, error) {
	var activity Activity

	result := d.db.WithContext(ctx).First(&activity, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Activity{}, ErrActivityNotFound
		}

		return Activity{}, result.Error
	}

	return activity, nil
}

func (d *ActivityDAO) FindAll(ctx context.Context) ([]Activity, error) {
	var activities []Activity

	result := d.db.WithContext(ctx).Order("date").Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

func (d *ActivityDAO) FindUpcoming(ctx context.Context) ([]Activity, error) {
	var activities []Activity

	result := d.db.WithContext(ctx).Where("date > ?", time.Now()).Order("date").Find(&activities)
	if result.Error != nil {
		return nil, result.Error
	}

	return activities, nil
}

// Update never touches capacity or registered_count; the counter moves
// only through RegisterParticipant and CancelParticipation.
func (d *ActivityDAO) Update(ctx context.Context, activity Activity) (Activity, error) {
	result := d.db.WithContext(ctx).Model(&Activity{ID: activity.ID}).Updates(map[string]any{
		"title":       activity.Title,
		"description": activity.Description,
		"type":        activity.Type,
		"date":        activity.Date,
		"location":    activity.Location,
		"image_url":   activity.ImageURL,
	})
	if result.Error != nil {
		return Activity{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Activity{}, ErrActivityNotFound
	}

	return d.FindByID(ctx, activity.ID)
}

func (d *ActivityDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Activity{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrActivityNotFound
	}

	return nil
}

// RegisterParticipant admits a user into an activity. The seat is taken
// with a conditional update (registered_count < capacity) so concurrent
// registrations at the last seat admit exactly one, and the participation
// insert rides the same transaction as the counter bump. Concurrent
// duplicates by the same user are caught by the partial unique index on
// live participations; the rollback releases the seat.
func (d *ActivityDAO) RegisterParticipant(ctx context.Context, userID, activityID uint) (Participation, error) {
	var participation Participation

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var activity Activity
		if err := tx.First(&activity, activityID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrActivityNotFound
			}

			return err
		}

		var existing int64
		if err := tx.Model(&Participation{}).
			Where("user_id = ? AND activity_id = ? AND status <> ?", userID, activityID, "cancelled").
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyRegistered
		}

		result := tx.Model(&Activity{}).
			Where("id = ? AND registered_count < capacity", activityID).
			UpdateColumn("registered_count", gorm.Expr("registered_count + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrActivityFull
		}

		participation = Participation{
			UserID:     userID,
			ActivityID: activityID,
			Status:     "registered",
		}

		if err := tx.Create(&participation).Error; err != nil {
			if isUniqueViolation(err, "idx_participations_user_activity_live") {
				return ErrAlreadyRegistered
			}

			return err
		}

		return nil
	})
	if err != nil {
		return Participation{}, err
	}

	return participation, nil
}

// CancelParticipation marks the user's live participation cancelled and
// releases the seat, atomically with the status change.
func (d *ActivityDAO) CancelParticipation(ctx context.Context, userID, activityID uint) (Participation, error) {
	var participation Participation

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.First(&participation,
			"user_id = ? AND activity_id = ? AND status <> ?", userID, activityID, "cancelled")
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrParticipationNotFound
			}

			return result.Error
		}

		participation.Status = "cancelled"
		if err := tx.Model(&Participation{ID: participation.ID}).
			Update("status", "cancelled").Error; err != nil {
			return err
		}

		return tx.Model(&Activity{}).
			Where("id = ? AND registered_count > 0", activityID).
			UpdateColumn("registered_count", gorm.Expr("registered_count - 1")).Error
	})
	if err != nil {
		return Participation{}, err
	}

	return participation, nil
}

func (d *ActivityDAO) FindParticipation(ctx context.Context, userID, activityID uint) (Participation, error) {
	var participation Participation

	result := d.db.WithContext(ctx).First(&participation,
		"user_id = ? AND activity_id = ? AND status <> ?", userID, activityID, "cancelled")
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participation{}, ErrParticipationNotFound
		}

		return Participation{}, result.Error
	}

	return participation, nil
}

func (d *ActivityDAO) FindParticipationsByUserID(ctx context.Context, userID uint) ([]Participation, error) {
	var participations []Participation

	result := d.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&participations)
	if result.Error != nil {
		return nil, result.Error
	}

	return participations, nil
}

func (d *ActivityDAO) CountByType(ctx context.Context, activityType string) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Activity{}).Where("type = ?", activityType).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *ActivityDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Activity{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectAlreadyJoined = errors.New("already registered for this project")
)

type Project struct {
	ID uint `gorm:"primaryKey"`

	Title        string `gorm:"not null"`
	Description  string `gorm:"not null"`
	Domain       string `gorm:"not null"`
	Status       string `gorm:"not null;default:upcoming"`
	Participants int    `gorm:"not null;default:0"`
	ImageURL     string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ProjectParticipation struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;index:idx_project_participations_user_project,unique"`
	ProjectID uint `gorm:"not null;index:idx_project_participations_user_project,unique"`
	CreatedAt time.Time
}

type ProjectDAO struct {
	db *gorm.DB
}

func NewProjectDAO(db *gorm.DB) *ProjectDAO {
	return &ProjectDAO{
		db: db,
	}
}

func (d *ProjectDAO) Insert(ctx context.Context, project Project) (Project, error) {
	result := d.db.WithContext(ctx).Create(&project)
	if result.Error != nil {
		return Project{}, result.Error
	}

	return project, nil
}

func (d *ProjectDAO) FindByID(ctx context.Context, id uint) (Project, error) {
	var project Project

	result := d.db.WithContext(ctx).First(&project, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Project{}, ErrProjectNotFound
		}

		return Project{}, result.Error
	}

	return project, nil
}

func (d *ProjectDAO) FindAll(ctx context.Context) ([]Project, error) {
	var projects []Project

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}

	return projects, nil
}

func (d *ProjectDAO) FindByStatus(ctx context.Context, status string) ([]Project, error) {
	var projects []Project

	result := d.db.WithContext(ctx).Where("status = ?", status).Order("created_at DESC").Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}

	return projects, nil
}

func (d *ProjectDAO) Update(ctx context.Context, project Project) (Project, error) {
	result := d.db.WithContext(ctx).Model(&Project{ID: project.ID}).Updates(map[string]any{
		"title":       project.Title,
		"description": project.Description,
		"domain":      project.Domain,
		"status":      project.Status,
		"image_url":   project.ImageURL,
	})
	if result.Error != nil {
		return Project{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Project{}, ErrProjectNotFound
	}

	return d.FindByID(ctx, project.ID)
}

func (d *ProjectDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// RegisterParticipant creates the join row and bumps the participants
// counter in one transaction so the two writes cannot diverge.
func (d *ProjectDAO) RegisterParticipant(ctx context.Context, userID, projectID uint) (ProjectParticipation, error) {
	var participation ProjectParticipation

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&ProjectParticipation{}).
			Where("user_id = ? AND project_id = ?", userID, projectID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrProjectAlreadyJoined
		}

		participation = ProjectParticipation{
			UserID:    userID,
			ProjectID: projectID,
		}
		if err := tx.Create(&participation).Error; err != nil {
			if isUniqueViolation(err, "idx_project_participations_user_project") {
				return ErrProjectAlreadyJoined
			}

			return err
		}

		result := tx.Model(&Project{}).
			Where("id = ?", projectID).
			UpdateColumn("participants", gorm.Expr("participants + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProjectNotFound
		}

		return nil
	})
	if err != nil {
		return ProjectParticipation{}, err
	}

	return participation, nil
}

// CountCompletedByUserID counts the completed projects a user has
// participated in.
func (d *ProjectDAO) CountCompletedByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&ProjectParticipation{}).
		Joins("JOIN projects ON projects.id = project_participations.project_id").
		Where("project_participations.user_id = ? AND projects.status = ?", userID, "completed").
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

func (d *ProjectDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Project{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

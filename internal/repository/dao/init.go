package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&User{},
		&Project{},
		&ProjectParticipation{},
		&Activity{},
		&Participation{},
		&Donation{},
		&SpaceRequest{},
		&Contact{},
		&GalleryItem{},
		&Setting{},
	); err != nil {
		return err
	}

	// At most one non-cancelled participation per (user, activity).
	// Partial indexes cannot be expressed through gorm tags.
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_participations_user_activity_live
		ON participations (user_id, activity_id) WHERE status <> 'cancelled'`).Error
}

package repository

import (
	"hms-backend/models"

	"gorm.io/gorm"
)

// AdminStore is the persistence boundary for admin records.
type AdminStore interface {
	FindByUsername(username string) (*models.Admin, error)
	Save(admin *models.Admin) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminStore {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Save(admin *models.Admin) error {
	return r.db.Save(admin).Error
}

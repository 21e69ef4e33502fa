package repository

import (
	"hms-backend/models"

	"gorm.io/gorm"
)

// DoctorStore is the persistence boundary for doctor records.
type DoctorStore interface {
	FindByID(id uint) (*models.Doctor, error)
	FindByEmail(email string) (*models.Doctor, error)
	ExistsByID(id uint) (bool, error)
	Save(doctor *models.Doctor) error
	DeleteByID(id uint) error
	FindAll() ([]models.Doctor, error)
	FindByNameLike(name string) ([]models.Doctor, error)
	FindBySpecialty(specialty string) ([]models.Doctor, error)
	FindByNameLikeAndSpecialty(name, specialty string) ([]models.Doctor, error)
}

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) DoctorStore {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) FindByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.Where("doctor_id = ?", id).First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByEmail(email string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.Where("email = ?", email).First(&doctor).Error; err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Doctor{}).Where("doctor_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *doctorRepository) Save(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

func (r *doctorRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.Doctor{}, "doctor_id = ?", id).Error
}

func (r *doctorRepository) FindAll() ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByNameLike(name string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindBySpecialty(specialty string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.Where("LOWER(specialty) = LOWER(?)", specialty).Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByNameLikeAndSpecialty(name, specialty string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Where("LOWER(specialty) = LOWER(?)", specialty).
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

package repository

import (
	"hms-backend/models"

	"gorm.io/gorm"
)

// PatientStore is the persistence boundary for patient records.
type PatientStore interface {
	FindByID(id uint) (*models.Patient, error)
	FindByEmail(email string) (*models.Patient, error)
	FindByEmailOrPhone(email, phone string) (*models.Patient, error)
	ExistsByID(id uint) (bool, error)
	Save(patient *models.Patient) error
}

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) PatientStore {
	return &patientRepository{db: db}
}

func (r *patientRepository) FindByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.Where("patient_id = ?", id).First(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByEmail(email string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.Where("email = ?", email).First(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByEmailOrPhone(email, phone string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.Where("email = ? OR phone = ?", email, phone).First(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Patient{}).Where("patient_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *patientRepository) Save(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

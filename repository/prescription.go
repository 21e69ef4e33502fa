package repository

import (
	"hms-backend/models"

	"gorm.io/gorm"
)

// PrescriptionStore is the persistence boundary for prescriptions. There is no
// update or delete: a prescription is written once by a doctor.
type PrescriptionStore interface {
	Save(prescription *models.Prescription) error
	FindByAppointmentID(appointmentID uint) ([]models.Prescription, error)
}

type prescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepository(db *gorm.DB) PrescriptionStore {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Save(prescription *models.Prescription) error {
	return r.db.Save(prescription).Error
}

func (r *prescriptionRepository) FindByAppointmentID(appointmentID uint) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	if err := r.db.Where("appointment_id = ?", appointmentID).Find(&prescriptions).Error; err != nil {
		return nil, err
	}
	return prescriptions, nil
}

package repository

import (
	"time"

	"hms-backend/models"

	"gorm.io/gorm"
)

// AppointmentStore is the persistence boundary for appointments.
type AppointmentStore interface {
	FindByID(id uint) (*models.Appointment, error)
	Save(appointment *models.Appointment) error
	Delete(id uint) error
	FindByDoctorIDAndTimeBetween(doctorID uint, start, end time.Time) ([]models.Appointment, error)
	FindByPatientID(patientID uint) ([]models.Appointment, error)
	DeleteAllByDoctorID(doctorID uint) error
}

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) AppointmentStore {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.Where("appointment_id = ?", id).First(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Save(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

func (r *appointmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Appointment{}, "appointment_id = ?", id).Error
}

// FindByDoctorIDAndTimeBetween lists a doctor's appointments in [start, end),
// ordered by time.
func (r *appointmentRepository) FindByDoctorIDAndTimeBetween(doctorID uint, start, end time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Where("doctor_id = ? AND appointment_time >= ? AND appointment_time < ?", doctorID, start, end).
		Order("appointment_time").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := r.db.Where("patient_id = ?", patientID).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) DeleteAllByDoctorID(doctorID uint) error {
	return r.db.Delete(&models.Appointment{}, "doctor_id = ?", doctorID).Error
}

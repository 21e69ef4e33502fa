package models

import "time"

// Appointment booking statuses.
const (
	StatusBooked    = "booked"
	StatusCompleted = "completed"
)

type Appointment struct {
	AppointmentID uint `json:"appointment_id" gorm:"primaryKey"`
	DoctorID      uint `json:"doctor_id" gorm:"not null;uniqueIndex:idx_doctor_slot"`
	PatientID     uint `json:"patient_id" gorm:"not null"`
	// PatientName is a cached projection of Patient.Name taken at booking
	// time. It is not refreshed when the patient record changes.
	PatientName     string    `json:"patient_name"`
	AppointmentTime time.Time `json:"appointment_time" gorm:"not null;uniqueIndex:idx_doctor_slot"`
	Status          string    `json:"status"`
}

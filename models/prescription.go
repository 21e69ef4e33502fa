package models

type Prescription struct {
	ID            string `json:"id" gorm:"primaryKey"`
	PatientName   string `json:"patient_name" gorm:"not null" validate:"required,min=3,max=100"`
	AppointmentID uint   `json:"appointment_id" gorm:"not null" validate:"required"`
	Medication    string `json:"medication" gorm:"not null" validate:"required,min=3,max=100"`
	Dosage        string `json:"dosage" gorm:"not null" validate:"required,min=3,max=20"`
	DoctorNotes   string `json:"doctor_notes,omitempty" validate:"max=200"`
}

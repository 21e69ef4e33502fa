package models

type Patient struct {
	PatientID uint   `json:"patient_id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null" validate:"required,min=3,max=100"`
	Email     string `json:"email" gorm:"unique;not null" validate:"required,email"`
	Phone     string `json:"phone" gorm:"unique;not null" validate:"required,len=10,numeric"`
	Password  string `json:"password,omitempty" gorm:"not null" validate:"required,min=6"`
	Address   string `json:"address" gorm:"not null" validate:"required,max=255"`
}

// VerifyOTP is the payload for the signup confirmation step.
type VerifyOTP struct {
	Email string `json:"email"`
	Otp   string `json:"otp"`
}

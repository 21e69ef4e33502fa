package models

type Doctor struct {
	DoctorID       uint     `json:"doctor_id" gorm:"primaryKey"`
	Name           string   `json:"name" gorm:"not null" validate:"required,min=3,max=100"`
	Specialty      string   `json:"specialty" gorm:"not null" validate:"required,min=3,max=50"`
	Email          string   `json:"email" gorm:"unique;not null" validate:"required,email"`
	Password       string   `json:"password,omitempty" gorm:"not null" validate:"required,min=6"`
	Phone          string   `json:"phone" gorm:"not null" validate:"required,len=10,numeric"`
	AvailableTimes []string `json:"available_times" gorm:"serializer:json"`
}

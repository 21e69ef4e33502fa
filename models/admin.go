package models

type Admin struct {
	AdminID  uint   `json:"admin_id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"unique;not null" validate:"required"`
	Password string `json:"password" gorm:"not null" validate:"required"`
}

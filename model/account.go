package model

type Account struct {
	DTO
	Username string `gorm:"unique;not null" validate:"required" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:STAFF" json:"role"` // ADMIN, MANAGER, STAFF
	Active   bool   `gorm:"default:true" json:"active"`
}

type CreateAccountInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=ADMIN MANAGER STAFF"`
}

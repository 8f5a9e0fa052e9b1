package domain

import "time"

type Role string

const (
	// RoleUser is the operational role: view rooms, run status
	// transitions and housekeeping actions.
	RoleUser Role = "hotel_user"
	// RoleManager additionally manages rooms, room types and floors.
	RoleManager Role = "hotel_manager"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role" gorm:"size:20;default:hotel_user"`
	Active       bool      `json:"active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

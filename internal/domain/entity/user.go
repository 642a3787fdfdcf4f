package entity

import "time"

// User is an operator of the system. Administrators manage locations and users and
// receive return-to-stock notifications.
type User struct {
	ID                 uint      `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email,omitempty"`
	RegistrationNumber string    `json:"registration_number,omitempty"`
	PasswordHash       string    `json:"-"`
	IsAdmin            bool      `json:"is_admin"`
	CreatedAt          time.Time `json:"created_at"`
}

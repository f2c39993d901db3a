package user

import "time"

type User struct {
	ID           string
	TelegramID   string
	Email        string
	Name         string
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package models

import "time"

// User is a sales agent (or manager/admin) account.
type User struct {
	ID             int64  `json:"id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	PasswordHash   string `json:"-"` // never serialized
	RoleID         int    `json:"role_id"`
	TelegramChatID int64  `json:"telegram_chat_id,omitempty"`

	// refresh token storage
	RefreshToken     *string    `json:"-"`
	RefreshExpiresAt *time.Time `json:"-"`
	RefreshRevoked   bool       `json:"-"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

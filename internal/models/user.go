package models

import (
	"database/sql"
	"time"
)

// User is a row of the profiles table.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	FullName     string         `db:"full_name"`
	Email        sql.NullString `db:"email"`
	Role         string         `db:"role"`
	IsActive     bool           `db:"is_active"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	// Refresh Token Fields
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`        // Store hash of the refresh token
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"` // Expiry of the stored refresh token
}

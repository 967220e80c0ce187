package models

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/serr"
	"golang.org/x/crypto/bcrypt"
)

// User is an account that may publish pages (FTP push, email delivery).
// PasswordHash uses bcrypt and is never exposed in JSON.
type User struct {
	ID           int64          `json:"id"`
	GUID         string         `json:"guid"`
	Username     string         `json:"username"`
	Email        sql.NullString `json:"email"`
	PasswordHash string         `json:"-"`
	IsActive     bool           `json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	LastLoginAt  sql.NullTime   `json:"last_login_at"`
}

// UserRegisterInput contains the data required for registration.
// Password arrives plaintext and is hashed before storage.
type UserRegisterInput struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email,omitempty"`
}

// UserLoginInput contains credentials for authentication.
type UserLoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserOutput is the JSON-safe representation of a User.
type UserOutput struct {
	ID        int64     `json:"id"`
	GUID      string    `json:"guid"`
	Username  string    `json:"username"`
	Email     *string   `json:"email,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ToOutput converts a User for API responses.
func (u *User) ToOutput() UserOutput {
	out := UserOutput{
		ID:        u.ID,
		GUID:      u.GUID,
		Username:  u.Username,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
	if u.Email.Valid {
		out.Email = &u.Email.String
	}
	return out
}

// Cost of 12 keeps login times reasonable (~250ms) at current hardware
const bcryptCost = 12

// HashPassword creates a bcrypt hash of the plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", serr.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against its hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword requires a minimum of 8 characters.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return serr.New("password must be at least 8 characters")
	}
	return nil
}

// ValidateUsername requires 3-50 characters, alphanumeric and underscores.
func ValidateUsername(username string) error {
	if len(username) < 3 {
		return serr.New("username must be at least 3 characters")
	}
	if len(username) > 50 {
		return serr.New("username must be at most 50 characters")
	}
	for _, c := range username {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_') {
			return serr.New("username can only contain letters, numbers, and underscores")
		}
	}
	return nil
}

// CreateUser creates a new user, hashing the password and assigning a GUID.
// Duplicate username/email surfaces as an "already exists" error.
func CreateUser(input UserRegisterInput) (*User, error) {
	if err := ValidateUsername(input.Username); err != nil {
		return nil, err
	}
	if err := ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	var email sql.NullString
	if input.Email != nil && *input.Email != "" {
		email = sql.NullString{String: *input.Email, Valid: true}
	}

	query := `
		INSERT INTO users (guid, username, email, password_hash)
		VALUES (?, ?, ?, ?)
		RETURNING id, guid, username, email, password_hash, is_active,
		          created_at, updated_at, last_login_at
	`

	user := &User{}
	err = db.QueryRow(query, uuid.NewString(), input.Username, email, passwordHash).Scan(
		&user.ID, &user.GUID, &user.Username, &user.Email, &user.PasswordHash,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt, &user.LastLoginAt,
	)
	if err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE") || strings.Contains(errStr, "unique") || strings.Contains(errStr, "duplicate") {
			if strings.Contains(errStr, "username") {
				return nil, serr.New("username already exists")
			}
			if strings.Contains(errStr, "email") {
				return nil, serr.New("email already exists")
			}
			return nil, serr.New("username or email already exists")
		}
		return nil, serr.Wrap(err, "failed to create user")
	}

	return user, nil
}

// GetUserByUsername retrieves a user by username, nil if not found.
func GetUserByUsername(username string) (*User, error) {
	query := `
		SELECT id, guid, username, email, password_hash, is_active,
		       created_at, updated_at, last_login_at
		FROM users WHERE username = ?
	`

	user := &User{}
	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.GUID, &user.Username, &user.Email, &user.PasswordHash,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt, &user.LastLoginAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, serr.Wrap(err, "failed to get user by username")
	}
	return user, nil
}

// Authenticate verifies credentials and records the login time.
// Returns nil, nil for unknown users or wrong passwords.
func Authenticate(input UserLoginInput) (*User, error) {
	user, err := GetUserByUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, nil
	}
	if !CheckPassword(input.Password, user.PasswordHash) {
		return nil, nil
	}

	now := time.Now().UTC()
	if _, err := db.Exec("UPDATE users SET last_login_at = ? WHERE id = ?", now, user.ID); err != nil {
		return nil, serr.Wrap(err, "failed to record login time")
	}
	user.LastLoginAt = sql.NullTime{Time: now, Valid: true}

	return user, nil
}

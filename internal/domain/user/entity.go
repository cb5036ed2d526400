package user

import "time"

// Source records how the account was first created.
type Source string

const (
	SourceEmail  Source = "email"  // registered with email + verification code
	SourceGoogle Source = "google" // provisioned on first Google sign-in
)

type User struct {
	ID               int64
	Username         string
	Email            *string
	PasswordHash     string
	Source           Source
	CurrentCompanyID *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

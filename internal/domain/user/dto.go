package user

// UserResponse represents user data in API responses. The password hash is
// never serialized.
type UserResponse struct {
	ID               int64   `json:"id"`
	Username         string  `json:"username"`
	Email            *string `json:"email,omitempty"`
	Source           string  `json:"source"`
	CurrentCompanyID *int64  `json:"current_company_id,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Username:         u.Username,
		Email:            u.Email,
		Source:           string(u.Source),
		CurrentCompanyID: u.CurrentCompanyID,
		CreatedAt:        u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

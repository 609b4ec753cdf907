package auth

import "estatehub/internal/domain"

type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type UserPublic struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Image string          `json:"image,omitempty"`
	Role  domain.UserRole `json:"role"`
}

func ToUserPublic(u *domain.User) UserPublic {
	return UserPublic{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Image: u.Image,
		Role:  u.Role,
	}
}

type AuthResult struct {
	Token string
	User  *domain.User
}

// GoogleIdentity is the subset of a verified Google ID token we use.
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
	Picture string
}

package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"estatehub/internal/domain"
	"estatehub/internal/pkg/mailer"
	"estatehub/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Service contains all business logic for authentication
type Service struct {
	users    UserRepository
	jwt      TokenIssuer
	google   GoogleVerifier
	mailer   mailer.Mailer
	resetTTL time.Duration
	// exposeResetToken returns the raw reset token to the caller; dev only.
	exposeResetToken bool
	now              func() time.Time
}

// NewService builds the auth service. google may be nil when Google login is disabled.
func NewService(users UserRepository, jwt TokenIssuer, google GoogleVerifier, m mailer.Mailer, resetTTL time.Duration, exposeResetToken bool) *Service {
	return &Service{
		users:            users,
		jwt:              jwt,
		google:           google,
		mailer:           m,
		resetTTL:         resetTTL,
		exposeResetToken: exposeResetToken,
		now:              time.Now,
	}
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	name := strings.TrimSpace(req.Name)
	if n := len([]rune(name)); n < 2 || n > 80 {
		return nil, fmt.Errorf("%w: name must be between 2 and 80 characters", ErrValidation)
	}
	if err := checkPasswordStrength(req.Password); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return s.issue(user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.HasLocalPassword() {
		return nil, ErrNoLocalPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.IsBlocked {
		return nil, ErrAccountBlocked
	}

	return s.issue(user)
}

// GoogleLogin signs in with a Google ID token, creating the account on first
// use or linking it to an existing account with the same email.
func (s *Service) GoogleLogin(ctx context.Context, req GoogleLoginRequest) (*AuthResult, error) {
	if s.google == nil {
		return nil, ErrGoogleNotConfigured
	}

	identity, err := s.google.Verify(ctx, req.IDToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByGoogleID(ctx, identity.Subject)
	if errors.Is(err, repository.ErrNotFound) {
		user, err = s.users.GetByEmail(ctx, identity.Email)
	}

	switch {
	case errors.Is(err, repository.ErrNotFound):
		name := strings.TrimSpace(identity.Name)
		if name == "" {
			name = strings.SplitN(identity.Email, "@", 2)[0]
		}
		user = &domain.User{
			Name:     name,
			Email:    identity.Email,
			GoogleID: identity.Subject,
			Image:    identity.Picture,
			Role:     domain.RoleUser,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		log.Printf("google_signup user_id=%d", user.ID)
	case err != nil:
		return nil, err
	case user.GoogleID == "":
		user.GoogleID = identity.Subject
		if user.Image == "" {
			user.Image = identity.Picture
		}
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	if user.IsBlocked {
		return nil, ErrAccountBlocked
	}
	return s.issue(user)
}

// ForgotPassword stores a hashed one-hour reset token and mails the raw one.
// Unknown emails succeed silently so the endpoint cannot be used to probe accounts.
// The raw token is returned only when exposeResetToken is set.
func (s *Service) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	raw, hash, err := generateResetToken()
	if err != nil {
		return "", err
	}
	expires := s.now().Add(s.resetTTL)
	user.PasswordResetToken = hash
	user.PasswordResetExpires = &expires
	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}

	msg := mailer.Message{
		To:      []string{user.Email},
		Subject: "Password reset",
		Body: fmt.Sprintf("Use this token to reset your password: %s\n\nIt expires in %s. If you did not ask for a reset, ignore this email.",
			raw, s.resetTTL),
	}
	if s.mailer == nil {
		log.Printf("password_reset_mail_skipped user_id=%d reason=mailer_not_configured", user.ID)
	} else if err := s.mailer.Send(ctx, msg); err != nil {
		log.Printf("password_reset_mail_failed user_id=%d err=%v", user.ID, err)
	}

	if s.exposeResetToken {
		return raw, nil
	}
	return "", nil
}

func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*AuthResult, error) {
	if err := checkPasswordStrength(req.Password); err != nil {
		return nil, err
	}

	user, err := s.users.GetByResetToken(ctx, hashToken(req.Token), s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidResetToken
		}
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.issue(user)
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) issue(user *domain.User) (*AuthResult, error) {
	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// checkPasswordStrength requires at least 8 characters with a letter and a digit.
func checkPasswordStrength(password string) error {
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if len(password) < 8 || !hasLetter || !hasDigit {
		return fmt.Errorf("%w: password must be at least 8 characters long and include at least one letter and one number", ErrValidation)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func generateResetToken() (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	return raw, hashToken(raw), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

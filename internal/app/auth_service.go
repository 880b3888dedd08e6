package app

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tripplanner/internal/model"
	"tripplanner/internal/pkg/jwtutil"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidEmail      = errors.New("email is not a valid address")
	ErrWeakPassword      = errors.New("password does not meet the minimum length")
	ErrEmailExists       = errors.New("user with this email already exists")
	ErrInvalidCredential = errors.New("invalid credentials")
)

// UserStore is the credential store consulted by AuthService.
type UserStore interface {
	Create(user *model.User) error
	GetByEmail(email string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
}

type AuthService struct {
	users             UserStore
	jwtSecret         string
	jwtExpiration     time.Duration
	passwordMinLength int
}

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	Token string
	User  *model.User
}

func NewAuthService(users UserStore, jwtSecret string, jwtExpiration time.Duration, passwordMinLength int) *AuthService {
	if passwordMinLength <= 0 {
		passwordMinLength = 8
	}
	return &AuthService{
		users:             users,
		jwtSecret:         jwtSecret,
		jwtExpiration:     jwtExpiration,
		passwordMinLength: passwordMinLength,
	}
}

// Register creates a user with the default role set and issues a token bound
// to the new id. The email is kept exactly as supplied (case-sensitive key).
// The exists-then-insert sequence is not atomic across requests; the store's
// unique index is the final arbiter for concurrent registrations.
func (s *AuthService) Register(input RegisterInput) (*AuthResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, ErrInvalidEmail
	}
	if len(input.Password) < s.passwordMinLength {
		return nil, ErrWeakPassword
	}

	existing, err := s.users.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Roles:        []string{model.RoleUser},
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Login returns the same error for an unknown email and a wrong password so
// the response does not reveal which addresses are registered.
func (s *AuthService) Login(input LoginInput) (*AuthResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredential
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) GetUserByID(id uint) (*model.User, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	return s.users.GetByID(id)
}

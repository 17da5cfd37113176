package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hutecki/bankiety-api/internal/application/dto"
	"github.com/hutecki/bankiety-api/internal/domain"
	"github.com/hutecki/bankiety-api/internal/domain/entity"
	"github.com/hutecki/bankiety-api/internal/domain/repository"
	"github.com/hutecki/bankiety-api/pkg/jwt"
)

// JWTConfig token issuing settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registration and login. Passwords are bcrypt-hashed; tokens
// carry the role claim so the HTTP layer can authorize without a DB lookup.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Register creates an account. Role defaults to "user"; creating admins is
// restricted at the HTTP layer.
func (uc *AuthUseCase) Register(in dto.AuthRequest) (*dto.AuthResponse, error) {
	if len(in.Username) < 3 {
		return nil, fmt.Errorf("%w: username must have at least 3 characters", domain.ErrValidation)
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("%w: password must have at least 6 characters", domain.ErrValidation)
	}
	role := in.Role
	switch role {
	case "":
		role = entity.RoleUser
	case entity.RoleAdmin, entity.RoleUser:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, in.Role)
	}

	existing, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateName, in.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return uc.issue(user)
}

// Login verifies credentials and issues a token.
func (uc *AuthUseCase) Login(in dto.AuthRequest) (*dto.AuthResponse, error) {
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(user)
}

func (uc *AuthUseCase) issue(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, Username: user.Username, Role: user.Role}, nil
}

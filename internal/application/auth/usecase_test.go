package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hutecki/bankiety-api/internal/application/auth"
	"github.com/hutecki/bankiety-api/internal/application/dto"
	"github.com/hutecki/bankiety-api/internal/domain"
	"github.com/hutecki/bankiety-api/internal/domain/entity"
	pkgjwt "github.com/hutecki/bankiety-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.Username] = &cp
	return nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "bankiety-test"}

func TestRegister_IssuesTokenWithRole(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	out, err := uc.Register(dto.AuthRequest{Username: "anna", Password: "sekret1", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "anna", out.Username)
	assert.Equal(t, "admin", out.Role)

	_, username, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "anna", username)
	assert.Equal(t, "admin", role)
}

func TestRegister_DefaultsToUserRole(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	out, err := uc.Register(dto.AuthRequest{Username: "marek", Password: "sekret1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Role)
}

func TestRegister_Validation(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Register(dto.AuthRequest{Username: "ab", Password: "sekret1"})
	require.ErrorIs(t, err, domain.ErrValidation, "short username")

	_, err = uc.Register(dto.AuthRequest{Username: "anna", Password: "abc"})
	require.ErrorIs(t, err, domain.ErrValidation, "short password")

	_, err = uc.Register(dto.AuthRequest{Username: "anna", Password: "sekret1", Role: "root"})
	require.ErrorIs(t, err, domain.ErrValidation, "unknown role")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Register(dto.AuthRequest{Username: "anna", Password: "sekret1"})
	require.NoError(t, err)

	_, err = uc.Register(dto.AuthRequest{Username: "anna", Password: "inne-haslo"})
	require.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestLogin_GoodAndBadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(dto.AuthRequest{Username: "anna", Password: "sekret1"})
	require.NoError(t, err)

	out, err := uc.Login(dto.AuthRequest{Username: "anna", Password: "sekret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	_, err = uc.Login(dto.AuthRequest{Username: "anna", Password: "zle-haslo"})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.AuthRequest{Username: "nikt", Password: "sekret1"})
	require.ErrorIs(t, err, domain.ErrUnauthorized, "unknown user looks identical to a bad password")
}

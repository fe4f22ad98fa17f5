package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, login, passwordHash string) (int, error) {
	args := m.Called(ctx, login, passwordHash)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) FindByLogin(ctx context.Context, login string) (User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, NewPasswordValidator(), slog.Default())

	repo.On("Create", mock.Anything, "alice", mock.MatchedBy(func(hash string) bool {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte("Str0ng!pass")) == nil
	})).Return(42, nil)

	userID, err := service.Register(context.Background(), "alice", "Str0ng!pass")
	assert.NoError(t, err)
	assert.Equal(t, 42, userID)
	repo.AssertExpectations(t)
}

func TestService_Register_InvalidInput(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, NewPasswordValidator(), slog.Default())

	_, err := service.Register(context.Background(), "alice", "weak")
	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Authenticate(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, NewPasswordValidator(), slog.Default())

	hash, err := bcrypt.GenerateFromPassword([]byte("Str0ng!pass"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	repo.On("FindByLogin", mock.Anything, "alice").Return(User{ID: 42, Login: "alice", Password: string(hash)}, nil)

	u, err := service.Authenticate(context.Background(), "alice", "Str0ng!pass")
	assert.NoError(t, err)
	assert.Equal(t, 42, u.ID)
}

func TestService_Authenticate_WrongPassword(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, NewPasswordValidator(), slog.Default())

	hash, _ := bcrypt.GenerateFromPassword([]byte("Str0ng!pass"), bcrypt.DefaultCost)
	repo.On("FindByLogin", mock.Anything, "alice").Return(User{ID: 42, Password: string(hash)}, nil)

	_, err := service.Authenticate(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestService_Authenticate_UnknownUser(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, NewPasswordValidator(), slog.Default())

	repo.On("FindByLogin", mock.Anything, "nobody").Return(User{}, errors.New("user not found"))

	_, err := service.Authenticate(context.Background(), "nobody", "Str0ng!pass")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

package session

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Validate(ctx context.Context, tokenHash string) (int, error) {
	args := m.Called(ctx, tokenHash)
	return args.Int(0), args.Error(1)
}

func TestService_Create(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	var storedHash string
	repo.On("Create", mock.Anything, 42, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).
		Return(nil)

	token, err := service.Create(context.Background(), 42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// The raw token never reaches the repository, only its hash does.
	raw, err := base64.URLEncoding.DecodeString(token)
	assert.NoError(t, err)
	assert.Len(t, raw, 32)

	wantHash := sha256.Sum256([]byte(token))
	assert.Equal(t, hex.EncodeToString(wantHash[:]), storedHash)
}

func TestService_Validate(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	token := "some-bearer-token"
	hash := sha256.Sum256([]byte(token))
	repo.On("Validate", mock.Anything, hex.EncodeToString(hash[:])).Return(42, nil)

	userID, err := service.Validate(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, 42, userID)
	repo.AssertExpectations(t)
}

func TestService_Validate_Invalid(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	repo.On("Validate", mock.Anything, mock.AnythingOfType("string")).Return(0, errors.New("invalid session"))

	_, err := service.Validate(context.Background(), "expired-token")
	assert.Error(t, err)
}

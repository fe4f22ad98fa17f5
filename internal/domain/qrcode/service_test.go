package qrcode

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, code *QRCode) error {
	args := m.Called(ctx, code)
	if args.Error(0) == nil {
		code.ID = "generated-id"
		code.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *MockRepository) ListByOwner(ctx context.Context, ownerID int, f Filter) ([]QRCode, int, error) {
	args := m.Called(ctx, ownerID, f)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]QRCode), args.Int(1), args.Error(2)
}

func (m *MockRepository) GetOwned(ctx context.Context, ownerID int, id string) (*QRCode, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*QRCode), args.Error(1)
}

func (m *MockRepository) DeleteOwned(ctx context.Context, ownerID int, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

type MockEncoder struct {
	mock.Mock
}

func (m *MockEncoder) Encode(text string) (string, error) {
	args := m.Called(text)
	return args.String(0), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, recipient string, code QRCode) error {
	args := m.Called(ctx, recipient, code)
	return args.Error(0)
}

func newTestService(repo *MockRepository, enc *MockEncoder, not *MockNotifier) Servicer {
	return NewService(repo, enc, not, slog.Default())
}

func TestService_Generate(t *testing.T) {
	repo := new(MockRepository)
	enc := new(MockEncoder)
	not := new(MockNotifier)
	service := newTestService(repo, enc, not)

	enc.On("Encode", "https://example.com").Return("data:image/png;base64,AAAA", nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *QRCode) bool {
		return c.OwnerID == 1 &&
			c.SourceText == "https://example.com" &&
			c.ImageDataURL == "data:image/png;base64,AAAA" &&
			c.IsActive &&
			c.ScanCount == 0
	})).Return(nil)

	code, err := service.Generate(context.Background(), 1, "  https://example.com  ")
	assert.NoError(t, err)
	assert.Equal(t, "generated-id", code.ID)
	assert.Equal(t, "https://example.com", code.SourceText)
	assert.Equal(t, 1, code.OwnerID)

	repo.AssertExpectations(t)
	enc.AssertExpectations(t)
}

func TestService_Generate_EmptyText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "whitespace only", text: "   \t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			enc := new(MockEncoder)
			service := newTestService(repo, enc, new(MockNotifier))

			_, err := service.Generate(context.Background(), 1, tt.text)
			assert.ErrorIs(t, err, ErrInvalidInput)

			// Rejected before any side effect.
			enc.AssertNotCalled(t, "Encode", mock.Anything)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Generate_EncoderError(t *testing.T) {
	repo := new(MockRepository)
	enc := new(MockEncoder)
	service := newTestService(repo, enc, new(MockNotifier))

	enc.On("Encode", "bad").Return("", errors.New("content too long"))

	_, err := service.Generate(context.Background(), 1, "bad")
	assert.ErrorIs(t, err, ErrEncoding)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_List_Pagination(t *testing.T) {
	repo := new(MockRepository)
	service := newTestService(repo, new(MockEncoder), new(MockNotifier))

	page1 := []QRCode{
		{ID: "c", SourceText: "https://c.com"},
		{ID: "b", SourceText: "https://b.com"},
	}
	page2 := []QRCode{
		{ID: "a", SourceText: "https://a.com"},
	}

	repo.On("ListByOwner", mock.Anything, 1, Filter{Offset: 0, Limit: 2}).Return(page1, 3, nil)
	repo.On("ListByOwner", mock.Anything, 1, Filter{Offset: 2, Limit: 2}).Return(page2, 3, nil)

	res, err := service.List(context.Background(), 1, ListQuery{Page: 1, Limit: 2})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Equal(t, []string{"https://c.com", "https://b.com"}, sourceTexts(res.QRCodes))

	res, err = service.List(context.Background(), 1, ListQuery{Page: 2, Limit: 2})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, []string{"https://a.com"}, sourceTexts(res.QRCodes))

	repo.AssertExpectations(t)
}

func TestService_List_PageBeyondEnd(t *testing.T) {
	repo := new(MockRepository)
	service := newTestService(repo, new(MockEncoder), new(MockNotifier))

	repo.On("ListByOwner", mock.Anything, 1, Filter{Offset: 40, Limit: 10}).Return(nil, 3, nil)

	res, err := service.List(context.Background(), 1, ListQuery{Page: 5, Limit: 10})
	assert.NoError(t, err)
	assert.Empty(t, res.QRCodes)
	assert.NotNil(t, res.QRCodes)
	assert.Equal(t, 1, res.TotalPages)
}

func TestService_List_InvalidQuery(t *testing.T) {
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		query ListQuery
	}{
		{name: "zero page", query: ListQuery{Page: 0, Limit: 10}},
		{name: "negative page", query: ListQuery{Page: -1, Limit: 10}},
		{name: "zero limit", query: ListQuery{Page: 1, Limit: 0}},
		{name: "limit over max", query: ListQuery{Page: 1, Limit: MaxLimit + 1}},
		{name: "inverted date range", query: ListQuery{Page: 1, Limit: 10, From: &from, To: &to}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			service := newTestService(repo, new(MockEncoder), new(MockNotifier))

			_, err := service.List(context.Background(), 1, tt.query)
			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_List_DateRange(t *testing.T) {
	repo := new(MockRepository)
	service := newTestService(repo, new(MockEncoder), new(MockNotifier))

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	repo.On("ListByOwner", mock.Anything, 7, Filter{Offset: 0, Limit: 10, From: &from, To: &to}).
		Return([]QRCode{{ID: "x"}}, 1, nil)

	res, err := service.List(context.Background(), 7, ListQuery{Page: 1, Limit: 10, From: &from, To: &to})
	assert.NoError(t, err)
	assert.Len(t, res.QRCodes, 1)
	repo.AssertExpectations(t)
}

func TestService_Delete(t *testing.T) {
	repo := new(MockRepository)
	service := newTestService(repo, new(MockEncoder), new(MockNotifier))

	repo.On("DeleteOwned", mock.Anything, 1, "abc").Return(nil)

	err := service.Delete(context.Background(), 1, "abc")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_Delete_ForeignRecord(t *testing.T) {
	repo := new(MockRepository)
	service := newTestService(repo, new(MockEncoder), new(MockNotifier))

	// A record owned by user 2 looks exactly like a missing record to user 1.
	repo.On("DeleteOwned", mock.Anything, 1, "owned-by-2").Return(ErrNotFound)

	err := service.Delete(context.Background(), 1, "owned-by-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Share(t *testing.T) {
	repo := new(MockRepository)
	not := new(MockNotifier)
	service := newTestService(repo, new(MockEncoder), not)

	code := &QRCode{
		ID:           "abc",
		OwnerID:      1,
		SourceText:   "https://example.com",
		ImageDataURL: "data:image/png;base64,AAAA",
	}

	repo.On("GetOwned", mock.Anything, 1, "abc").Return(code, nil)
	not.On("Notify", mock.Anything, "friend@example.com", *code).Return(nil).Once()

	err := service.Share(context.Background(), 1, "abc", "friend@example.com")
	assert.NoError(t, err)

	repo.AssertExpectations(t)
	not.AssertExpectations(t)
	not.AssertNumberOfCalls(t, "Notify", 1)
}

func TestService_Share_Validation(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		recipient string
	}{
		{name: "missing id", id: "", recipient: "friend@example.com"},
		{name: "missing email", id: "abc", recipient: ""},
		{name: "malformed email", id: "abc", recipient: "not-an-email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			not := new(MockNotifier)
			service := newTestService(repo, new(MockEncoder), not)

			err := service.Share(context.Background(), 1, tt.id, tt.recipient)
			assert.ErrorIs(t, err, ErrInvalidInput)

			repo.AssertNotCalled(t, "GetOwned", mock.Anything, mock.Anything, mock.Anything)
			not.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_Share_NotOwned(t *testing.T) {
	repo := new(MockRepository)
	not := new(MockNotifier)
	service := newTestService(repo, new(MockEncoder), not)

	repo.On("GetOwned", mock.Anything, 1, "foreign").Return(nil, ErrNotFound)

	err := service.Share(context.Background(), 1, "foreign", "friend@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	not.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Share_DispatchFailure(t *testing.T) {
	repo := new(MockRepository)
	not := new(MockNotifier)
	service := newTestService(repo, new(MockEncoder), not)

	code := &QRCode{ID: "abc", OwnerID: 1, SourceText: "https://example.com"}
	repo.On("GetOwned", mock.Anything, 1, "abc").Return(code, nil)
	not.On("Notify", mock.Anything, "friend@example.com", *code).
		Return(errors.New("smtp: 535 authentication failed"))

	err := service.Share(context.Background(), 1, "abc", "friend@example.com")
	// The caller sees a generic failure, never the transport cause.
	assert.ErrorIs(t, err, ErrShareFailed)
	assert.NotContains(t, err.Error(), "smtp")
}

func sourceTexts(codes []QRCode) []string {
	out := make([]string, len(codes))
	for i, c := range codes {
		out[i] = c.SourceText
	}
	return out
}

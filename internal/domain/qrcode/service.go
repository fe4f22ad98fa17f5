package qrcode

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/exp/slog"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Servicer is the QR code lifecycle: generate, list, delete, share. Every
// operation acts on behalf of an already-resolved caller identity.
type Servicer interface {
	Generate(ctx context.Context, ownerID int, text string) (*QRCode, error)
	List(ctx context.Context, ownerID int, q ListQuery) (ListResult, error)
	Delete(ctx context.Context, ownerID int, id string) error
	Share(ctx context.Context, ownerID int, id, recipient string) error
}

type Service struct {
	repo     Repository
	encoder  Encoder
	notifier Notifier
	log      *slog.Logger
}

func NewService(repo Repository, encoder Encoder, notifier Notifier, log *slog.Logger) Servicer {
	return &Service{
		repo:     repo,
		encoder:  encoder,
		notifier: notifier,
		log:      log.With("component", "qrcode_service"),
	}
}

// Generate encodes text into an image and persists the record. Validation
// happens before encoding, so a rejected request has no side effects.
func (s *Service) Generate(ctx context.Context, ownerID int, text string) (*QRCode, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	image, err := s.encoder.Encode(text)
	if err != nil {
		s.log.Error("failed to encode qr code", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	code := &QRCode{
		OwnerID:      ownerID,
		SourceText:   text,
		ImageDataURL: image,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, code); err != nil {
		s.log.Error("failed to create qr code", "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("create qr code: %w", err)
	}

	s.log.Info("qr code created", "qr_code_id", code.ID, "user_id", ownerID)

	return code, nil
}

// List returns one page of the owner's history, newest first. A page past
// the end is an empty page, not an error.
func (s *Service) List(ctx context.Context, ownerID int, q ListQuery) (ListResult, error) {
	if q.Page < 1 {
		return ListResult{}, fmt.Errorf("%w: page must be at least 1", ErrInvalidInput)
	}
	if q.Limit < 1 || q.Limit > MaxLimit {
		return ListResult{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxLimit)
	}
	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		return ListResult{}, fmt.Errorf("%w: startDate is after endDate", ErrInvalidInput)
	}

	codes, total, err := s.repo.ListByOwner(ctx, ownerID, Filter{
		Offset: (q.Page - 1) * q.Limit,
		Limit:  q.Limit,
		From:   q.From,
		To:     q.To,
	})
	if err != nil {
		s.log.Error("failed to list qr codes", "user_id", ownerID, "error", err)
		return ListResult{}, fmt.Errorf("list qr codes: %w", err)
	}

	if codes == nil {
		codes = []QRCode{}
	}

	return ListResult{
		QRCodes:     codes,
		Total:       total,
		TotalPages:  (total + q.Limit - 1) / q.Limit,
		CurrentPage: q.Page,
	}, nil
}

// Delete removes an owned record. ErrNotFound is surfaced verbatim whether
// the record is absent or owned by someone else.
func (s *Service) Delete(ctx context.Context, ownerID int, id string) error {
	err := s.repo.DeleteOwned(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete qr code", "qr_code_id", id, "user_id", ownerID, "error", err)
		return fmt.Errorf("delete qr code: %w", err)
	}

	s.log.Info("qr code deleted", "qr_code_id", id, "user_id", ownerID)
	return nil
}

// Share mails an owned record to the recipient. Repeated calls send
// repeated mails; the operation is deliberately not idempotent.
func (s *Service) Share(ctx context.Context, ownerID int, id, recipient string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: qr code id is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(recipient); err != nil {
		return fmt.Errorf("%w: invalid recipient email", ErrInvalidInput)
	}

	code, err := s.repo.GetOwned(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to fetch qr code for sharing", "qr_code_id", id, "user_id", ownerID, "error", err)
		return fmt.Errorf("fetch qr code: %w", err)
	}

	if err := s.notifier.Notify(ctx, recipient, *code); err != nil {
		// The transport cause stays here; the caller gets a generic failure.
		s.log.Error("failed to dispatch share mail", "qr_code_id", id, "user_id", ownerID, "error", err)
		return ErrShareFailed
	}

	s.log.Info("qr code shared", "qr_code_id", id, "user_id", ownerID)
	return nil
}

package qrcode

import "context"

// Repository persists QR codes. Every query is pre-filtered by owner id;
// a record that exists under another owner is indistinguishable from a
// record that does not exist.
type Repository interface {
	// Create assigns the record's id and creation timestamp.
	Create(ctx context.Context, code *QRCode) error
	// ListByOwner returns one window of the owner's records ordered by
	// created_at descending (id as tie-break) plus the total match count.
	ListByOwner(ctx context.Context, ownerID int, f Filter) ([]QRCode, int, error)
	// GetOwned returns ErrNotFound for absent or foreign records.
	GetOwned(ctx context.Context, ownerID int, id string) (*QRCode, error)
	// DeleteOwned returns ErrNotFound for absent or foreign records.
	DeleteOwned(ctx context.Context, ownerID int, id string) error
}

// Encoder renders text as a self-contained image data URL. Pure: the same
// text always yields the same image.
type Encoder interface {
	Encode(text string) (string, error)
}

// Notifier dispatches exactly one outbound message carrying the record's
// source text and image. Success means the transport accepted the message,
// not that it was delivered. No internal retry.
type Notifier interface {
	Notify(ctx context.Context, recipient string, code QRCode) error
}

package qrcode

import "time"

// QRCode is a persisted QR code. Every record belongs to exactly one owner;
// SourceText and ImageDataURL are write-once. ScanCount and IsActive are
// reserved for future use and mutated by no operation.
type QRCode struct {
	ID           string    `json:"id"`
	OwnerID      int       `json:"ownerId"`
	SourceText   string    `json:"sourceText"`
	ImageDataURL string    `json:"imageRepresentation"`
	ScanCount    int       `json:"scanCount"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListQuery is a 1-indexed page request with an optional creation-time range.
type ListQuery struct {
	Page  int
	Limit int
	From  *time.Time
	To    *time.Time
}

// Filter is the owner-scoped window a repository applies to a listing.
type Filter struct {
	Offset int
	Limit  int
	From   *time.Time
	To     *time.Time
}

// ListResult is one page of an owner's history, newest first.
type ListResult struct {
	QRCodes     []QRCode
	Total       int
	TotalPages  int
	CurrentPage int
}

package qrcode

import (
	"time"

	"qrvault/internal/domain/qrcode"
)

// Item is the client representation of a record. OwnerID always equals the
// caller's own id: foreign records are unreachable by construction.
type Item struct {
	ID                  string    `json:"id"`
	SourceText          string    `json:"sourceText"`
	ImageRepresentation string    `json:"imageRepresentation"`
	ScanCount           int       `json:"scanCount"`
	IsActive            bool      `json:"isActive"`
	CreatedAt           time.Time `json:"createdAt"`
	OwnerID             int       `json:"ownerId"`
}

func toItem(code qrcode.QRCode) Item {
	return Item{
		ID:                  code.ID,
		SourceText:          code.SourceText,
		ImageRepresentation: code.ImageDataURL,
		ScanCount:           code.ScanCount,
		IsActive:            code.IsActive,
		CreatedAt:           code.CreatedAt,
		OwnerID:             code.OwnerID,
	}
}

type generateInput struct {
	Body generateRequest
}

type generateRequest struct {
	Text string `json:"text" doc:"Text or URL to encode" example:"https://example.com"`
}

type generateOutput struct {
	Body Item
}

type listInput struct {
	Page      int       `query:"page" default:"1" doc:"1-indexed page number"`
	Limit     int       `query:"limit" default:"10" doc:"Page size"`
	StartDate time.Time `query:"startDate" doc:"Lower creation-time bound (RFC3339)"`
	EndDate   time.Time `query:"endDate" doc:"Upper creation-time bound (RFC3339)"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	QRCodes     []Item `json:"qrCodes"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
}

type deleteInput struct {
	ID string `path:"id" doc:"QR code id"`
}

type shareInput struct {
	Body shareRequest
}

type shareRequest struct {
	Email    string `json:"email" doc:"Recipient email address"`
	QRCodeID string `json:"qrCodeId" doc:"Id of the QR code to share"`
}

type messageOutput struct {
	Body messageResponse
}

type messageResponse struct {
	Message string `json:"message"`
}

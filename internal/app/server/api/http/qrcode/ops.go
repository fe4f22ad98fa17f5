package qrcode

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) generateOp() huma.Operation {
	return huma.Operation{
		OperationID:   "qrcodes-generate",
		Method:        http.MethodPost,
		Path:          "/api/qrcodes",
		Summary:       "Generate a QR code",
		Description:   "Encodes the given text as a QR code image and persists it for the caller.",
		Tags:          []string{"qrcodes"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "qrcodes-list",
		Method:      http.MethodGet,
		Path:        "/api/qrcodes",
		Summary:     "List the caller's QR codes",
		Description: "Returns one page of the caller's history, newest first, optionally bounded by creation date.",
		Tags:        []string{"qrcodes"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "qrcodes-delete",
		Method:      http.MethodDelete,
		Path:        "/api/qrcodes/{id}",
		Summary:     "Delete a QR code",
		Tags:        []string{"qrcodes"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) shareOp() huma.Operation {
	return huma.Operation{
		OperationID: "qrcodes-share",
		Method:      http.MethodPost,
		Path:        "/api/qrcodes/share",
		Summary:     "Share a QR code by email",
		Description: "Mails the rendered image and source text of an owned QR code to the recipient.",
		Tags:        []string{"qrcodes"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

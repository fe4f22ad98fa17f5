package qrcode

import (
	"context"
	"errors"

	"qrvault/internal/app/server/api/http/middleware/auth"
	"qrvault/internal/domain/qrcode"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    qrcode.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service qrcode.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.generateOp(), h.generate)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.shareOp(), h.share)
}

func (h *Handler) generate(ctx context.Context, input *generateInput) (*generateOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	code, err := h.service.Generate(ctx, userID, input.Body.Text)
	if err != nil {
		return nil, mapError(err)
	}

	return &generateOutput{Body: toItem(*code)}, nil
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	query := qrcode.ListQuery{
		Page:  input.Page,
		Limit: input.Limit,
	}
	if !input.StartDate.IsZero() {
		from := input.StartDate
		query.From = &from
	}
	if !input.EndDate.IsZero() {
		to := input.EndDate
		query.To = &to
	}

	result, err := h.service.List(ctx, userID, query)
	if err != nil {
		return nil, mapError(err)
	}

	items := make([]Item, len(result.QRCodes))
	for i, code := range result.QRCodes {
		items[i] = toItem(code)
	}

	return &listOutput{
		Body: listResponse{
			QRCodes:     items,
			TotalPages:  result.TotalPages,
			CurrentPage: result.CurrentPage,
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*messageOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		return nil, mapError(err)
	}

	return &messageOutput{
		Body: messageResponse{Message: "QR code deleted successfully"},
	}, nil
}

func (h *Handler) share(ctx context.Context, input *shareInput) (*messageOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Share(ctx, userID, input.Body.QRCodeID, input.Body.Email); err != nil {
		return nil, mapError(err)
	}

	return &messageOutput{
		Body: messageResponse{Message: "QR code shared successfully"},
	}, nil
}

// mapError translates domain errors into HTTP responses. Not-found is
// reported identically for absent and foreign records, and share failures
// never expose the transport cause.
func mapError(err error) error {
	switch {
	case errors.Is(err, qrcode.ErrNotFound):
		return huma.Error404NotFound("QR code not found")
	case errors.Is(err, qrcode.ErrInvalidInput), errors.Is(err, qrcode.ErrEncoding):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, qrcode.ErrShareFailed):
		return huma.Error500InternalServerError("Failed to share QR code")
	default:
		return huma.Error500InternalServerError("Something went wrong")
	}
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"qrvault/internal/domain/qrcode"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"
)

// QRCodeRepository persists QR codes. Ownership is enforced here: every
// query carries the owner id in its WHERE clause, so foreign records are
// never observable, not even as a distinct error.
type QRCodeRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewQRCodeRepository(db *Storage, log *slog.Logger) *QRCodeRepository {
	return &QRCodeRepository{
		db:  db,
		log: log.With("component", "qrcode_repository"),
	}
}

func (r *QRCodeRepository) Create(ctx context.Context, code *qrcode.QRCode) error {
	const query = `
		INSERT INTO qr_codes (id, user_id, source_text, image_data_url)
		VALUES ($1, $2, $3, $4)
		RETURNING scan_count, is_active, created_at`

	code.ID = uuid.NewString()

	err := r.db.Pool().QueryRow(ctx, query,
		code.ID, code.OwnerID, code.SourceText, code.ImageDataURL,
	).Scan(&code.ScanCount, &code.IsActive, &code.CreatedAt)

	if err != nil {
		r.log.Error("failed to create qr code", "user_id", code.OwnerID, "error", err)
		return fmt.Errorf("create qr code: %w", err)
	}

	return nil
}

func (r *QRCodeRepository) ListByOwner(ctx context.Context, ownerID int, f qrcode.Filter) ([]qrcode.QRCode, int, error) {
	where := `WHERE user_id = $1`
	args := []interface{}{ownerID}

	if f.From != nil {
		args = append(args, *f.From)
		where += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}

	var total int
	if err := r.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM qr_codes `+where, args...).Scan(&total); err != nil {
		r.log.Error("failed to count qr codes", "user_id", ownerID, "error", err)
		return nil, 0, fmt.Errorf("count qr codes: %w", err)
	}

	// Tie-break on id keeps pagination stable for identical timestamps.
	query := `
		SELECT id, user_id, source_text, image_data_url, scan_count, is_active, created_at
		FROM qr_codes ` + where + `
		ORDER BY created_at DESC, id`

	args = append(args, f.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list qr codes", "user_id", ownerID, "error", err)
		return nil, 0, fmt.Errorf("list qr codes: %w", err)
	}
	defer rows.Close()

	codes, err := r.scanCodes(rows)
	if err != nil {
		return nil, 0, err
	}

	return codes, total, nil
}

func (r *QRCodeRepository) GetOwned(ctx context.Context, ownerID int, id string) (*qrcode.QRCode, error) {
	const query = `
		SELECT id, user_id, source_text, image_data_url, scan_count, is_active, created_at
		FROM qr_codes
		WHERE id = $1 AND user_id = $2`

	row := r.db.Pool().QueryRow(ctx, query, id, ownerID)

	code, err := r.scanCode(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, qrcode.ErrNotFound
		}
		r.log.Error("failed to get qr code", "qr_code_id", id, "user_id", ownerID, "error", err)
		return nil, fmt.Errorf("get qr code: %w", err)
	}

	return code, nil
}

func (r *QRCodeRepository) DeleteOwned(ctx context.Context, ownerID int, id string) error {
	const query = `DELETE FROM qr_codes WHERE id = $1 AND user_id = $2`

	result, err := r.db.Pool().Exec(ctx, query, id, ownerID)
	if err != nil {
		r.log.Error("failed to delete qr code", "qr_code_id", id, "user_id", ownerID, "error", err)
		return fmt.Errorf("delete qr code: %w", err)
	}

	if result.RowsAffected() == 0 {
		return qrcode.ErrNotFound
	}

	return nil
}

func (r *QRCodeRepository) scanCodes(rows pgx.Rows) ([]qrcode.QRCode, error) {
	var codes []qrcode.QRCode

	for rows.Next() {
		code, err := r.scanCode(rows)
		if err != nil {
			return nil, err
		}
		codes = append(codes, *code)
	}

	return codes, rows.Err()
}

func (r *QRCodeRepository) scanCode(row pgx.Row) (*qrcode.QRCode, error) {
	var code qrcode.QRCode

	err := row.Scan(
		&code.ID, &code.OwnerID, &code.SourceText, &code.ImageDataURL,
		&code.ScanCount, &code.IsActive, &code.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &code, nil
}

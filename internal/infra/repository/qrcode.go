package repository

import (
	"context"
	"errors"

	"qrlink/internal/domain/qrcode"
	"qrlink/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QRCodeRepository is the durable code record store. Queries are hand-written
// SQL over pgx; the scan counter is only ever advanced through the atomic
// add-in-place in IncrementScans.
type QRCodeRepository struct {
	pool *pgxpool.Pool
}

func NewQRCodeRepository(pool *pgxpool.Pool) *QRCodeRepository {
	return &QRCodeRepository{pool: pool}
}

const qrCodeColumns = `id, shop, title, product_id, product_handle, product_variant_id, destination, scans, created_at`

func (r *QRCodeRepository) Create(ctx context.Context, qr *qrcode.QRCode) (int64, error) {
	const q = `
		INSERT INTO qr_codes (shop, title, product_id, product_handle, product_variant_id, destination)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.pool.QueryRow(ctx, q,
		qr.Shop, qr.Title, qr.ProductID, qr.ProductHandle, nullIfEmpty(qr.ProductVariantID), string(qr.Destination),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create qr code", err)
	}
	return id, nil
}

func (r *QRCodeRepository) FindByID(ctx context.Context, id int64) (*qrcode.QRCode, error) {
	const q = `SELECT ` + qrCodeColumns + ` FROM qr_codes WHERE id = $1`

	qr, err := scanQRCode(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("qr code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find qr code by id", err)
	}
	return qr, nil
}

// FindByShop returns every code owned by shop, newest first.
func (r *QRCodeRepository) FindByShop(ctx context.Context, shop string) ([]*qrcode.QRCode, error) {
	const q = `SELECT ` + qrCodeColumns + ` FROM qr_codes WHERE shop = $1 ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, q, shop)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list qr codes by shop", err)
	}
	defer rows.Close()

	codes := make([]*qrcode.QRCode, 0)
	for rows.Next() {
		qr, scanErr := scanQRCode(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan qr code row", scanErr)
		}
		codes = append(codes, qr)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate qr code rows", err)
	}
	return codes, nil
}

func (r *QRCodeRepository) Update(ctx context.Context, qr *qrcode.QRCode) error {
	const q = `
		UPDATE qr_codes
		SET title = $1, product_id = $2, product_handle = $3, product_variant_id = $4, destination = $5
		WHERE id = $6 AND shop = $7`

	tag, err := r.pool.Exec(ctx, q,
		qr.Title, qr.ProductID, qr.ProductHandle, nullIfEmpty(qr.ProductVariantID), string(qr.Destination),
		qr.ID, qr.Shop,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update qr code", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("qr code not found", nil, infra.KindNotFound)
	}
	return nil
}

// IncrementScans advances the scan counter by exactly one. The add happens
// in-place on the database side, so N concurrent scans of the same id always
// advance the counter by N.
func (r *QRCodeRepository) IncrementScans(ctx context.Context, id int64) error {
	const q = `UPDATE qr_codes SET scans = scans + 1 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment scan count", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("qr code not found", nil, infra.KindNotFound)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanQRCode(row pgx.Row) (*qrcode.QRCode, error) {
	var (
		qr          qrcode.QRCode
		variantID   *string
		destination string
	)
	err := row.Scan(
		&qr.ID, &qr.Shop, &qr.Title, &qr.ProductID, &qr.ProductHandle,
		&variantID, &destination, &qr.Scans, &qr.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if variantID != nil {
		qr.ProductVariantID = *variantID
	}
	qr.Destination = qrcode.Destination(destination)
	return &qr, nil
}

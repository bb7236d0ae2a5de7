package commands

import (
	"context"
	"fmt"

	"qrlink/internal/domain/qrcode"
	"qrlink/internal/infra"
	"qrlink/internal/pkg/clock"
	"qrlink/internal/pkg/errs"
)

// ValidationError carries the per-field messages of a rejected candidate.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

type QRCodeRepository interface {
	Create(ctx context.Context, qr *qrcode.QRCode) (int64, error)
	FindByID(ctx context.Context, id int64) (*qrcode.QRCode, error)
	Update(ctx context.Context, qr *qrcode.QRCode) error
	IncrementScans(ctx context.Context, id int64) error
}

type CodeRequest struct {
	Title            string
	ProductID        string
	ProductHandle    string
	ProductVariantID string
	Destination      string
}

type CreateQRCodeResult struct {
	ID int64
}

type QRCodeCommands interface {
	Create(ctx context.Context, req CodeRequest, shop string) (*CreateQRCodeResult, error)
	Update(ctx context.Context, id int64, req CodeRequest, shop string) error
}

type qrCodeUseCaseImpl struct {
	repo  QRCodeRepository
	clock clock.Clock
}

func NewQRCodeCommands(repo QRCodeRepository, clk clock.Clock) QRCodeCommands {
	return &qrCodeUseCaseImpl{repo: repo, clock: clk}
}

func (uc *qrCodeUseCaseImpl) Create(ctx context.Context, req CodeRequest, shop string) (*CreateQRCodeResult, error) {
	qr, err := uc.toRecord(req, shop)
	if err != nil {
		return nil, err
	}
	qr.CreatedAt = uc.clock.Now()

	id, err := uc.repo.Create(ctx, qr)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &CreateQRCodeResult{ID: id}, nil
}

func (uc *qrCodeUseCaseImpl) Update(ctx context.Context, id int64, req CodeRequest, shop string) error {
	qr, err := uc.toRecord(req, shop)
	if err != nil {
		return err
	}
	qr.ID = id

	// Ownership is enforced by the store: updates match on id and shop, so a
	// foreign shop's id behaves exactly like a missing record.
	if err := uc.repo.Update(ctx, qr); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrQRCodeNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *qrCodeUseCaseImpl) toRecord(req CodeRequest, shop string) (*qrcode.QRCode, error) {
	fieldErrs := qrcode.Validate(qrcode.Candidate{
		Title:            req.Title,
		ProductID:        req.ProductID,
		ProductHandle:    req.ProductHandle,
		ProductVariantID: req.ProductVariantID,
		Destination:      req.Destination,
	})
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	return &qrcode.QRCode{
		Shop:             shop,
		Title:            req.Title,
		ProductID:        req.ProductID,
		ProductHandle:    req.ProductHandle,
		ProductVariantID: req.ProductVariantID,
		Destination:      qrcode.Destination(req.Destination),
	}, nil
}

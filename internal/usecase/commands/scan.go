package commands

import (
	"context"

	"qrlink/internal/domain/qrcode"
	"qrlink/internal/infra"
	"qrlink/internal/pkg/errs"
)

type ScanCommands interface {
	// RecordScan counts one scan against id and returns the redirect target.
	RecordScan(ctx context.Context, id int64) (string, error)
}

type scanUseCaseImpl struct {
	repo QRCodeRepository
}

func NewScanCommands(repo QRCodeRepository) ScanCommands {
	return &scanUseCaseImpl{repo: repo}
}

func (uc *scanUseCaseImpl) RecordScan(ctx context.Context, id int64) (string, error) {
	qr, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.ErrQRCodeNotFound
		}
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Count before resolving: every successful lookup is a scan, even when
	// the destination later fails to resolve.
	if err := uc.repo.IncrementScans(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", errs.ErrQRCodeNotFound
		}
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	url, err := qrcode.DestinationURL(qr)
	if err != nil {
		return "", err
	}
	return url, nil
}

//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"

	"qrlink/internal/domain/qrcode"
	"qrlink/internal/infra"
	"qrlink/internal/pkg/errs"
	"qrlink/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo mimics the store contract, including the atomicity of
// IncrementScans relative to concurrent callers.
type fakeRepo struct {
	mu     sync.Mutex
	nextID int64
	codes  map[int64]*qrcode.QRCode
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1, codes: make(map[int64]*qrcode.QRCode)}
}

func (f *fakeRepo) add(qr *qrcode.QRCode) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	cp := *qr
	cp.ID = id
	f.codes[id] = &cp
	return id
}

func (f *fakeRepo) Create(_ context.Context, qr *qrcode.QRCode) (int64, error) {
	return f.add(qr), nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*qrcode.QRCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	qr, ok := f.codes[id]
	if !ok {
		return nil, infra.WrapRepoErr("qr code not found", nil, infra.KindNotFound)
	}
	cp := *qr
	return &cp, nil
}

func (f *fakeRepo) Update(_ context.Context, qr *qrcode.QRCode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.codes[qr.ID]
	if !ok || existing.Shop != qr.Shop {
		return infra.WrapRepoErr("qr code not found", nil, infra.KindNotFound)
	}
	cp := *qr
	cp.Scans = existing.Scans
	cp.CreatedAt = existing.CreatedAt
	f.codes[qr.ID] = &cp
	return nil
}

func (f *fakeRepo) IncrementScans(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	qr, ok := f.codes[id]
	if !ok {
		return infra.WrapRepoErr("qr code not found", nil, infra.KindNotFound)
	}
	qr.Scans++
	return nil
}

func (f *fakeRepo) scans(id int64) int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.codes[id].Scans
}

func productCode(shop string) *qrcode.QRCode {
	return &qrcode.QRCode{
		Shop:          shop,
		Title:         "Spring promo",
		ProductID:     "gid://shopify/Product/99",
		ProductHandle: "spring-tee",
		Destination:   qrcode.DestinationProduct,
	}
}

func TestRecordScan(t *testing.T) {
	ctx := context.Background()

	t.Run("successful scan increments and redirects", func(t *testing.T) {
		repo := newFakeRepo()
		id := repo.add(productCode("test-shop.myshopify.com"))
		uc := commands.NewScanCommands(repo)

		url, err := uc.RecordScan(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "https://test-shop.myshopify.com/products/spring-tee", url)
		assert.Equal(t, int32(1), repo.scans(id))
	})

	t.Run("unknown id returns not found and moves no counters", func(t *testing.T) {
		repo := newFakeRepo()
		known := repo.add(productCode("test-shop.myshopify.com"))
		uc := commands.NewScanCommands(repo)

		_, err := uc.RecordScan(ctx, known+1)
		require.ErrorIs(t, err, errs.ErrQRCodeNotFound)
		assert.Equal(t, int32(0), repo.scans(known))
	})

	t.Run("malformed variant reference still counts the scan", func(t *testing.T) {
		repo := newFakeRepo()
		qr := productCode("test-shop.myshopify.com")
		qr.Destination = qrcode.DestinationVariant
		qr.ProductVariantID = "not-a-gid"
		id := repo.add(qr)
		uc := commands.NewScanCommands(repo)

		_, err := uc.RecordScan(ctx, id)
		require.ErrorIs(t, err, qrcode.ErrMalformedVariantRef)
		assert.Equal(t, int32(1), repo.scans(id), "lookup succeeded, so the scan counts")
	})

	t.Run("50 concurrent scans advance the counter by exactly 50", func(t *testing.T) {
		repo := newFakeRepo()
		id := repo.add(productCode("test-shop.myshopify.com"))
		uc := commands.NewScanCommands(repo)

		const n = 50
		var wg sync.WaitGroup
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				url, err := uc.RecordScan(ctx, id)
				assert.NoError(t, err)
				assert.NotEmpty(t, url)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(n), repo.scans(id))
	})
}

package queries

import (
	"context"
	"log/slog"
	"time"

	"qrlink/internal/domain/qrcode"
	"qrlink/internal/infra"
	"qrlink/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

type QRCodeView struct {
	ID               int64     `json:"id"`
	Shop             string    `json:"shop"`
	Title            string    `json:"title"`
	ProductID        string    `json:"product_id"`
	ProductHandle    string    `json:"product_handle"`
	ProductVariantID string    `json:"product_variant_id,omitempty"`
	Destination      string    `json:"destination"`
	Scans            int32     `json:"scans"`
	CreatedAt        time.Time `json:"created_at"`
}

// EnrichedQRCode joins a stored record with live catalog metadata, the
// resolved destination URL and a freshly generated image. Built per request,
// never persisted.
type EnrichedQRCode struct {
	QRCodeView
	DestinationURL string `json:"destination_url"`
	Image          string `json:"image"`
	ProductTitle   string `json:"product_title,omitempty"`
	ProductImage   string `json:"product_image,omitempty"`
	ProductAlt     string `json:"product_alt,omitempty"`
	ProductDeleted bool   `json:"product_deleted"`
}

type DetailView struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

type ProductSummary struct {
	Title    string
	ImageURL string
	ImageAlt string
}

// CatalogLookup fetches live product metadata. A nil summary with nil error
// means the product no longer exists in the catalog.
type CatalogLookup interface {
	Product(ctx context.Context, shop, productID string) (*ProductSummary, error)
}

type ImageProducer interface {
	DataURI(id int64) (string, error)
}

type QRCodeReadStore interface {
	FindByID(ctx context.Context, id int64) (*qrcode.QRCode, error)
	FindByShop(ctx context.Context, shop string) ([]*qrcode.QRCode, error)
}

type QRCodeQueries interface {
	// GetDetail backs the public detail endpoint: title plus image data URI.
	GetDetail(ctx context.Context, id int64) (*DetailView, error)
	// GetEnriched returns one enriched record, scoped to the owning shop.
	GetEnriched(ctx context.Context, id int64, shop string) (*EnrichedQRCode, error)
	// ListByShop returns every record of the shop, newest first, enriched.
	ListByShop(ctx context.Context, shop string) ([]*EnrichedQRCode, error)
}

type qrCodeQueriesImpl struct {
	store   QRCodeReadStore
	catalog CatalogLookup
	images  ImageProducer
}

func NewQRCodeQueries(store QRCodeReadStore, catalog CatalogLookup, images ImageProducer) QRCodeQueries {
	return &qrCodeQueriesImpl{store: store, catalog: catalog, images: images}
}

func (q *qrCodeQueriesImpl) GetDetail(ctx context.Context, id int64) (*DetailView, error) {
	qr, err := q.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	image, err := q.images.DataURI(qr.ID)
	if err != nil {
		return nil, err
	}
	return &DetailView{Title: qr.Title, Image: image}, nil
}

func (q *qrCodeQueriesImpl) GetEnriched(ctx context.Context, id int64, shop string) (*EnrichedQRCode, error) {
	qr, err := q.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if qr.Shop != shop {
		// Cross-shop access is indistinguishable from a missing record.
		return nil, errs.ErrQRCodeNotFound
	}
	return q.enrichOne(ctx, qr)
}

func (q *qrCodeQueriesImpl) ListByShop(ctx context.Context, shop string) ([]*EnrichedQRCode, error) {
	records, err := q.store.FindByShop(ctx, shop)
	if err != nil {
		return nil, err
	}

	// Records are enriched concurrently; the slice is indexed by input
	// position so completion order never reorders the response.
	enriched := make([]*EnrichedQRCode, len(records))
	g, gctx := errgroup.WithContext(ctx)
	for i, rec := range records {
		g.Go(func() error {
			e, enrichErr := q.enrichOne(gctx, rec)
			if enrichErr != nil {
				return enrichErr
			}
			enriched[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}

// enrichOne runs catalog lookup and image generation concurrently. Image
// failure is fatal; a missing or unreachable product is reported through
// ProductDeleted instead of failing the request.
func (q *qrCodeQueriesImpl) enrichOne(ctx context.Context, qr *qrcode.QRCode) (*EnrichedQRCode, error) {
	destinationURL, err := qrcode.DestinationURL(qr)
	if err != nil {
		return nil, err
	}

	enriched := &EnrichedQRCode{DestinationURL: destinationURL}
	if err := copier.Copy(&enriched.QRCodeView, qr); err != nil {
		return nil, errs.Wrap(err, "failed to build qr code view")
	}
	enriched.Destination = string(qr.Destination)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, lookupErr := q.catalog.Product(gctx, qr.Shop, qr.ProductID)
		if lookupErr != nil {
			// Minimal policy: an unreachable catalog collapses to the weaker
			// "product deleted" signal. Logged so operators can tell the two
			// apart without a response-shape change.
			slog.WarnContext(gctx, "catalog lookup failed, treating product as deleted",
				"qr_code_id", qr.ID, "product_id", qr.ProductID, "error", lookupErr)
			enriched.ProductDeleted = true
			return nil
		}
		if summary == nil {
			enriched.ProductDeleted = true
			return nil
		}
		enriched.ProductTitle = summary.Title
		enriched.ProductImage = summary.ImageURL
		enriched.ProductAlt = summary.ImageAlt
		return nil
	})
	g.Go(func() error {
		image, imgErr := q.images.DataURI(qr.ID)
		if imgErr != nil {
			return imgErr
		}
		enriched.Image = image
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return enriched, nil
}

func (q *qrCodeQueriesImpl) findByID(ctx context.Context, id int64) (*qrcode.QRCode, error) {
	qr, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrQRCodeNotFound
		}
		return nil, err
	}
	return qr, nil
}

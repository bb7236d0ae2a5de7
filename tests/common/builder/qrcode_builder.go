//go:build unit || e2e

package builder

import (
	"time"

	"qrlink/internal/domain/qrcode"
	reqdto "qrlink/internal/handler/dto/request"
	"qrlink/internal/usecase/queries"
)

type QRCodeBuilder struct {
	ID               int64
	Shop             string
	Title            string
	ProductID        string
	ProductHandle    string
	ProductVariantID string
	Destination      string
	Scans            int32
	CreatedAt        time.Time
}

func NewQRCodeBuilder() *QRCodeBuilder {
	return &QRCodeBuilder{
		ID:               1,
		Shop:             "test-shop.myshopify.com",
		Title:            "Spring Sale",
		ProductID:        "gid://shopify/Product/111",
		ProductHandle:    "spring-sale-tee",
		ProductVariantID: "gid://shopify/ProductVariant/222",
		Destination:      "product",
		Scans:            0,
		CreatedAt:        time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *QRCodeBuilder) With(mutate func(*QRCodeBuilder)) *QRCodeBuilder {
	mutate(b)
	return b
}

func (b *QRCodeBuilder) BuildDomain() *qrcode.QRCode {
	return &qrcode.QRCode{
		ID:               b.ID,
		Shop:             b.Shop,
		Title:            b.Title,
		ProductID:        b.ProductID,
		ProductHandle:    b.ProductHandle,
		ProductVariantID: b.ProductVariantID,
		Destination:      qrcode.Destination(b.Destination),
		Scans:            b.Scans,
		CreatedAt:        b.CreatedAt,
	}
}

func (b *QRCodeBuilder) BuildUpsertRequestDTO() reqdto.UpsertQRCodeRequest {
	return reqdto.UpsertQRCodeRequest{
		Title:            b.Title,
		ProductID:        b.ProductID,
		ProductHandle:    b.ProductHandle,
		ProductVariantID: b.ProductVariantID,
		Destination:      b.Destination,
	}
}

func (b *QRCodeBuilder) BuildEnrichedQuery() *queries.EnrichedQRCode {
	return &queries.EnrichedQRCode{
		QRCodeView: queries.QRCodeView{
			ID:               b.ID,
			Shop:             b.Shop,
			Title:            b.Title,
			ProductID:        b.ProductID,
			ProductHandle:    b.ProductHandle,
			ProductVariantID: b.ProductVariantID,
			Destination:      b.Destination,
			Scans:            b.Scans,
			CreatedAt:        b.CreatedAt,
		},
		DestinationURL: "https://" + b.Shop + "/products/" + b.ProductHandle,
		Image:          "data:image/png;base64,aGVsbG8=",
		ProductTitle:   "Spring Sale Tee",
		ProductImage:   "https://cdn.example.com/tee.png",
		ProductAlt:     "A tee",
	}
}

func (b *QRCodeBuilder) BuildDetailQuery() *queries.DetailView {
	return &queries.DetailView{
		Title: b.Title,
		Image: "data:image/png;base64,aGVsbG8=",
	}
}

package response

import (
	"qrlink/internal/usecase/queries"
)

type QRCodeResponse struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	ProductID        string `json:"productId"`
	ProductHandle    string `json:"productHandle"`
	ProductVariantID string `json:"productVariantId,omitempty"`
	Destination      string `json:"destination"`
	Scans            int32  `json:"scans"`
	CreatedAt        int64  `json:"createdAt"`
	DestinationURL   string `json:"destinationUrl"`
	Image            string `json:"image"`
	ProductTitle     string `json:"productTitle,omitempty"`
	ProductImage     string `json:"productImage,omitempty"`
	ProductAlt       string `json:"productAlt,omitempty"`
	ProductDeleted   bool   `json:"productDeleted"`
}

func FromEnriched(e *queries.EnrichedQRCode) *QRCodeResponse {
	return &QRCodeResponse{
		ID:               e.ID,
		Title:            e.Title,
		ProductID:        e.ProductID,
		ProductHandle:    e.ProductHandle,
		ProductVariantID: e.ProductVariantID,
		Destination:      e.Destination,
		Scans:            e.Scans,
		CreatedAt:        e.CreatedAt.Unix(),
		DestinationURL:   e.DestinationURL,
		Image:            e.Image,
		ProductTitle:     e.ProductTitle,
		ProductImage:     e.ProductImage,
		ProductAlt:       e.ProductAlt,
		ProductDeleted:   e.ProductDeleted,
	}
}

func FromEnrichedList(items []*queries.EnrichedQRCode) []*QRCodeResponse {
	res := make([]*QRCodeResponse, len(items))
	for i, it := range items {
		res[i] = FromEnriched(it)
	}
	return res
}

type QRCodeDetailResponse struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

func FromDetail(d *queries.DetailView) *QRCodeDetailResponse {
	return &QRCodeDetailResponse{Title: d.Title, Image: d.Image}
}

package request

import (
	"qrlink/internal/usecase/commands"
)

// UpsertQRCodeRequest is deliberately free of binding tags: required-field
// checking is the domain validator's job, so that every violation comes back
// in one accumulated field-error map instead of a bind failure.
type UpsertQRCodeRequest struct {
	Title            string `json:"title"`
	ProductID        string `json:"productId"`
	ProductHandle    string `json:"productHandle"`
	ProductVariantID string `json:"productVariantId"`
	Destination      string `json:"destination"`
}

func (r *UpsertQRCodeRequest) ToCommand() commands.CodeRequest {
	return commands.CodeRequest{
		Title:            r.Title,
		ProductID:        r.ProductID,
		ProductHandle:    r.ProductHandle,
		ProductVariantID: r.ProductVariantID,
		Destination:      r.Destination,
	}
}

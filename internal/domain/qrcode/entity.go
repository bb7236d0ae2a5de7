package qrcode

import "time"

// Destination selects which resolution rule applies when a code is scanned.
type Destination string

const (
	DestinationProduct Destination = "product"
	DestinationVariant Destination = "variant"
)

func (d Destination) Valid() bool {
	return d == DestinationProduct || d == DestinationVariant
}

// QRCode is the persisted configuration of one scannable code. The store owns
// the canonical state; everything outside the repository holds a
// request-scoped copy. Scans is mutated only through the store's atomic
// increment, never by assigning to this struct.
type QRCode struct {
	ID               int64
	Shop             string
	Title            string
	ProductID        string
	ProductHandle    string
	ProductVariantID string
	Destination      Destination
	Scans            int32
	CreatedAt        time.Time
}

package qrcode

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrMalformedVariantRef means a stored variant reference failed structural
// parsing. That is data corruption, not user input error.
var ErrMalformedVariantRef = errors.New("unrecognized product variant reference")

var variantRefPattern = regexp.MustCompile(`gid://shopify/ProductVariant/([0-9]+)`)

// DestinationURL derives the canonical URL a scanner lands on. Pure and
// deterministic; performs no I/O.
//
// product codes resolve to the storefront product page, variant codes to a
// pre-filled cart holding one unit of the variant.
func DestinationURL(qr *QRCode) (string, error) {
	if qr.Destination == DestinationProduct {
		return fmt.Sprintf("https://%s/products/%s", qr.Shop, qr.ProductHandle), nil
	}

	m := variantRefPattern.FindStringSubmatch(qr.ProductVariantID)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedVariantRef, qr.ProductVariantID)
	}
	return fmt.Sprintf("https://%s/cart/%s:1", qr.Shop, m[1]), nil
}

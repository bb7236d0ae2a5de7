package qrcode

// Candidate is the untrusted create/update payload shape.
type Candidate struct {
	Title            string
	ProductID        string
	ProductHandle    string
	ProductVariantID string
	Destination      string
}

// Field keys mirror the admin form field names.
const (
	FieldTitle       = "title"
	FieldProductID   = "productId"
	FieldDestination = "destination"
)

// Validate checks required fields and the destination enum on a candidate
// record. Every rule is evaluated; violations accumulate rather than
// short-circuiting. An empty result means the candidate is valid.
func Validate(c Candidate) map[string]string {
	fieldErrs := make(map[string]string)

	if c.Title == "" {
		fieldErrs[FieldTitle] = "Title is required"
	}
	if c.ProductID == "" {
		fieldErrs[FieldProductID] = "Product is required"
	}
	if c.Destination == "" {
		fieldErrs[FieldDestination] = "Destination is required"
	} else if !Destination(c.Destination).Valid() {
		fieldErrs[FieldDestination] = "Destination must be product or variant"
	}

	return fieldErrs
}

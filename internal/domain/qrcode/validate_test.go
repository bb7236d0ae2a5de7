//go:build unit

package qrcode_test

import (
	"testing"

	"qrlink/internal/domain/qrcode"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("empty candidate accumulates every violation", func(t *testing.T) {
		got := qrcode.Validate(qrcode.Candidate{})

		want := map[string]string{
			"title":       "Title is required",
			"productId":   "Product is required",
			"destination": "Destination is required",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("valid candidate returns no field errors", func(t *testing.T) {
		got := qrcode.Validate(qrcode.Candidate{
			Title:       "x",
			ProductID:   "y",
			Destination: "product",
		})
		assert.Empty(t, got)
	})

	t.Run("unknown destination value is rejected", func(t *testing.T) {
		got := qrcode.Validate(qrcode.Candidate{
			Title:       "x",
			ProductID:   "y",
			Destination: "banana",
		})
		assert.Len(t, got, 1)
		assert.Equal(t, "Destination must be product or variant", got[qrcode.FieldDestination])
	})

	t.Run("single missing field reported alone", func(t *testing.T) {
		cases := []struct {
			name      string
			candidate qrcode.Candidate
			wantField string
		}{
			{
				name:      "missing title",
				candidate: qrcode.Candidate{ProductID: "y", Destination: "product"},
				wantField: qrcode.FieldTitle,
			},
			{
				name:      "missing product reference",
				candidate: qrcode.Candidate{Title: "x", Destination: "product"},
				wantField: qrcode.FieldProductID,
			},
			{
				name:      "missing destination",
				candidate: qrcode.Candidate{Title: "x", ProductID: "y"},
				wantField: qrcode.FieldDestination,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got := qrcode.Validate(tc.candidate)
				assert.Len(t, got, 1)
				assert.Contains(t, got, tc.wantField)
			})
		}
	})
}

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"qrlink/internal/infra"
	"qrlink/internal/pkg/config"
	"qrlink/internal/usecase/queries"
)

const productQuery = `
query supplementQRCode($id: ID!) {
  product(id: $id) {
    title
    images(first: 1) {
      nodes {
        altText
        url
      }
    }
  }
}`

// ShopifyCatalog looks up live product metadata through the Admin GraphQL
// API of the shop that owns a code.
type ShopifyCatalog struct {
	client     *http.Client
	token      string
	apiVersion string
	// endpointOverride replaces the per-shop admin URL; tests only.
	endpointOverride string
}

func NewShopifyCatalog(cfg config.CatalogConfig) *ShopifyCatalog {
	return &ShopifyCatalog{
		client:     &http.Client{Timeout: cfg.Timeout},
		token:      cfg.AccessToken,
		apiVersion: cfg.APIVersion,
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type productResponse struct {
	Data struct {
		Product *struct {
			Title  string `json:"title"`
			Images struct {
				Nodes []struct {
					AltText string `json:"altText"`
					URL     string `json:"url"`
				} `json:"nodes"`
			} `json:"images"`
		} `json:"product"`
	} `json:"data"`
}

// Product fetches title and first image for a product reference. A nil
// summary with a nil error means the catalog no longer knows the product.
func (c *ShopifyCatalog) Product(ctx context.Context, shop, productID string) (*queries.ProductSummary, error) {
	body, err := json.Marshal(graphqlRequest{
		Query:     productQuery,
		Variables: map[string]any{"id": productID},
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode catalog query", err, infra.KindUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(shop), bytes.NewReader(body))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build catalog request", err, infra.KindUnavailable)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, infra.WrapRepoErr("catalog request failed", err, infra.KindUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, infra.WrapRepoErr(fmt.Sprintf("catalog returned status %d", resp.StatusCode), nil, infra.KindUnavailable)
	}

	var parsed productResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, infra.WrapRepoErr("failed to decode catalog response", err, infra.KindUnavailable)
	}

	product := parsed.Data.Product
	if product == nil || product.Title == "" {
		return nil, nil
	}

	summary := &queries.ProductSummary{Title: product.Title}
	if len(product.Images.Nodes) > 0 {
		summary.ImageURL = product.Images.Nodes[0].URL
		summary.ImageAlt = product.Images.Nodes[0].AltText
	}
	return summary, nil
}

func (c *ShopifyCatalog) endpoint(shop string) string {
	if c.endpointOverride != "" {
		return c.endpointOverride
	}
	return fmt.Sprintf("https://%s/admin/api/%s/graphql.json", shop, c.apiVersion)
}

package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aurora-jewelry/aurora-store/catalog-service/models"
)

// CatalogClient fetches the product catalog from the catalog service.
type CatalogClient struct {
	baseURL string
	client  *http.Client
}

// NewCatalogClient creates a CatalogClient for the given base URL.
func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// FetchProducts retrieves the full catalog. Any failure is terminal for
// the caller's page load; there is no retry.
func (c *CatalogClient) FetchProducts(ctx context.Context) ([]models.Product, error) {
	url := c.baseURL + "/api/products"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog service returned %d", resp.StatusCode)
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, err
	}
	return products, nil
}

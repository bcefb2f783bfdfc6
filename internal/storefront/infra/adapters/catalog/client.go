// Package catalog implements ports.CatalogGateway against the remote
// commerce-orders HTTP contract.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/buildline/storefront/internal/storefront/core/domain/entity"
	"github.com/buildline/storefront/internal/storefront/core/ports"
)

const itemsPath = "/api/commerce-orders/get/items"

// Client fetches and normalizes the remote catalog. Every failure mode —
// transport error, non-2xx status, malformed body, success=false envelope —
// surfaces as a *entity.CatalogLoadError so the boundary can offer the
// user a single "reload" affordance.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ ports.CatalogGateway = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Categories returns the full normalized catalog tree.
func (c *Client) Categories(ctx context.Context) ([]entity.Category, error) {
	env, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return normalizeCategories(env.Data), nil
}

// Products returns the flattened list of active, display-ready products.
func (c *Client) Products(ctx context.Context) ([]entity.Product, error) {
	cats, err := c.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return FlattenProducts(cats), nil
}

func (c *Client) fetch(ctx context.Context) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+itemsPath, nil)
	if err != nil {
		return nil, &entity.CatalogLoadError{Err: err}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &entity.CatalogLoadError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &entity.CatalogLoadError{
			Err: &entity.UpstreamError{Operation: "catalog fetch", StatusCode: res.StatusCode},
		}
	}

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, &entity.CatalogLoadError{Err: fmt.Errorf("decode catalog response: %w", err)}
	}
	if !env.Success {
		return nil, &entity.CatalogLoadError{Err: errors.New("catalog responded with success=false")}
	}
	return &env, nil
}

// Package orders implements ports.OrderGateway against the remote
// commerce-orders receive contract.
package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/buildline/storefront/internal/storefront/core/domain/entity"
	"github.com/buildline/storefront/internal/storefront/core/ports"
)

const receivePath = "/api/commerce-orders/receive"

// Wire shapes of the order submission contract.

type placeOrderRequest struct {
	Items        []wireOrderItem  `json:"items"`
	CustomerInfo wireCustomerInfo `json:"customer_info"`
}

type wireOrderItem struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

type wireCustomerInfo struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	CompanyType string `json:"companyType"`
	TINNumber   string `json:"tinNumber,omitempty"`
}

type placeOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// Client posts assembled submissions. Each call is exactly one attempt:
// no retries, no idempotency bookkeeping — the workflow above decides
// whether the user re-submits.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ ports.OrderGateway = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// PlaceOrder sends the submission and interprets the response. A transport
// error, a non-2xx status, and a success=false body are all submission
// failures: the caller leaves the cart untouched.
func (c *Client) PlaceOrder(ctx context.Context, sub *entity.OrderSubmission) (*entity.OrderReceipt, error) {
	body, err := json.Marshal(buildRequest(sub))
	if err != nil {
		return nil, fmt.Errorf("encode order %s: %w", sub.OrderNumber, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+receivePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("place order %s: %w", sub.OrderNumber, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("place order %s: %w", sub.OrderNumber, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &entity.UpstreamError{Operation: "place order", StatusCode: res.StatusCode}
	}

	var pr placeOrderResponse
	if err := json.NewDecoder(res.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("decode order response for %s: %w", sub.OrderNumber, err)
	}
	if !pr.Success {
		return nil, fmt.Errorf("place order %s: upstream rejected: %s", sub.OrderNumber, pr.Message)
	}

	return &entity.OrderReceipt{OrderID: pr.OrderID, Message: pr.Message}, nil
}

func buildRequest(sub *entity.OrderSubmission) placeOrderRequest {
	items := make([]wireOrderItem, 0, len(sub.Lines))
	for _, l := range sub.Lines {
		items = append(items, wireOrderItem{ItemID: l.ItemID, Quantity: l.Quantity})
	}
	return placeOrderRequest{
		Items: items,
		CustomerInfo: wireCustomerInfo{
			Name:        sub.Customer.Name,
			Phone:       sub.Customer.Phone,
			Email:       sub.Customer.Email,
			Address:     sub.Customer.Address,
			CompanyType: sub.Customer.CompanyType,
			TINNumber:   sub.Customer.TINNumber,
		},
	}
}

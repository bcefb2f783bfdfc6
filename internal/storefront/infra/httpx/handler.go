package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/buildline/storefront/internal/storefront/core/cart"
	"github.com/buildline/storefront/internal/storefront/core/checkout"
	"github.com/buildline/storefront/internal/storefront/core/domain/entity"
	"github.com/buildline/storefront/internal/storefront/core/ports"
	"github.com/buildline/storefront/internal/storefront/infra/httpx/middlewares"
)

// Handler exposes the storefront core over JSON. It is presentational
// plumbing: all cart mutation goes through the store and all submission
// logic through the workflow; nothing here holds state of its own.
type Handler struct {
	catalog  ports.CatalogGateway
	carts    *cart.Store
	checkout *checkout.Workflow
}

func NewHandler(catalog ports.CatalogGateway, carts *cart.Store, wf *checkout.Workflow) *Handler {
	return &Handler{
		catalog:  catalog,
		carts:    carts,
		checkout: wf,
	}
}

// GetCatalog returns the full normalized category tree.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalog.Categories(r.Context())
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCategories(cats))
}

// GetProducts returns the flattened display-ready product list.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Products(r.Context())
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProducts(products))
}

// GetCart returns the session's cart with derived totals.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionID(r.Context())
	writeJSON(w, http.StatusOK, mapCart(h.carts.Get(session)))
}

// AddCartItem resolves the product from the catalog and merges it into the
// session's cart. Stock is advisory only and is not checked here.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "product_id is required")
		return
	}

	product, err := h.findProduct(r.Context(), req.ProductID)
	if err != nil {
		h.writeCatalogError(w, r, err)
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "product_not_found", "")
		return
	}

	session := middlewares.SessionID(r.Context())
	updated := h.carts.AddItem(session, *product, req.Quantity)
	writeJSON(w, http.StatusOK, mapCart(updated))
}

// UpdateCartItem sets a line's quantity; zero or negative removes the line.
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	session := middlewares.SessionID(r.Context())
	updated := h.carts.UpdateQuantity(session, chi.URLParam(r, "productID"), req.Quantity)
	writeJSON(w, http.StatusOK, mapCart(updated))
}

// RemoveCartItem deletes a line. Idempotent: unknown ids still return 204.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionID(r.Context())
	h.carts.RemoveItem(session, chi.URLParam(r, "productID"))
	w.WriteHeader(http.StatusNoContent)
}

// ClearCart empties the session's cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionID(r.Context())
	h.carts.Clear(session)
	w.WriteHeader(http.StatusNoContent)
}

// SubmitOrder runs one submission attempt for the session's cart.
func (h *Handler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	session := middlewares.SessionID(r.Context())
	status, err := h.checkout.Submit(r.Context(), session, mapCustomerInfo(req.CustomerInfo))
	if err != nil {
		h.writeSubmitError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapStatus(status))
}

// OrderStatus returns the session's current submission lifecycle state.
func (h *Handler) OrderStatus(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionID(r.Context())
	writeJSON(w, http.StatusOK, mapStatus(h.checkout.Status(session)))
}

// Health is the liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// findProduct resolves a product id against the (cached) catalog. A nil
// product with nil error means the id is unknown.
func (h *Handler) findProduct(ctx context.Context, id string) (*entity.Product, error) {
	products, err := h.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

func (h *Handler) writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "catalog unavailable", "error", err)
	writeError(w, http.StatusBadGateway, "catalog_unavailable", "could not load products, please reload")
}

// writeSubmitError maps checkout failures onto the taxonomy the UI shows:
// missing information (correct and retry), duplicate submit (ignore), and
// upstream failure (retry explicitly).
func (h *Handler) writeSubmitError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *entity.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "missing_information",
			Message: "please fill in all required fields",
			Fields:  verr.Fields,
		})
	case errors.Is(err, entity.ErrEmptyCart):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "empty_cart",
			Message: "add items to the cart before placing an order",
		})
	case errors.Is(err, entity.ErrSubmissionInFlight):
		writeError(w, http.StatusConflict, "submission_in_flight", "an order is already being submitted")
	default:
		slog.ErrorContext(r.Context(), "order submission failed", "error", err)
		writeJSON(w, http.StatusBadGateway, ErrorResponse{
			Error:     "submission_failed",
			Message:   "order submission failed, please try again",
			Retryable: true,
		})
	}
}

func mapStatus(st checkout.Status) OrderStatusResponse {
	return OrderStatusResponse{
		State:       string(st.State),
		OrderNumber: st.OrderNumber,
		OrderID:     st.OrderID,
		Message:     st.Message,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}

package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/buildline/storefront/internal/storefront/infra/httpx/middlewares"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.WithSession)

		r.Get("/catalog", handler.GetCatalog)
		r.Get("/catalog/products", handler.GetProducts)

		r.Get("/cart", handler.GetCart)
		r.Post("/cart/items", handler.AddCartItem)
		r.Put("/cart/items/{productID}", handler.UpdateCartItem)
		r.Delete("/cart/items/{productID}", handler.RemoveCartItem)
		r.Delete("/cart", handler.ClearCart)

		r.Post("/orders", handler.SubmitOrder)
		r.Get("/orders/status", handler.OrderStatus)
	})

	return r
}

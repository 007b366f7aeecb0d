// Package handler exposes the HTTP surface: order creation, order listings,
// and the menu catalog.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewline/coffee-trade/internal/domain/menu"
	"github.com/brewline/coffee-trade/internal/domain/order"
	"github.com/brewline/coffee-trade/pkg/httpmiddleware"
)

// Handler wires the HTTP routes to the domain services.
type Handler struct {
	menu   menu.Repository
	orders *order.Service
}

// New constructs a Handler with the required domain dependencies.
func New(items menu.Repository, orders *order.Service) *Handler {
	return &Handler{
		menu:   items,
		orders: orders,
	}
}

// Router builds the API route tree. The security middleware guards the
// mutating order endpoint; reads stay open.
func (h *Handler) Router(security httpmiddleware.Middleware) http.Handler {
	r := chi.NewRouter()
	r.Get("/menu", h.ListMenu)
	r.Route("/orders", func(r chi.Router) {
		r.With(security).Post("/", h.CreateOrder)
		r.Get("/lines", h.ListOrderLines)
	})
	r.Get("/users/{userID}/orders", h.ListUserOrders)
	return r
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, errorResponse{Code: code, Message: message})
}

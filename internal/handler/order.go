package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/brewline/coffee-trade/internal/domain/order"
	"github.com/brewline/coffee-trade/internal/domain/pricing"
)

type createOrderRequest struct {
	UserID int64               `json:"userId"`
	Lines  []createLineRequest `json:"lines"`
}

type createLineRequest struct {
	ItemID   string `json:"itemId,omitempty"`
	Shots    int    `json:"shots,omitempty"`
	Caffeine string `json:"caffeine,omitempty"`
	Milk     string `json:"milk,omitempty"`
}

func (req createOrderRequest) toDomain() order.CreateRequest {
	lines := make([]order.LineRequest, len(req.Lines))
	for i, l := range req.Lines {
		lr := order.LineRequest{ItemID: l.ItemID}
		if l.Shots != 0 || l.Caffeine != "" || l.Milk != "" {
			lr.Taste = &pricing.TasteSpec{
				Shots:    l.Shots,
				Caffeine: pricing.CaffeineLevel(l.Caffeine),
				Milk:     pricing.MilkLevel(l.Milk),
			}
		}
		lines[i] = lr
	}
	return order.CreateRequest{UserID: req.UserID, Lines: lines}
}

// CreateOrder handles POST /orders.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	o, err := h.orders.CreateOrder(r.Context(), req.toDomain())
	if err != nil {
		h.respondOrderError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, order.ToView(*o, o.Lines))
}

// respondOrderError maps workflow errors to HTTP responses. Validation and
// assembly failures are the caller's fault; everything else is ours.
func (h *Handler) respondOrderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, order.ErrInvalidRequest):
		respondError(w, http.StatusBadRequest, "invalid order request")
	case errors.Is(err, order.ErrMissingDetails):
		respondError(w, http.StatusUnprocessableEntity, "order has no lines")
	default:
		var uiErr *order.UnknownItemError
		if errors.As(err, &uiErr) {
			respondError(w, http.StatusUnprocessableEntity, uiErr.Error())
			return
		}
		zctx.From(r.Context()).Error("Create order failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// ListUserOrders handles GET /users/{userID}/orders.
func (h *Handler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	limit := queryLimit(r)

	orders, err := h.orders.ListRecentOrders(r.Context(), userID, limit)
	if err != nil {
		zctx.From(r.Context()).Error("List orders failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	views := make([]order.View, len(orders))
	for i, o := range orders {
		views[i] = order.ToView(o, nil)
	}
	respondJSON(w, http.StatusOK, views)
}

// ListOrderLines handles GET /orders/lines?order_id=...&order_id=...
func (h *Handler) ListOrderLines(w http.ResponseWriter, r *http.Request) {
	orderIDs := r.URL.Query()["order_id"]
	if len(orderIDs) == 0 {
		respondError(w, http.StatusBadRequest, "at least one order_id is required")
		return
	}
	limit := queryLimit(r)

	lines, err := h.orders.ListOrderLines(r.Context(), orderIDs, limit)
	if err != nil {
		zctx.From(r.Context()).Error("List order lines failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	views := make([]order.LineView, len(lines))
	for i, line := range lines {
		views[i] = order.ToLineView(line)
	}
	respondJSON(w, http.StatusOK, views)
}

func queryLimit(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

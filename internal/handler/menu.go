package handler

import (
	"net/http"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/brewline/coffee-trade/internal/domain/menu"
)

type menuItemView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Price    float64 `json:"price"`
}

// ListMenu handles GET /menu.
func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.List(r.Context())
	if err != nil {
		zctx.From(r.Context()).Error("List menu failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	views := make([]menuItemView, len(items))
	for i, item := range items {
		views[i] = toMenuItemView(item)
	}
	respondJSON(w, http.StatusOK, views)
}

func toMenuItemView(item menu.Item) menuItemView {
	return menuItemView{
		ID:       item.ID,
		Name:     item.Name,
		Category: item.Category,
		Price:    item.Price.InexactFloat64(),
	}
}

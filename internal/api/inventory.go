package api

import (
	"net/http"

	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/sizes"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/store"
)

// InventoryHandler handles inventory endpoints.
type InventoryHandler struct {
	Store *store.Store
	Sizes *sizes.Aggregator
}

type updateStockRequest struct {
	Stock     *int `json:"stock"`
	Threshold *int `json:"lowStockThreshold"`
}

type setSizeStockRequest struct {
	Stock int `json:"stock"`
}

// List handles GET /api/inventory.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.LoadInventory(r.Context()))
}

// UpdateStock handles PUT /api/inventory/{id}. Omitted fields are left
// unchanged; the status is always re-derived.
func (h *InventoryHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	var req updateStockRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Stock == nil && req.Threshold == nil {
		jsonError(w, http.StatusBadRequest, "stock or lowStockThreshold required")
		return
	}
	if req.Stock != nil && *req.Stock < 0 {
		jsonError(w, http.StatusBadRequest, "stock must be non-negative")
		return
	}
	if req.Threshold != nil && *req.Threshold < 0 {
		jsonError(w, http.StatusBadRequest, "lowStockThreshold must be non-negative")
		return
	}

	rec, err := h.Store.UpdateStock(r.Context(), r.PathValue("id"), req.Stock, req.Threshold)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update stock")
		return
	}
	if rec == nil {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	jsonResponse(w, http.StatusOK, rec)
}

// ExpandSizes handles POST /api/inventory/{id}/sizes.
func (h *InventoryHandler) ExpandSizes(w http.ResponseWriter, r *http.Request) {
	breakdown, err := h.Sizes.Expand(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusNotFound, err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, breakdown)
}

// SetSizeStock handles PUT /api/inventory/{id}/sizes/{size}.
func (h *InventoryHandler) SetSizeStock(w http.ResponseWriter, r *http.Request) {
	var req setSizeStockRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	total, err := h.Sizes.SetSizeStock(r.Context(), r.PathValue("id"), r.PathValue("size"), req.Stock)
	if err != nil {
		jsonError(w, http.StatusNotFound, err.Error())
		return
	}
	jsonResponse(w, http.StatusOK, map[string]int{"stock": total})
}

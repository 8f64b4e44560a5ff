package api

import (
	"net/http"

	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/model"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/store"
)

// ContentHandler handles site content, store settings, and orders.
type ContentHandler struct {
	Store *store.Store
}

// GetSiteContent handles GET /api/site-content.
func (h *ContentHandler) GetSiteContent(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.LoadSiteContent(r.Context()))
}

// PutSiteContent handles PUT /api/site-content.
func (h *ContentHandler) PutSiteContent(w http.ResponseWriter, r *http.Request) {
	var content model.SiteContent
	if err := decodeJSON(r, &content); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Featured ids must reference existing products.
	for _, id := range content.FeaturedProducts {
		if h.Store.GetProduct(r.Context(), id) == nil {
			jsonError(w, http.StatusBadRequest, "unknown featured product: "+id)
			return
		}
	}

	if err := h.Store.SaveSiteContent(r.Context(), content); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save site content")
		return
	}
	jsonResponse(w, http.StatusOK, h.Store.LoadSiteContent(r.Context()))
}

// GetSettings handles GET /api/settings.
func (h *ContentHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.LoadSettings(r.Context()))
}

// PutSettings handles PUT /api/settings.
func (h *ContentHandler) PutSettings(w http.ResponseWriter, r *http.Request) {
	var settings model.StoreSettings
	if err := decodeJSON(r, &settings); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Store.SaveSettings(r.Context(), settings); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	jsonResponse(w, http.StatusOK, h.Store.LoadSettings(r.Context()))
}

// ListOrders handles GET /api/orders.
func (h *ContentHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.Store.LoadOrders(r.Context())
	if orders == nil {
		orders = []model.Order{}
	}
	jsonResponse(w, http.StatusOK, orders)
}

package api

import (
	"fmt"
	"net/http"

	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/catalog"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/imaging"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/kv"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/model"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/store"
)

// ProductsHandler handles catalog endpoints.
type ProductsHandler struct {
	Store *store.Store
	KV    kv.Store
}

// List handles GET /api/products. Filter and sort criteria come from query
// parameters and run through the catalog pipeline.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.Filter{
		Brand: q.Get("brand"),
		Size:  q.Get("size"),
		Price: q.Get("price"),
		Sort:  q.Get("sort"),
	}

	products := catalog.Apply(h.Store.LoadProducts(r.Context()), filter)
	jsonResponse(w, http.StatusOK, products)
}

// Get handles GET /api/products/{id}.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	product := h.Store.GetProduct(r.Context(), r.PathValue("id"))
	if product == nil {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	jsonResponse(w, http.StatusOK, product)
}

// Create handles POST /api/products.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product model.Product
	if err := decodeJSON(r, &product); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if product.ID == "" || product.Name == "" {
		jsonError(w, http.StatusBadRequest, "id and name required")
		return
	}
	if existing := h.Store.GetProduct(r.Context(), product.ID); existing != nil {
		jsonError(w, http.StatusConflict, "product id already exists")
		return
	}

	if err := h.Store.UpsertProduct(r.Context(), product); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create product")
		return
	}
	jsonResponse(w, http.StatusCreated, h.Store.GetProduct(r.Context(), product.ID))
}

// Update handles PUT /api/products/{id}.
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if h.Store.GetProduct(r.Context(), id) == nil {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}

	var product model.Product
	if err := decodeJSON(r, &product); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	product.ID = id
	if product.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	if err := h.Store.UpsertProduct(r.Context(), product); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update product")
		return
	}
	jsonResponse(w, http.StatusOK, h.Store.GetProduct(r.Context(), id))
}

// Delete handles DELETE /api/products/{id}. Removes the product from both
// the catalog and the inventory list.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	found, err := h.Store.DeleteProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}
	if !found {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// UploadImage handles PUT /api/products/{id}/image. The upload is processed
// into a thumbnail and becomes the product's primary image.
func (h *ProductsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	product := h.Store.GetProduct(r.Context(), id)
	if product == nil {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}

	data, _, err := imaging.Process(r.Body)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.KV.Set(r.Context(), "image:"+id, data); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to store image")
		return
	}

	url := fmt.Sprintf("/api/products/%s/image", id)
	if len(product.Images) == 0 || product.Images[0] != url {
		product.Images = append([]string{url}, product.Images...)
	}
	if err := h.Store.UpsertProduct(r.Context(), *product); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"url": url})
}

// GetImage handles GET /api/products/{id}/image.
func (h *ProductsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	data, ok, err := h.KV.Get(r.Context(), "image:"+r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to read image")
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "image not found")
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	w.Write(data)
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Faizansait10/portfolio-advisor/internal/apperrors"
	"github.com/Faizansait10/portfolio-advisor/internal/models"
	"github.com/gorilla/mux"
)

func productID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, apperrors.InvalidInput("Invalid product id.")
	}
	return id, nil
}

// CreateProduct adds a catalog product
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.FinancialProduct
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		h.respondError(w, apperrors.InvalidInput("Invalid request body."))
		return
	}

	if err := h.products.Add(&product); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, product)
}

// ListProducts returns the catalog, optionally filtered by risk_level
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	var (
		products []models.FinancialProduct
		err      error
	)
	if riskLevel := r.URL.Query().Get("risk_level"); riskLevel != "" {
		products, err = h.products.GetByRiskLevel(riskLevel)
	} else {
		products, err = h.products.GetAll()
	}
	if err != nil {
		h.respondError(w, err)
		return
	}
	if products == nil {
		products = []models.FinancialProduct{}
	}
	h.respondJSON(w, http.StatusOK, products)
}

// GetProduct returns one catalog product by id
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	product, err := h.products.GetByID(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if product == nil {
		h.respondError(w, apperrors.NotFound("Product %d not found.", id))
		return
	}
	h.respondJSON(w, http.StatusOK, product)
}

// UpdateProduct rewrites a catalog product
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	var product models.FinancialProduct
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		h.respondError(w, apperrors.InvalidInput("Invalid request body."))
		return
	}
	product.ID = id

	updated, err := h.products.Update(&product)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if !updated {
		h.respondError(w, apperrors.NotFound("Product %d not found.", id))
		return
	}
	h.respondJSON(w, http.StatusOK, product)
}

// DeleteProduct removes a catalog product
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	deleted, err := h.products.Delete(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if !deleted {
		h.respondError(w, apperrors.NotFound("Product %d not found.", id))
		return
	}
	h.respondJSON(w, http.StatusNoContent, nil)
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ecom-analytics/internal/models"
	"ecom-analytics/internal/products"
)

const (
	defaultPopularLimit   = 10
	defaultLowStockCutoff = 5
)

type productHandler struct {
	productService products.ProductService
}

func NewProductHandler(productService products.ProductService) *productHandler {
	return &productHandler{productService: productService}
}

func (h *productHandler) List(w http.ResponseWriter, r *http.Request) error {
	if category := r.URL.Query().Get("category"); category != "" {
		list, err := h.productService.GetByCategory(r.Context(), category)
		if err != nil {
			return err
		}
		return respondJSON(w, http.StatusOK, list)
	}

	list, err := h.productService.GetAll(r.Context())
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, list)
}

func (h *productHandler) Get(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return err
	}
	product, svcErr := h.productService.GetByID(r.Context(), id)
	if svcErr != nil {
		return svcErr
	}
	return respondJSON(w, http.StatusOK, product)
}

func (h *productHandler) Popular(w http.ResponseWriter, r *http.Request) error {
	list, err := h.productService.GetMostPopular(r.Context(), queryInt(r, "limit", defaultPopularLimit))
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, list)
}

func (h *productHandler) LowStock(w http.ResponseWriter, r *http.Request) error {
	list, err := h.productService.GetLowStock(r.Context(), queryInt(r, "threshold", defaultLowStockCutoff))
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusOK, list)
}

func (h *productHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		return errInvalidRequestBody(err)
	}
	created, err := h.productService.Create(r.Context(), &product)
	if err != nil {
		return err
	}
	return respondJSON(w, http.StatusCreated, created)
}

func (h *productHandler) Update(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return err
	}
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		return errInvalidRequestBody(err)
	}
	updated, svcErr := h.productService.Update(r.Context(), id, &product)
	if svcErr != nil {
		return svcErr
	}
	return respondJSON(w, http.StatusOK, updated)
}

func (h *productHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return err
	}
	if err := h.productService.Delete(r.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type stockRequest struct {
	Quantity *int `json:"quantity"`
	Delta    *int `json:"delta"`
}

// Stock handles PUT /products/{id}/stock. The body carries either an
// absolute quantity or a delta.
func (h *productHandler) Stock(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return err
	}
	var body stockRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return errInvalidRequestBody(err)
	}

	var updated *models.Product
	var svcErr error
	switch {
	case body.Quantity != nil:
		updated, svcErr = h.productService.SetStock(r.Context(), id, *body.Quantity)
	case body.Delta != nil:
		updated, svcErr = h.productService.AdjustStock(r.Context(), id, *body.Delta)
	default:
		return errInvalidRequestBody(nil)
	}
	if svcErr != nil {
		return svcErr
	}
	return respondJSON(w, http.StatusOK, updated)
}

func (h *productHandler) InStock(w http.ResponseWriter, r *http.Request) error {
	id, err := productID(r)
	if err != nil {
		return err
	}
	inStock, svcErr := h.productService.IsInStock(r.Context(), id)
	if svcErr != nil {
		return svcErr
	}
	return respondJSON(w, http.StatusOK, map[string]bool{"inStock": inStock})
}

func productID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errInvalidPathParam("id", err)
	}
	return id, nil
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/talentbms/talent-bms-api/internal/domain"
	"github.com/talentbms/talent-bms-api/internal/usecases/recording"
	"github.com/talentbms/talent-bms-api/pkg/apiErrors"
	"github.com/talentbms/talent-bms-api/pkg/log"
)

type ProductRequest struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	TalentName  string `json:"talentName"`
	AccountName string `json:"accountName"`
}

func ListProducts(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		products, err := service.ListProducts()
		if err != nil {
			logger.WithError(err).Error("products: failed to list products")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error listing products", nil)
			return
		}

		writeJSON(w, http.StatusOK, products)
	})
}

func CreateProduct(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req ProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		product := &domain.Product{
			Name:        req.Name,
			URL:         req.URL,
			TalentName:  req.TalentName,
			AccountName: req.AccountName,
		}

		created, err := service.CreateProduct(product)
		if err != nil {
			handleRecordingError(w, logger, err, "products: failed to create product")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func UpdateProduct(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req ProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		product := &domain.Product{
			ID:          id,
			Name:        req.Name,
			URL:         req.URL,
			TalentName:  req.TalentName,
			AccountName: req.AccountName,
		}

		if err := service.UpdateProduct(product); err != nil {
			handleRecordingError(w, logger, err, "products: failed to update product")
			return
		}

		writeJSON(w, http.StatusOK, product)
	})
}

func DeleteProduct(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteProduct(id); err != nil {
			handleRecordingError(w, logger, err, "products: failed to delete product")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/talentbms/talent-bms-api/internal/domain"
	"github.com/talentbms/talent-bms-api/internal/usecases/recording"
	"github.com/talentbms/talent-bms-api/internal/usecases/reporting"
	"github.com/talentbms/talent-bms-api/pkg/apiErrors"
	"github.com/talentbms/talent-bms-api/pkg/log"
)

type CreateSaleRequest struct {
	Date             string `json:"date"`
	Kind             string `json:"kind"`
	TalentName       string `json:"talentName"`
	AccountName      string `json:"accountName"`
	GMV              int64  `json:"gmv"`
	ProductViews     int64  `json:"productViews"`
	ProductClicks    int64  `json:"productClicks"`
	ProductID        string `json:"productId"`
	LegacyLinkedPost string `json:"legacyLinkedPostId"`
	ProductName      string `json:"productName"`
	Quantity         int64  `json:"quantity"`
	Revenue          int64  `json:"revenue"`
	Commission       int64  `json:"commission"`
}

func ListSales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithError(err).Warn("sales: invalid date filters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		sales, err := service.ListSales(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("sales: failed to list sales")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error listing sales", nil)
			return
		}

		writeJSON(w, http.StatusOK, sales)
	})
}

func CreateSale(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req CreateSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		sale := &domain.Sale{
			Date:               req.Date,
			Kind:               req.Kind,
			TalentName:         req.TalentName,
			AccountName:        req.AccountName,
			GMV:                req.GMV,
			ProductViews:       req.ProductViews,
			ProductClicks:      req.ProductClicks,
			ProductID:          req.ProductID,
			LegacyLinkedPostID: req.LegacyLinkedPost,
			ProductName:        req.ProductName,
			Quantity:           req.Quantity,
			Revenue:            req.Revenue,
			Commission:         req.Commission,
		}

		created, err := service.CreateSale(sale)
		if err != nil {
			handleRecordingError(w, logger, err, "sales: failed to create sale")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func DeleteSale(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteSale(id); err != nil {
			handleRecordingError(w, logger, err, "sales: failed to delete sale")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// handleRecordingError maps recording errors onto API error codes
func handleRecordingError(w http.ResponseWriter, logger log.Logger, err error, logMsg string) {
	logger.WithError(err).Warn(logMsg)

	switch {
	case errors.Is(err, recording.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, recording.ErrInvalidDate),
		errors.Is(err, recording.ErrInvalidSaleKind),
		errors.Is(err, recording.ErrInvalidPlatform):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, recording.ErrRecordIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "database operation failed", nil)
	}
}

package handler

import (
	"net/http"
	"time"

	"github.com/talentbms/talent-bms-api/internal/domain"
	"github.com/talentbms/talent-bms-api/internal/usecases/reporting"
	"github.com/talentbms/talent-bms-api/pkg/apiErrors"
	"github.com/talentbms/talent-bms-api/pkg/log"
	"github.com/talentbms/talent-bms-api/pkg/utils"
)

// parseReportFilters reads the optional start_date/end_date query params.
// Both must be present for a ranged view; one without the other is an error.
func parseReportFilters(r *http.Request) (*domain.ReportFilters, error) {
	startParam := r.URL.Query().Get("start_date")
	endParam := r.URL.Query().Get("end_date")

	if startParam == "" && endParam == "" {
		return &domain.ReportFilters{}, nil
	}

	if startParam == "" || endParam == "" {
		return nil, domain.ErrPartialDateRange
	}

	startDate, err := utils.ParseDate(startParam)
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(endParam)
	if err != nil {
		return nil, err
	}

	if endDate.Before(*startDate) {
		return nil, domain.ErrInvertedDateRange
	}

	return &domain.ReportFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("dashboard: invalid date filters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report := service.BuildDashboard(r.Context(), filters)

		if filters.Ranged() {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
			}).Debug("dashboard: built ranged report")
		}

		writeJSON(w, http.StatusOK, report)
	})
}

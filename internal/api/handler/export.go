package handler

import (
	"fmt"
	"net/http"

	"github.com/talentbms/talent-bms-api/internal/usecases/reporting"
	"github.com/talentbms/talent-bms-api/pkg/apiErrors"
	"github.com/talentbms/talent-bms-api/pkg/log"
)

const (
	exportFormatCSV  = "csv"
	exportFormatXLSX = "xlsx"

	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportSales streams the sales report as a downloadable file. The format
// query param selects csv (default) or xlsx.
func ExportSales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithError(err).Warn("export: invalid date filters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		format := r.URL.Query().Get("format")
		if format == "" {
			format = exportFormatCSV
		}

		var (
			payload     []byte
			filename    string
			contentType string
		)

		switch format {
		case exportFormatCSV:
			payload, filename, err = service.ExportSalesCSV(r.Context(), filters)
			contentType = contentTypeCSV
		case exportFormatXLSX:
			payload, filename, err = service.ExportSalesXLSX(r.Context(), filters)
			contentType = contentTypeXLSX
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "format must be csv or xlsx", nil)
			return
		}

		if err != nil {
			logger.WithFields(log.Fields{
				"format": format,
				"error":  err.Error(),
			}).Error("export: failed to render sales report")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error generating export", nil)
			return
		}

		logger.WithFields(log.Fields{
			"format":   format,
			"filename": filename,
		}).Info("export: sales report generated")

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(payload); err != nil {
			logger.WithError(err).Error("export: failed to write response")
		}
	})
}

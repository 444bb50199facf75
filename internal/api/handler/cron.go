package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/talentbms/talent-bms-api/internal/scheduler"
	"github.com/talentbms/talent-bms-api/pkg/apiErrors"
)

// Cron job types accepted by the manual trigger endpoint
const (
	CronJobTypeBackfill = "backfill"
)

// CronJobServices holds the schedulers exposed for manual runs
type CronJobServices struct {
	BackfillSyncService *scheduler.BackfillSyncService
}

// RunCronJob triggers one cron job manually
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "cron job type not specified", nil)
			return
		}

		switch cronType {
		case CronJobTypeBackfill:
			if services.BackfillSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "backfill service is not available", nil)
				return
			}

			result, err := services.BackfillSyncService.RunBackfill(r.Context())
			if err != nil {
				if errors.Is(err, scheduler.ErrSyncAlreadyRunning) {
					apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
					return
				}

				logrus.WithError(err).Error("manual backfill run failed")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "backfill run failed", nil)
				return
			}

			writeJSON(w, http.StatusOK, map[string]any{
				"message": "cron job finished",
				"type":    cronType,
				"result":  result,
			})

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid cron job type. Accepted values: backfill", nil)
		}
	}
}

// GetCronStatus returns the status of the cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"backfill": services.BackfillSyncService.Status(),
		}

		writeJSON(w, http.StatusOK, status)
	}
}

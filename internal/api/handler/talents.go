package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/talentbms/talent-bms-api/internal/domain"
	"github.com/talentbms/talent-bms-api/internal/usecases/recording"
	"github.com/talentbms/talent-bms-api/pkg/apiErrors"
	"github.com/talentbms/talent-bms-api/pkg/log"
)

type TalentRequest struct {
	Name     string   `json:"name"`
	Accounts []string `json:"accounts"`
}

func ListTalents(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		talents, err := service.ListTalents()
		if err != nil {
			logger.WithError(err).Error("talents: failed to list talents")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error listing talents", nil)
			return
		}

		writeJSON(w, http.StatusOK, talents)
	})
}

func CreateTalent(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req TalentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		talent := &domain.TalentReference{
			Name:     req.Name,
			Accounts: req.Accounts,
		}

		created, err := service.CreateTalent(talent)
		if err != nil {
			handleRecordingError(w, logger, err, "talents: failed to create talent")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func UpdateTalent(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req TalentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		talent := &domain.TalentReference{
			ID:       id,
			Name:     req.Name,
			Accounts: req.Accounts,
		}

		if err := service.UpdateTalent(talent); err != nil {
			handleRecordingError(w, logger, err, "talents: failed to update talent")
			return
		}

		writeJSON(w, http.StatusOK, talent)
	})
}

func DeleteTalent(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteTalent(id); err != nil {
			handleRecordingError(w, logger, err, "talents: failed to delete talent")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

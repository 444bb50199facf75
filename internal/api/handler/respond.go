package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/talentbms/talent-bms-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON encodes payload as the JSON response body
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("failed to encode response")
	}
}

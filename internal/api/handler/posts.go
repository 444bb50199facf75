package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/talentbms/talent-bms-api/internal/domain"
	"github.com/talentbms/talent-bms-api/internal/usecases/recording"
	"github.com/talentbms/talent-bms-api/internal/usecases/reporting"
	"github.com/talentbms/talent-bms-api/pkg/apiErrors"
	"github.com/talentbms/talent-bms-api/pkg/log"
)

type CreatePostRequest struct {
	Date        string `json:"date"`
	TalentName  string `json:"talentName"`
	AccountName string `json:"accountName"`
	Platform    string `json:"platform"`
	Link        string `json:"link"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Views       int64  `json:"views"`
	Likes       int64  `json:"likes"`
}

func ListPosts(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseReportFilters(r)
		if err != nil {
			logger.WithError(err).Warn("posts: invalid date filters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		posts, err := service.ListPosts(r.Context(), filters)
		if err != nil {
			logger.WithError(err).Error("posts: failed to list posts")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "error listing posts", nil)
			return
		}

		writeJSON(w, http.StatusOK, posts)
	})
}

func CreatePost(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		post := &domain.Post{
			Date:        req.Date,
			TalentName:  req.TalentName,
			AccountName: req.AccountName,
			Platform:    req.Platform,
			Link:        req.Link,
			ProductID:   req.ProductID,
			ProductName: req.ProductName,
			Views:       req.Views,
			Likes:       req.Likes,
		}

		created, err := service.CreatePost(post)
		if err != nil {
			handleRecordingError(w, logger, err, "posts: failed to create post")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func DeletePost(service recording.Recorder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeletePost(id); err != nil {
			handleRecordingError(w, logger, err, "posts: failed to delete post")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

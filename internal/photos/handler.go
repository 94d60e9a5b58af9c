package photos

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/fitsnap/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=photos_test

type photosRepo interface {
	List(ctx context.Context, params ListParams) ([]ProgressPhoto, error)
}

type Handler struct {
	repo photosRepo
}

func NewHandler(repo photosRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	userIDStr := r.URL.Query().Get("user")
	if userIDStr == "" {
		http.Error(w, "error, user empty", http.StatusBadRequest)
		return
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		http.Error(w, "error, user invalid", http.StatusBadRequest)
		return
	}

	params := ListParams{UserID: userID}
	if viewParam := r.URL.Query().Get("view"); viewParam != "" {
		viewType := ViewType(viewParam)
		if !viewType.Valid() {
			http.Error(w, "error, view invalid", http.StatusBadRequest)
			return
		}
		params.ViewType = viewType
	}

	photosList, err := handler.repo.List(r.Context(), params)
	if err != nil {
		log.Errorf("list progress photos error: %s", err)
		http.Error(w, "failed to get progress photos", http.StatusInternalServerError)
		return
	}

	if len(photosList) == 0 {
		photosList = []ProgressPhoto{}
	}

	photosJson, err := json.Marshal(photosList)
	if err != nil {
		log.Errorf("marshal progress photos error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resJson := fmt.Sprintf(`{"photos": %s, "total": %d}`, photosJson, len(photosList))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, []byte(resJson))
}

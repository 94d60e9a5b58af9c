package measurements

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/2beens/fitsnap/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=measurements_test

type measurementsRepo interface {
	Add(ctx context.Context, entry Entry) (*Entry, error)
	List(ctx context.Context, userID int, measurementType Type) ([]Entry, error)
}

type Handler struct {
	repo measurementsRepo
}

func NewHandler(repo measurementsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	reqBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Errorf("add measurement, read request body: %s", err)
		http.Error(w, "add measurement failed", http.StatusInternalServerError)
		return
	}

	var entry Entry
	if err := json.Unmarshal(reqBytes, &entry); err != nil {
		log.Errorf("add measurement, unmarshal request: %s", err)
		http.Error(w, "add measurement failed", http.StatusBadRequest)
		return
	}

	if entry.UserID <= 0 {
		http.Error(w, "error, user invalid", http.StatusBadRequest)
		return
	}
	if !entry.Type.Valid() {
		http.Error(w, "error, type invalid", http.StatusBadRequest)
		return
	}
	if entry.RecordedAt.IsZero() {
		http.Error(w, "error, recordedAt empty", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.Add(r.Context(), entry)
	if err != nil {
		log.Errorf("add measurement: %s", err)
		http.Error(w, "add measurement failed", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("add measurement, marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
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

	measurementType := Type(r.URL.Query().Get("type"))
	if !measurementType.Valid() {
		http.Error(w, "error, type invalid", http.StatusBadRequest)
		return
	}

	entries, err := handler.repo.List(r.Context(), userID, measurementType)
	if err != nil {
		log.Errorf("list measurements error: %s", err)
		http.Error(w, "failed to get measurements", http.StatusInternalServerError)
		return
	}

	if len(entries) == 0 {
		entries = []Entry{}
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal measurements error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resJson := fmt.Sprintf(`{"entries": %s, "total": %d}`, entriesJson, len(entries))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, []byte(resJson))
}

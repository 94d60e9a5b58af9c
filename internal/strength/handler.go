package strength

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitsnap/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=strength_test

type strengthAnalyzer interface {
	Report(ctx context.Context, userID int, now time.Time) (*Report, error)
}

type Handler struct {
	analyzer strengthAnalyzer
	now      func() time.Time
}

func NewHandler(analyzer strengthAnalyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
		now:      time.Now,
	}
}

func (handler *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
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

	report, err := handler.analyzer.Report(r.Context(), userID, handler.now())
	if err != nil {
		log.Errorf("get strength report error: %s", err)
		http.Error(w, "failed to get strength report", http.StatusInternalServerError)
		return
	}

	reportJson, err := json.Marshal(report)
	if err != nil {
		log.Errorf("marshal strength report error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, reportJson)
}

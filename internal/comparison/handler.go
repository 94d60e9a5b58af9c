package comparison

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitsnap/internal/measurements"
	"github.com/2beens/fitsnap/internal/photos"
	"github.com/2beens/fitsnap/internal/strength"
	"github.com/2beens/fitsnap/internal/telemetry/metrics"
	"github.com/2beens/fitsnap/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=comparison_test

type comparisonsRepo interface {
	Add(ctx context.Context, comparison Comparison) (*Comparison, error)
	Get(ctx context.Context, id int) (*Comparison, error)
	ListForUser(ctx context.Context, userID int) ([]Comparison, error)
	UpdateSettings(ctx context.Context, id int, settings Settings) error
	Delete(ctx context.Context, id int) error
}

type photosGetter interface {
	GetAll(ctx context.Context, ids []int) ([]photos.ProgressPhoto, error)
}

type measurementsLister interface {
	ListAll(ctx context.Context, userID int) (map[measurements.Type][]measurements.Entry, error)
}

type strengthReporter interface {
	Report(ctx context.Context, userID int, now time.Time) (*strength.Report, error)
}

type stackExporter interface {
	Export(ctx context.Context, comparisonID int, stack LayerStack) (*ExportArtifact, error)
}

type Handler struct {
	repo         comparisonsRepo
	photos       photosGetter
	measurements measurementsLister
	strength     strengthReporter
	summarizer   summaryGenerator
	exporter     stackExporter
	metrics      *metrics.Manager
	now          func() time.Time
}

func NewHandler(
	repo comparisonsRepo,
	photosGetter photosGetter,
	measurementsLister measurementsLister,
	strengthReporter strengthReporter,
	summarizer summaryGenerator,
	exporter stackExporter,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:         repo,
		photos:       photosGetter,
		measurements: measurementsLister,
		strength:     strengthReporter,
		summarizer:   summarizer,
		exporter:     exporter,
		metrics:      metricsManager,
		now:          time.Now,
	}
}

type newComparisonRequest struct {
	UserID   int            `json:"userId"`
	PhotoIDs []int          `json:"photoIds"`
	Settings map[string]any `json:"settings"`
}

func (handler *Handler) HandleNew(w http.ResponseWriter, r *http.Request) {
	reqBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Errorf("new comparison, read request body: %s", err)
		http.Error(w, "create comparison failed", http.StatusInternalServerError)
		return
	}

	var newReq newComparisonRequest
	if err := json.Unmarshal(reqBytes, &newReq); err != nil {
		log.Errorf("new comparison, unmarshal request: %s", err)
		http.Error(w, "create comparison failed", http.StatusBadRequest)
		return
	}

	if newReq.UserID <= 0 {
		http.Error(w, "error, user invalid", http.StatusBadRequest)
		return
	}
	if len(newReq.PhotoIDs) < 2 {
		http.Error(w, "error, at least 2 photos needed", http.StatusBadRequest)
		return
	}

	// settings document is optional on create
	settings := DecodeSettings(newReq.Settings)

	selection, err := handler.photos.GetAll(r.Context(), newReq.PhotoIDs)
	if err != nil {
		if errors.Is(err, photos.ErrPhotoNotFound) {
			http.Error(w, "error, photo not found", http.StatusBadRequest)
			return
		}
		log.Errorf("new comparison, get photos: %s", err)
		http.Error(w, "create comparison failed", http.StatusInternalServerError)
		return
	}

	session := NewSession(selection, settings)
	resolution := session.Resolve()

	added, err := handler.repo.Add(r.Context(), Comparison{
		UserID:   newReq.UserID,
		PhotoIDs: newReq.PhotoIDs,
		Settings: session.Settings,
	})
	if err != nil {
		log.Errorf("new comparison, add: %s", err)
		http.Error(w, "create comparison failed", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterComparisons.Inc()

	handler.writeComparison(w, added, resolution, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	comparison, ok := handler.getComparison(w, r)
	if !ok {
		return
	}

	selection, err := handler.photos.GetAll(r.Context(), comparison.PhotoIDs)
	if err != nil {
		log.Errorf("get comparison %d, get photos: %s", comparison.ID, err)
		http.Error(w, "failed to get comparison", http.StatusInternalServerError)
		return
	}

	session := NewSession(selection, comparison.Settings)
	handler.writeComparison(w, comparison, session.Resolve(), http.StatusOK)
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

	comparisons, err := handler.repo.ListForUser(r.Context(), userID)
	if err != nil {
		log.Errorf("list comparisons error: %s", err)
		http.Error(w, "failed to list comparisons", http.StatusInternalServerError)
		return
	}

	type listedComparison struct {
		Comparison
		Settings map[string]any `json:"settings"`
	}
	listed := make([]listedComparison, 0, len(comparisons))
	for _, c := range comparisons {
		listed = append(listed, listedComparison{
			Comparison: c,
			Settings:   EncodeSettings(c.Settings),
		})
	}

	resp, err := json.Marshal(map[string]any{
		"comparisons": listed,
		"total":       len(listed),
	})
	if err != nil {
		log.Errorf("marshal comparisons error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}

// HandleUpdateSettings replaces the stored settings document.
func (handler *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id invalid", http.StatusBadRequest)
		return
	}

	reqBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Errorf("update comparison %d settings, read request body: %s", id, err)
		http.Error(w, "update settings failed", http.StatusInternalServerError)
		return
	}

	var doc map[string]any
	if err := json.Unmarshal(reqBytes, &doc); err != nil {
		log.Errorf("update comparison %d settings, unmarshal request: %s", id, err)
		http.Error(w, "update settings failed", http.StatusBadRequest)
		return
	}

	settings := DecodeSettings(doc)
	if err := handler.repo.UpdateSettings(r.Context(), id, settings); err != nil {
		if errors.Is(err, ErrComparisonNotFound) {
			http.Error(w, "comparison not found", http.StatusNotFound)
			return
		}
		log.Errorf("update comparison %d settings: %s", id, err)
		http.Error(w, "update settings failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id invalid", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrComparisonNotFound) {
			http.Error(w, "comparison not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete comparison %d: %s", id, err)
		http.Error(w, "delete comparison failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "deleted")
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	comparison, ok := handler.getComparison(w, r)
	if !ok {
		return
	}

	session, err := handler.sessionFor(r.Context(), comparison)
	if err != nil {
		log.Errorf("stats for comparison %d, get photos: %s", comparison.ID, err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}

	stats, err := handler.computeStats(r.Context(), comparison, session)
	if err != nil {
		log.Errorf("stats for comparison %d: %s", comparison.ID, err)
		http.Error(w, "failed to compute stats", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(map[string]any{"stats": stats})
	if err != nil {
		log.Errorf("marshal stats error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}

// HandleSummary asks the AI collaborator for a summary and caches it
// in the comparison settings. The collaborator's error text goes back
// to the client as is.
func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	comparison, ok := handler.getComparison(w, r)
	if !ok {
		return
	}

	session, err := handler.sessionFor(r.Context(), comparison)
	if err != nil {
		log.Errorf("summary for comparison %d, get photos: %s", comparison.ID, err)
		http.Error(w, "failed to generate summary", http.StatusInternalServerError)
		return
	}

	seriesByType, err := handler.measurements.ListAll(r.Context(), comparison.UserID)
	if err != nil {
		log.Errorf("summary for comparison %d, list measurements: %s", comparison.ID, err)
		http.Error(w, "failed to generate summary", http.StatusInternalServerError)
		return
	}

	text, err := session.GenerateSummary(r.Context(), handler.summarizer, seriesByType)
	if err != nil {
		log.Errorf("summary for comparison %d: %s", comparison.ID, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	if err := handler.repo.UpdateSettings(r.Context(), comparison.ID, session.Settings); err != nil {
		log.Errorf("summary for comparison %d, cache summary: %s", comparison.ID, err)
		http.Error(w, "failed to generate summary", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSummaries.Inc()

	resp, err := json.Marshal(map[string]string{"summary": text})
	if err != nil {
		log.Errorf("marshal summary error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}

func (handler *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	comparison, ok := handler.getComparison(w, r)
	if !ok {
		return
	}

	session, err := handler.sessionFor(r.Context(), comparison)
	if err != nil {
		log.Errorf("export comparison %d, get photos: %s", comparison.ID, err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	stats, err := handler.computeStats(r.Context(), comparison, session)
	if err != nil {
		log.Errorf("export comparison %d, compute stats: %s", comparison.ID, err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	canvas := CanvasFor(session.Settings.AspectRatio)
	stack, err := session.ResolveLayerStack(canvas, stats)
	if err != nil {
		if errors.Is(err, ErrSelectionInvalid) {
			http.Error(w, "error, photo selection does not fit the layout", http.StatusBadRequest)
			return
		}
		log.Errorf("export comparison %d, resolve layer stack: %s", comparison.ID, err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	artifact, err := handler.exporter.Export(r.Context(), comparison.ID, *stack)
	if err != nil {
		log.Errorf("export comparison %d: %s", comparison.ID, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	resp, err := json.Marshal(artifact)
	if err != nil {
		log.Errorf("marshal export artifact error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, http.StatusCreated)
}

// HandleLayouts lists the layout catalog.
func (handler *Handler) HandleLayouts(w http.ResponseWriter, _ *http.Request) {
	type catalogEntry struct {
		ID          LayoutID    `json:"id"`
		DisplayName string      `json:"displayName"`
		MinPhotos   int         `json:"minPhotos"`
		MaxPhotos   int         `json:"maxPhotos"`
		Orientation Orientation `json:"orientation"`
	}

	var catalog []catalogEntry
	for _, l := range Layouts() {
		catalog = append(catalog, catalogEntry{
			ID:          l.ID,
			DisplayName: l.DisplayName,
			MinPhotos:   l.MinPhotos,
			MaxPhotos:   l.MaxPhotos,
			Orientation: l.Orientation,
		})
	}

	resp, err := json.Marshal(map[string]any{"layouts": catalog})
	if err != nil {
		log.Errorf("marshal layouts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, resp)
}

func (handler *Handler) getComparison(w http.ResponseWriter, r *http.Request) (*Comparison, bool) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id invalid", http.StatusBadRequest)
		return nil, false
	}

	comparison, err := handler.repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrComparisonNotFound) {
			http.Error(w, "comparison not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("get comparison %d: %s", id, err)
		http.Error(w, "failed to get comparison", http.StatusInternalServerError)
		return nil, false
	}

	return comparison, true
}

func (handler *Handler) sessionFor(ctx context.Context, comparison *Comparison) (*Session, error) {
	selection, err := handler.photos.GetAll(ctx, comparison.PhotoIDs)
	if err != nil {
		return nil, err
	}
	return NewSession(selection, comparison.Settings), nil
}

func (handler *Handler) computeStats(
	ctx context.Context,
	comparison *Comparison,
	session *Session,
) (map[StatCategory][]string, error) {
	seriesByType, err := handler.measurements.ListAll(ctx, comparison.UserID)
	if err != nil {
		return nil, err
	}

	var strengthReport *strength.Report
	for _, category := range session.Settings.EnabledCategories {
		if category == StatStrength {
			strengthReport, err = handler.strength.Report(ctx, comparison.UserID, handler.now())
			if err != nil {
				return nil, err
			}
			break
		}
	}

	return session.ComputeStats(seriesByType, strengthReport), nil
}

func (handler *Handler) writeComparison(
	w http.ResponseWriter,
	comparison *Comparison,
	resolution SlotResolution,
	statusCode int,
) {
	resp, err := json.Marshal(map[string]any{
		"comparison": comparison,
		"settings":   EncodeSettings(comparison.Settings),
		"isValid":    resolution.IsValid,
		"labels":     resolution.Labels,
		"truncated":  resolution.Truncated,
	})
	if err != nil {
		log.Errorf("marshal comparison error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, statusCode)
}

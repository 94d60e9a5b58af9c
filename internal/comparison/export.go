package comparison

import (
	"context"
	"time"

	"github.com/2beens/fitsnap/internal/photos"
	"github.com/2beens/fitsnap/internal/telemetry/metrics"
	"github.com/2beens/fitsnap/internal/telemetry/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// PhotoSlot is one rendered photo with its slot label.
type PhotoSlot struct {
	Photo photos.ProgressPhoto `json:"photo"`
	Label string               `json:"label"`
}

// OverlayLayer is one visible overlay with its resolved position and
// footprint.
type OverlayLayer struct {
	ID       OverlayID `json:"id"`
	Position Offset    `json:"position"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
}

// LayerStack is the complete render input handed to the capture
// collaborator: photo slots in order, overlays bottom to top.
type LayerStack struct {
	Slots       []PhotoSlot    `json:"slots"`
	Overlays    []OverlayLayer `json:"overlays"`
	AspectRatio AspectRatio    `json:"aspectRatio"`
	Canvas      Canvas         `json:"canvas"`
}

// Capturer turns a layer stack into a shareable image. Rasterization
// lives outside this service.
type Capturer interface {
	Capture(ctx context.Context, stack LayerStack) (imagePath string, err error)
}

// ExportArtifact records one produced share image.
type ExportArtifact struct {
	ID           string    `json:"id"`
	ComparisonID int       `json:"comparisonId"`
	ImagePath    string    `json:"imagePath"`
	CreatedAt    time.Time `json:"createdAt"`
}

type exportArtifactsRepo interface {
	AddArtifact(ctx context.Context, artifact ExportArtifact) error
}

type Exporter struct {
	capturer Capturer
	repo     exportArtifactsRepo
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewExporter(capturer Capturer, repo exportArtifactsRepo, metricsManager *metrics.Manager) *Exporter {
	return &Exporter{
		capturer: capturer,
		repo:     repo,
		metrics:  metricsManager,
		now:      time.Now,
	}
}

// Export captures the layer stack and records the produced artifact.
// A capture failure leaves no artifact behind.
func (e *Exporter) Export(ctx context.Context, comparisonID int, stack LayerStack) (_ *ExportArtifact, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "exporter.export")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("comparison.id", comparisonID))

	startedAt := e.now()
	imagePath, err := e.capturer.Capture(ctx, stack)
	if err != nil {
		return nil, err
	}
	e.metrics.HistExportDuration.Observe(e.now().Sub(startedAt).Seconds())

	artifact := ExportArtifact{
		ID:           uuid.NewString(),
		ComparisonID: comparisonID,
		ImagePath:    imagePath,
		CreatedAt:    e.now(),
	}
	if err := e.repo.AddArtifact(ctx, artifact); err != nil {
		return nil, err
	}

	e.metrics.CounterExports.Inc()
	return &artifact, nil
}

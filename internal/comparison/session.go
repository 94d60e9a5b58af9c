package comparison

import (
	"context"
	"errors"

	"github.com/2beens/fitsnap/internal/measurements"
	"github.com/2beens/fitsnap/internal/photos"
	"github.com/2beens/fitsnap/internal/strength"
	"github.com/2beens/fitsnap/internal/summary"
)

var (
	ErrUnknownLayout      = errors.New("unknown layout")
	ErrInvalidAspectRatio = errors.New("invalid aspect ratio")
	ErrInvalidAlignment   = errors.New("invalid date alignment")
	ErrSelectionInvalid   = errors.New("photo selection does not fit the layout")
)

type summaryGenerator interface {
	Summarize(ctx context.Context, req summary.Request) (string, error)
}

// Session is the explicit editing state of one comparison: the
// ordered photo selection plus its settings. All operations are
// synchronous and owned by a single logical thread; the only gated
// boundary is the AI summary call.
type Session struct {
	Photos     []photos.ProgressPhoto
	ViewFilter photos.ViewType
	Settings   Settings

	summaryInFlight bool
}

func NewSession(selection []photos.ProgressPhoto, settings Settings) *Session {
	session := &Session{
		Photos:   selection,
		Settings: settings,
	}
	if _, ok := LayoutByID(settings.Layout); !ok {
		session.Settings.Layout = DefaultLayoutID
	}
	return session
}

func (s *Session) Layout() Layout {
	layout, ok := LayoutByID(s.Settings.Layout)
	if !ok {
		layout, _ = LayoutByID(DefaultLayoutID)
	}
	return layout
}

// Resolve maps the current selection onto the active layout.
func (s *Session) Resolve() SlotResolution {
	return ResolveSlots(s.Layout(), s.Photos)
}

// SetLayout switches the active layout. A selection above the new
// maximum is truncated to the first N photos, and every explicit
// overlay position is discarded since the geometry changed.
func (s *Session) SetLayout(id LayoutID) (SlotResolution, error) {
	layout, ok := LayoutByID(id)
	if !ok {
		return SlotResolution{}, ErrUnknownLayout
	}
	if id == s.Settings.Layout {
		return s.Resolve(), nil
	}

	s.Settings.Layout = id
	resolution := ResolveSlots(layout, s.Photos)
	if resolution.Truncated {
		s.Photos = resolution.Photos
	}
	s.Settings.Positions.ResetAll()
	return resolution, nil
}

func (s *Session) SetAspectRatio(aspect AspectRatio) error {
	if !aspect.Valid() {
		return ErrInvalidAspectRatio
	}
	if aspect == s.Settings.AspectRatio {
		return nil
	}
	s.Settings.AspectRatio = aspect
	s.Settings.Positions.ResetAll()
	return nil
}

// SetDateAlignment moves the date chips' default anchor; only their
// explicit positions are discarded, the logo and stats bar stay put.
func (s *Session) SetDateAlignment(align Alignment) error {
	if !align.Valid() {
		return ErrInvalidAlignment
	}
	if align == s.Settings.DateAlignment {
		return nil
	}
	s.Settings.DateAlignment = align
	s.Settings.Positions.ResetDateChips()
	return nil
}

// Visibility and style changes never disturb placed overlays.

func (s *Session) SetShowStats(show bool)        { s.Settings.ShowStats = show }
func (s *Session) SetShowLogo(show bool)         { s.Settings.ShowLogo = show }
func (s *Session) SetShowDates(show bool)        { s.Settings.ShowDates = show }
func (s *Session) SetShowAISummary(show bool)    { s.Settings.ShowAISummary = show }
func (s *Session) SetShowPhotoWeights(show bool) { s.Settings.ShowPhotoWeights = show }

// DragOverlay places an overlay explicitly, clamped to stay fully
// inside the canvas. Returns the position actually stored.
func (s *Session) DragOverlay(id OverlayID, to Offset, canvas Canvas, statRows int) Offset {
	width, height := OverlayFootprint(id, statRows)
	if id.Kind == OverlayKindStats {
		width = canvas.Width
	}
	clamped := ClampToCanvas(canvas, to, width, height)
	s.Settings.Positions.Set(id, clamped)
	return clamped
}

// OverlayPosition resolves an overlay's render position: the explicit
// offset when placed, else the default computed from layout geometry.
func (s *Session) OverlayPosition(id OverlayID, canvas Canvas, statRows int) Offset {
	return s.Settings.Positions.Resolve(id, func() Offset {
		switch id.Kind {
		case OverlayKindLogo:
			return DefaultLogoPosition(canvas)
		case OverlayKindStats:
			return DefaultStatsBarPosition(canvas, statRows, s.Settings.ShowAISummary)
		default:
			return DefaultDateChipPosition(
				canvas, s.Layout(), id.Index, len(s.Photos), s.Settings.DateAlignment,
			)
		}
	})
}

// ComputeStats derives the statistics block for the current selection
// and enabled categories.
func (s *Session) ComputeStats(
	seriesByType map[measurements.Type][]measurements.Entry,
	strengthReport *strength.Report,
) map[StatCategory][]string {
	return ComputeStats(StatsInput{
		Photos:       s.Photos,
		ViewFilter:   s.ViewFilter,
		Categories:   s.Settings.EnabledCategories,
		SeriesByType: seriesByType,
		Strength:     strengthReport,
	})
}

// GenerateSummary requests an AI summary for the first/last photo
// pair. At most one request is in flight: re-invoking while one is
// running is a no-op returning the cached text. A failed request
// leaves the previously cached summary untouched.
func (s *Session) GenerateSummary(
	ctx context.Context,
	generator summaryGenerator,
	seriesByType map[measurements.Type][]measurements.Entry,
) (string, error) {
	if s.summaryInFlight {
		return s.Settings.AISummary, nil
	}
	if len(s.Photos) < 2 {
		return "", ErrSelectionInvalid
	}

	s.summaryInFlight = true
	defer func() {
		s.summaryInFlight = false
	}()

	first := s.Photos[0]
	last := s.Photos[len(s.Photos)-1]

	req := summary.Request{
		BeforeImagePath: first.ImagePath,
		AfterImagePath:  last.ImagePath,
		DaysBetween:     daySpan(first.TakenAt, last.TakenAt),
	}
	weightSeries := seriesByType[measurements.TypeWeight]
	firstWeight, firstOK := resolveWeight(first, weightSeries)
	lastWeight, lastOK := resolveWeight(last, weightSeries)
	if firstOK && lastOK {
		change := lastWeight - firstWeight
		req.WeightChangeKg = &change
	}

	text, err := generator.Summarize(ctx, req)
	if err != nil {
		return "", err
	}

	s.Settings.AISummary = text
	return text, nil
}

// ResolveLayerStack produces the final render input for the capture
// collaborator: photo slots in order plus every visible overlay with
// its resolved position.
func (s *Session) ResolveLayerStack(canvas Canvas, stats map[StatCategory][]string) (*LayerStack, error) {
	resolution := s.Resolve()
	if !resolution.IsValid {
		return nil, ErrSelectionInvalid
	}

	stack := &LayerStack{
		AspectRatio: s.Settings.AspectRatio,
		Canvas:      canvas,
	}
	for i, photo := range resolution.Photos {
		stack.Slots = append(stack.Slots, PhotoSlot{
			Photo: photo,
			Label: resolution.Labels[i],
		})
	}

	statRows := len(stats)
	if s.Settings.ShowLogo {
		stack.Overlays = append(stack.Overlays, s.overlayLayer(OverlayLogo, canvas, statRows))
	}
	if s.Settings.ShowStats && statRows > 0 {
		stack.Overlays = append(stack.Overlays, s.overlayLayer(OverlayStats, canvas, statRows))
	}
	if s.Settings.ShowDates {
		for i := range resolution.Photos {
			stack.Overlays = append(stack.Overlays, s.overlayLayer(OverlayDateChip(i), canvas, statRows))
		}
	}

	return stack, nil
}

func (s *Session) overlayLayer(id OverlayID, canvas Canvas, statRows int) OverlayLayer {
	width, height := OverlayFootprint(id, statRows)
	if id.Kind == OverlayKindStats {
		width = canvas.Width
	}
	return OverlayLayer{
		ID:       id,
		Position: s.OverlayPosition(id, canvas, statRows),
		Width:    width,
		Height:   height,
	}
}

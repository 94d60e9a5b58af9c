package comparison

import "fmt"

// Canvas geometry, in export points.
const (
	footerHeight = 72.0

	dateChipWidth  = 160.0
	dateChipHeight = 44.0

	logoWidth  = 96.0
	logoHeight = 40.0

	statsRowHeight    = 40.0
	statsBarPadding   = 16.0
	minStatsBarHeight = 96.0

	canvasEdgePadding = 16.0
)

type OverlayKind string

const (
	OverlayKindLogo     OverlayKind = "logo"
	OverlayKindStats    OverlayKind = "stats"
	OverlayKindDateChip OverlayKind = "date"
)

// OverlayID identifies one draggable decoration instance. Index is
// only meaningful for date chips, one per photo slot.
type OverlayID struct {
	Kind  OverlayKind
	Index int
}

var (
	OverlayLogo  = OverlayID{Kind: OverlayKindLogo}
	OverlayStats = OverlayID{Kind: OverlayKindStats}
)

func OverlayDateChip(slotIndex int) OverlayID {
	return OverlayID{Kind: OverlayKindDateChip, Index: slotIndex}
}

func (id OverlayID) String() string {
	if id.Kind == OverlayKindDateChip {
		return fmt.Sprintf("%s[%d]", id.Kind, id.Index)
	}
	return string(id.Kind)
}

// Offset is a top-left anchored position on the export canvas.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Canvas struct {
	Width  float64
	Height float64
}

// AspectRatio is the export canvas shape token.
type AspectRatio string

const (
	AspectSquare   AspectRatio = "square"
	AspectPortrait AspectRatio = "portrait"
	AspectStory    AspectRatio = "story"
	AspectOriginal AspectRatio = "original"
)

func (a AspectRatio) Valid() bool {
	switch a {
	case AspectSquare, AspectPortrait, AspectStory, AspectOriginal:
		return true
	default:
		return false
	}
}

// CanvasFor returns the export canvas size of an aspect ratio token,
// in points.
func CanvasFor(aspect AspectRatio) Canvas {
	switch aspect {
	case AspectPortrait:
		return Canvas{Width: 1080, Height: 1350}
	case AspectStory:
		return Canvas{Width: 1080, Height: 1920}
	case AspectOriginal:
		return Canvas{Width: 1080, Height: 1440}
	default:
		return Canvas{Width: 1080, Height: 1080}
	}
}

// Alignment is the horizontal date-label alignment preference.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight:
		return true
	default:
		return false
	}
}

// PositionSet holds the explicitly placed overlay offsets. An absent
// key is the sentinel: the overlay sits at its computed default.
// Dragging makes a position explicit; only the reset operations below
// ever discard one.
type PositionSet struct {
	explicit map[OverlayID]Offset
}

func NewPositionSet() PositionSet {
	return PositionSet{explicit: make(map[OverlayID]Offset)}
}

func (ps *PositionSet) Explicit(id OverlayID) (Offset, bool) {
	offset, ok := ps.explicit[id]
	return offset, ok
}

func (ps *PositionSet) Set(id OverlayID, offset Offset) {
	if ps.explicit == nil {
		ps.explicit = make(map[OverlayID]Offset)
	}
	ps.explicit[id] = offset
}

// Resolve returns the explicit offset if the overlay was placed, else
// the computed default.
func (ps *PositionSet) Resolve(id OverlayID, computeDefault func() Offset) Offset {
	if offset, ok := ps.explicit[id]; ok {
		return offset
	}
	return computeDefault()
}

// ResetAll drops every explicit position, reverting all overlays to
// their computed defaults.
func (ps *PositionSet) ResetAll() {
	ps.explicit = make(map[OverlayID]Offset)
}

// ResetDateChips drops only the date chip positions.
func (ps *PositionSet) ResetDateChips() {
	for id := range ps.explicit {
		if id.Kind == OverlayKindDateChip {
			delete(ps.explicit, id)
		}
	}
}

func (ps *PositionSet) Len() int {
	return len(ps.explicit)
}

// DateChips returns the explicitly placed date chip offsets keyed by
// slot index.
func (ps *PositionSet) DateChips() map[int]Offset {
	chips := make(map[int]Offset)
	for id, offset := range ps.explicit {
		if id.Kind == OverlayKindDateChip {
			chips[id.Index] = offset
		}
	}
	return chips
}

// equal compares two sets, treating nil and empty the same.
func (ps PositionSet) equal(other PositionSet) bool {
	if len(ps.explicit) != len(other.explicit) {
		return false
	}
	for id, offset := range ps.explicit {
		otherOffset, ok := other.explicit[id]
		if !ok || otherOffset != offset {
			return false
		}
	}
	return true
}

// OverlayFootprint is the drawn size of an overlay, used for clamping
// and by the export layer stack.
func OverlayFootprint(id OverlayID, statRows int) (width, height float64) {
	switch id.Kind {
	case OverlayKindLogo:
		return logoWidth, logoHeight
	case OverlayKindStats:
		return 0, statsBarHeight(statRows) // full canvas width
	default:
		return dateChipWidth, dateChipHeight
	}
}

func statsBarHeight(statRows int) float64 {
	height := float64(statRows)*statsRowHeight + 2*statsBarPadding
	if height < minStatsBarHeight {
		height = minStatsBarHeight
	}
	return height
}

// ClampToCanvas keeps an overlay fully inside the canvas, accounting
// for its own footprint.
func ClampToCanvas(canvas Canvas, offset Offset, width, height float64) Offset {
	maxX := canvas.Width - width
	maxY := canvas.Height - height
	if offset.X < 0 {
		offset.X = 0
	} else if offset.X > maxX {
		offset.X = maxX
	}
	if offset.Y < 0 {
		offset.Y = 0
	} else if offset.Y > maxY {
		offset.Y = maxY
	}
	return offset
}

// DefaultLogoPosition pins the logo to the top right corner.
func DefaultLogoPosition(canvas Canvas) Offset {
	return Offset{
		X: canvas.Width - logoWidth - canvasEdgePadding,
		Y: canvasEdgePadding,
	}
}

// DefaultStatsBarPosition anchors the stats bar above the footer and,
// when the AI summary strip is shown, above that too. The bar spans
// the full canvas width, so X is always 0.
func DefaultStatsBarPosition(canvas Canvas, statRows int, summaryVisible bool) Offset {
	bottom := canvas.Height - footerHeight
	if summaryVisible {
		bottom -= summaryStripHeight
	}
	return Offset{X: 0, Y: bottom - statsBarHeight(statRows)}
}

const summaryStripHeight = 56.0

// DefaultDateChipPosition places the chip of one photo slot according
// to the layout orientation and the alignment preference. Horizontal
// layouts align within the slot's segment; vertical stacks align
// across the full width per segment; freeform two-photo layouts treat
// the halves as segments.
func DefaultDateChipPosition(canvas Canvas, layout Layout, slotIndex, slotCount int, align Alignment) Offset {
	if slotCount < 1 {
		slotCount = 1
	}

	switch layout.Orientation {
	case OrientationVertical:
		segmentHeight := canvas.Height / float64(slotCount)
		y := float64(slotIndex+1)*segmentHeight - dateChipHeight - canvasEdgePadding
		return Offset{
			X: alignWithin(0, canvas.Width, align),
			Y: y,
		}
	case OrientationHorizontal:
		segmentWidth := canvas.Width / float64(slotCount)
		return Offset{
			X: alignWithin(float64(slotIndex)*segmentWidth, segmentWidth, align),
			Y: canvas.Height - footerHeight - dateChipHeight - canvasEdgePadding,
		}
	default:
		// freeform layouts have two photos: left and right half
		halfWidth := canvas.Width / 2
		return Offset{
			X: alignWithin(float64(slotIndex%2)*halfWidth, halfWidth, align),
			Y: canvas.Height - footerHeight - dateChipHeight - canvasEdgePadding,
		}
	}
}

func alignWithin(segmentStart, segmentWidth float64, align Alignment) float64 {
	switch align {
	case AlignLeft:
		return segmentStart + canvasEdgePadding
	case AlignRight:
		return segmentStart + segmentWidth - dateChipWidth - canvasEdgePadding
	default:
		return segmentStart + (segmentWidth-dateChipWidth)/2
	}
}

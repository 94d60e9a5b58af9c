package comparison

import "fmt"

// Orientation drives how a layout arranges its photo segments and
// where default overlay positions land.
type Orientation string

const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
	OrientationFreeform   Orientation = "freeform"
)

type LayoutID string

const (
	LayoutSideBySide    LayoutID = "side_by_side"
	LayoutSlider        LayoutID = "slider"
	LayoutDiagonalSplit LayoutID = "diagonal_split"
	LayoutPolaroidStack LayoutID = "polaroid_stack"
	LayoutTriptych      LayoutID = "triptych"
	LayoutVerticalStack LayoutID = "vertical_stack"
	LayoutGrid          LayoutID = "grid"
	LayoutTimeline      LayoutID = "timeline"
)

const DefaultLayoutID = LayoutSideBySide

// Layout is one catalog entry. Fixed layouts have MinPhotos equal to
// MaxPhotos; variable layouts accept any count in between.
type Layout struct {
	ID          LayoutID
	DisplayName string
	MinPhotos   int
	MaxPhotos   int
	Orientation Orientation

	labels func(n int) []string
}

func (l Layout) Fixed() bool {
	return l.MinPhotos == l.MaxPhotos
}

func (l Layout) Accepts(n int) bool {
	return n >= l.MinPhotos && n <= l.MaxPhotos
}

// Labels returns the per-slot labels for n photos. Slots beyond the
// catalog's label list fall back to an ordinal label.
func (l Layout) Labels(n int) []string {
	labels := l.labels(n)
	for len(labels) < n {
		labels = append(labels, ordinalLabel(len(labels)))
	}
	return labels[:n]
}

func ordinalLabel(i int) string {
	return fmt.Sprintf("Photo %d", i+1)
}

func beforeAfterLabels(n int) []string {
	if n < 2 {
		return nil
	}
	labels := make([]string, 0, n)
	labels = append(labels, "Before")
	for i := 1; i < n-1; i++ {
		labels = append(labels, fmt.Sprintf("Progress %d", i))
	}
	return append(labels, "After")
}

func ordinalLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = ordinalLabel(i)
	}
	return labels
}

var layoutCatalog = []Layout{
	{
		ID:          LayoutSideBySide,
		DisplayName: "Side by Side",
		MinPhotos:   2, MaxPhotos: 2,
		Orientation: OrientationHorizontal,
		labels:      func(int) []string { return []string{"Before", "After"} },
	},
	{
		ID:          LayoutSlider,
		DisplayName: "Slider",
		MinPhotos:   2, MaxPhotos: 2,
		Orientation: OrientationFreeform,
		labels:      func(int) []string { return []string{"Before", "After"} },
	},
	{
		ID:          LayoutDiagonalSplit,
		DisplayName: "Diagonal Split",
		MinPhotos:   2, MaxPhotos: 2,
		Orientation: OrientationFreeform,
		labels:      func(int) []string { return []string{"Before", "After"} },
	},
	{
		ID:          LayoutPolaroidStack,
		DisplayName: "Polaroid Stack",
		MinPhotos:   2, MaxPhotos: 2,
		Orientation: OrientationFreeform,
		labels:      func(int) []string { return []string{"Before", "After"} },
	},
	{
		ID:          LayoutTriptych,
		DisplayName: "Triptych",
		MinPhotos:   3, MaxPhotos: 3,
		Orientation: OrientationHorizontal,
		labels:      func(int) []string { return []string{"Start", "Midway", "Now"} },
	},
	{
		ID:          LayoutVerticalStack,
		DisplayName: "Vertical Stack",
		MinPhotos:   2, MaxPhotos: 4,
		Orientation: OrientationVertical,
		labels:      beforeAfterLabels,
	},
	{
		ID:          LayoutGrid,
		DisplayName: "Grid",
		MinPhotos:   2, MaxPhotos: 6,
		Orientation: OrientationFreeform,
		labels:      ordinalLabels,
	},
	{
		ID:          LayoutTimeline,
		DisplayName: "Timeline",
		MinPhotos:   2, MaxPhotos: 8,
		Orientation: OrientationHorizontal,
		labels:      beforeAfterLabels,
	},
}

// Layouts returns the catalog in its stable display order.
func Layouts() []Layout {
	catalog := make([]Layout, len(layoutCatalog))
	copy(catalog, layoutCatalog)
	return catalog
}

func LayoutByID(id LayoutID) (Layout, bool) {
	for _, l := range layoutCatalog {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}

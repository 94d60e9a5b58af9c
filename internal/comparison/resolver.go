package comparison

import "github.com/2beens/fitsnap/internal/photos"

// SlotResolution is the outcome of mapping an ordered photo selection
// onto a layout. Photos carries the (possibly truncated) selection;
// the input slice is never mutated.
type SlotResolution struct {
	IsValid bool
	Labels  []string
	Photos  []photos.ProgressPhoto
	// Truncated is set when the selection was cut down to the
	// layout's maximum; the caller must reset overlay positions.
	Truncated bool
}

// ResolveSlots validates the selection against the layout's slot
// cardinality and assigns per-slot labels. A selection larger than the
// layout's maximum is truncated to the first MaxPhotos in the existing
// order; a selection below the minimum is reported invalid as is.
func ResolveSlots(layout Layout, selection []photos.ProgressPhoto) SlotResolution {
	resolved := make([]photos.ProgressPhoto, len(selection))
	copy(resolved, selection)

	truncated := false
	if len(resolved) > layout.MaxPhotos {
		resolved = resolved[:layout.MaxPhotos]
		truncated = true
	}

	if len(resolved) < layout.MinPhotos {
		return SlotResolution{
			IsValid: false,
			Photos:  resolved,
		}
	}

	return SlotResolution{
		IsValid:   true,
		Labels:    layout.Labels(len(resolved)),
		Photos:    resolved,
		Truncated: truncated,
	}
}

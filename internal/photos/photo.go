package photos

import "time"

// ViewType is the camera angle of a progress photo.
type ViewType string

const (
	ViewTypeFront     ViewType = "front"
	ViewTypeSideLeft  ViewType = "side_left"
	ViewTypeSideRight ViewType = "side_right"
	ViewTypeBack      ViewType = "back"
)

func (vt ViewType) Valid() bool {
	switch vt {
	case ViewTypeFront, ViewTypeSideLeft, ViewTypeSideRight, ViewTypeBack:
		return true
	default:
		return false
	}
}

func (vt ViewType) DisplayName() string {
	switch vt {
	case ViewTypeFront:
		return "Front"
	case ViewTypeSideLeft:
		return "Left Side"
	case ViewTypeSideRight:
		return "Right Side"
	case ViewTypeBack:
		return "Back"
	default:
		return string(vt)
	}
}

// ProgressPhoto is immutable once stored; created by the capture flow,
// read-only for the comparison engine.
type ProgressPhoto struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	ViewType  ViewType  `json:"viewType"`
	TakenAt   time.Time `json:"takenAt"`
	ImagePath string    `json:"imagePath"`
	// BodyWeightKg is the weight reported at shoot time, if any
	BodyWeightKg *float64  `json:"bodyWeightKg,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

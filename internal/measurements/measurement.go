package measurements

import "time"

// Type is the kind of body measurement an entry records.
type Type string

const (
	TypeWeight      Type = "weight"
	TypeChest       Type = "chest"
	TypeWaist       Type = "waist"
	TypeHips        Type = "hips"
	TypeBicepsLeft  Type = "biceps_left"
	TypeBicepsRight Type = "biceps_right"
	TypeThighLeft   Type = "thigh_left"
	TypeThighRight  Type = "thigh_right"
	TypeNeck        Type = "neck"
	TypeShoulders   Type = "shoulders"
)

func (t Type) Valid() bool {
	switch t {
	case TypeWeight, TypeChest, TypeWaist, TypeHips,
		TypeBicepsLeft, TypeBicepsRight, TypeThighLeft, TypeThighRight,
		TypeNeck, TypeShoulders:
		return true
	default:
		return false
	}
}

// ShortName is the compact label used in tight display contexts,
// with left/right qualifiers shortened to a single letter.
func (t Type) ShortName() string {
	switch t {
	case TypeWeight:
		return "Weight"
	case TypeChest:
		return "Chest"
	case TypeWaist:
		return "Waist"
	case TypeHips:
		return "Hips"
	case TypeBicepsLeft:
		return "Biceps L"
	case TypeBicepsRight:
		return "Biceps R"
	case TypeThighLeft:
		return "Thigh L"
	case TypeThighRight:
		return "Thigh R"
	case TypeNeck:
		return "Neck"
	case TypeShoulders:
		return "Shoulders"
	default:
		return string(t)
	}
}

// Entry is a single point in a per-user, per-type measurement time series.
type Entry struct {
	ID         int       `json:"id"`
	UserID     int       `json:"userId"`
	Type       Type      `json:"type"`
	Value      float64   `json:"value"`
	RecordedAt time.Time `json:"recordedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

package comparison

// StatCategory is one statistics block shown on the composite.
type StatCategory string

const (
	StatDuration StatCategory = "duration"
	StatWeight   StatCategory = "weight"
	StatBody     StatCategory = "body"
	StatStrength StatCategory = "strength"
)

func (c StatCategory) Valid() bool {
	switch c {
	case StatDuration, StatWeight, StatBody, StatStrength:
		return true
	default:
		return false
	}
}

func DefaultStatCategories() []StatCategory {
	return []StatCategory{StatDuration, StatWeight}
}

type PhotoShape string

const (
	ShapeRect     PhotoShape = "rect"
	ShapeRounded  PhotoShape = "rounded"
	ShapeSquircle PhotoShape = "squircle"
	ShapeCircle   PhotoShape = "circle"
)

func (s PhotoShape) Valid() bool {
	switch s {
	case ShapeRect, ShapeRounded, ShapeSquircle, ShapeCircle:
		return true
	default:
		return false
	}
}

// Settings is the full persisted configuration of one comparison.
// Created on first customization, mutated by the editing session,
// persisted through the codec.
type Settings struct {
	Layout            LayoutID
	EnabledCategories []StatCategory

	ShowStats        bool
	ShowLogo         bool
	ShowDates        bool
	ShowAISummary    bool
	ShowPhotoWeights bool

	DateAlignment Alignment

	PhotoShape     PhotoShape
	SquircleRadius int
	BorderEnabled  bool
	BorderColor    string
	BorderWidth    int
	PhotoSpacing   int

	AspectRatio AspectRatio
	Background  string

	// AISummary caches the last generated summary text
	AISummary string

	Positions PositionSet
}

const (
	defaultBorderColor    = "#FFFFFF"
	defaultBorderWidth    = 2
	defaultSquircleRadius = 24
	defaultPhotoSpacing   = 4
	defaultBackground     = "color:#101418"
)

func DefaultSettings() Settings {
	return Settings{
		Layout:            DefaultLayoutID,
		EnabledCategories: DefaultStatCategories(),
		ShowStats:         true,
		ShowLogo:          true,
		ShowDates:         true,
		ShowAISummary:     false,
		ShowPhotoWeights:  false,
		DateAlignment:     AlignCenter,
		PhotoShape:        ShapeRounded,
		SquircleRadius:    defaultSquircleRadius,
		BorderEnabled:     false,
		BorderColor:       defaultBorderColor,
		BorderWidth:       defaultBorderWidth,
		PhotoSpacing:      defaultPhotoSpacing,
		AspectRatio:       AspectSquare,
		Background:        defaultBackground,
		Positions:         NewPositionSet(),
	}
}

// Equal compares two settings, including the explicit overlay
// positions (nil and empty position sets count as equal).
func (s Settings) Equal(other Settings) bool {
	if len(s.EnabledCategories) != len(other.EnabledCategories) {
		return false
	}
	for i, c := range s.EnabledCategories {
		if other.EnabledCategories[i] != c {
			return false
		}
	}
	if !s.Positions.equal(other.Positions) {
		return false
	}

	return s.Layout == other.Layout &&
		s.ShowStats == other.ShowStats &&
		s.ShowLogo == other.ShowLogo &&
		s.ShowDates == other.ShowDates &&
		s.ShowAISummary == other.ShowAISummary &&
		s.ShowPhotoWeights == other.ShowPhotoWeights &&
		s.DateAlignment == other.DateAlignment &&
		s.PhotoShape == other.PhotoShape &&
		s.SquircleRadius == other.SquircleRadius &&
		s.BorderEnabled == other.BorderEnabled &&
		s.BorderColor == other.BorderColor &&
		s.BorderWidth == other.BorderWidth &&
		s.PhotoSpacing == other.PhotoSpacing &&
		s.AspectRatio == other.AspectRatio &&
		s.Background == other.Background &&
		s.AISummary == other.AISummary
}

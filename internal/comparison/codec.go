package comparison

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// The persisted settings document is a flat JSON object with stable
// string keys. Enumerated fields are stored by token, never by
// ordinal, so catalog reordering cannot corrupt old documents. Decode
// applies field-level defaults: missing keys, unknown enum tokens and
// an empty category list all normalize to defaults instead of failing.

// EncodeSettings serializes settings into the flat document. Overlay
// positions are written only when explicitly placed; an absent key is
// the sentinel.
func EncodeSettings(s Settings) map[string]any {
	categories := make([]string, 0, len(s.EnabledCategories))
	for _, c := range s.EnabledCategories {
		categories = append(categories, string(c))
	}

	doc := map[string]any{
		"layout":                  string(s.Layout),
		"enabled_stat_categories": categories,
		"show_stats":              s.ShowStats,
		"show_logo":               s.ShowLogo,
		"show_dates":              s.ShowDates,
		"show_ai_summary":         s.ShowAISummary,
		"show_photo_weights":      s.ShowPhotoWeights,
		"date_position":           string(s.DateAlignment),
		"photo_shape":             string(s.PhotoShape),
		"squircle_radius":         s.SquircleRadius,
		"photo_border_enabled":    s.BorderEnabled,
		"photo_border_color":      s.BorderColor,
		"photo_border_width":      s.BorderWidth,
		"photo_spacing":           s.PhotoSpacing,
		"export_aspect_ratio":     string(s.AspectRatio),
		"background_color":        s.Background,
	}

	if s.AISummary != "" {
		doc["ai_summary"] = s.AISummary
	}

	if offset, ok := s.Positions.Explicit(OverlayLogo); ok {
		doc["logo_dx"] = offset.X
		doc["logo_dy"] = offset.Y
	}
	if offset, ok := s.Positions.Explicit(OverlayStats); ok {
		doc["stats_position"] = []float64{offset.X, offset.Y}
	}
	if chips := s.Positions.DateChips(); len(chips) > 0 {
		datePositions := make(map[string][]float64, len(chips))
		for index, offset := range chips {
			datePositions[strconv.Itoa(index)] = []float64{offset.X, offset.Y}
		}
		doc["date_positions"] = datePositions
	}

	return doc
}

// DecodeSettings rebuilds settings from a document. Unknown keys are
// ignored; missing or unusable values fall back to defaults.
func DecodeSettings(doc map[string]any) Settings {
	s := DefaultSettings()
	if doc == nil {
		return s
	}

	if layoutID := LayoutID(docString(doc, "layout", string(DefaultLayoutID))); layoutExists(layoutID) {
		s.Layout = layoutID
	}

	if categories := docStringList(doc, "enabled_stat_categories"); len(categories) > 0 {
		valid := make([]StatCategory, 0, len(categories))
		for _, c := range categories {
			if category := StatCategory(c); category.Valid() {
				valid = append(valid, category)
			}
		}
		if len(valid) > 0 {
			s.EnabledCategories = valid
		}
	}

	s.ShowStats = docBool(doc, "show_stats", s.ShowStats)
	s.ShowLogo = docBool(doc, "show_logo", s.ShowLogo)
	s.ShowDates = docBool(doc, "show_dates", s.ShowDates)
	s.ShowAISummary = docBool(doc, "show_ai_summary", s.ShowAISummary)
	s.ShowPhotoWeights = docBool(doc, "show_photo_weights", s.ShowPhotoWeights)

	if align := Alignment(docString(doc, "date_position", string(s.DateAlignment))); align.Valid() {
		s.DateAlignment = align
	}
	if shape := PhotoShape(docString(doc, "photo_shape", string(s.PhotoShape))); shape.Valid() {
		s.PhotoShape = shape
	}
	s.SquircleRadius = docInt(doc, "squircle_radius", s.SquircleRadius)
	s.BorderEnabled = docBool(doc, "photo_border_enabled", s.BorderEnabled)
	s.BorderColor = docString(doc, "photo_border_color", s.BorderColor)
	s.BorderWidth = docInt(doc, "photo_border_width", s.BorderWidth)
	s.PhotoSpacing = docInt(doc, "photo_spacing", s.PhotoSpacing)
	if aspect := AspectRatio(docString(doc, "export_aspect_ratio", string(s.AspectRatio))); aspect.Valid() {
		s.AspectRatio = aspect
	}
	s.Background = docString(doc, "background_color", s.Background)
	s.AISummary = docString(doc, "ai_summary", "")

	s.Positions = NewPositionSet()
	logoX, okX := docFloat(doc, "logo_dx")
	logoY, okY := docFloat(doc, "logo_dy")
	if okX && okY {
		s.Positions.Set(OverlayLogo, Offset{X: logoX, Y: logoY})
	}
	if offset, ok := asPair(doc["stats_position"]); ok {
		s.Positions.Set(OverlayStats, offset)
	}
	// the date chip map arrives as map[string][]float64 straight from
	// EncodeSettings and as map[string]any after a JSON detour
	decodeDateChip := func(indexStr string, v any) {
		index, err := strconv.Atoi(indexStr)
		if err != nil || index < 0 {
			return
		}
		if offset, ok := asPair(v); ok {
			s.Positions.Set(OverlayDateChip(index), offset)
		}
	}
	switch datePositions := doc["date_positions"].(type) {
	case map[string]any:
		for indexStr, v := range datePositions {
			decodeDateChip(indexStr, v)
		}
	case map[string][]float64:
		for indexStr, pair := range datePositions {
			decodeDateChip(indexStr, pair)
		}
	}

	return s
}

// EncodeSettingsJSON is the jsonb form stored by the repo.
func EncodeSettingsJSON(s Settings) ([]byte, error) {
	docJson, err := json.Marshal(EncodeSettings(s))
	if err != nil {
		return nil, fmt.Errorf("marshal settings document: %w", err)
	}
	return docJson, nil
}

func DecodeSettingsJSON(docJson []byte) (Settings, error) {
	if len(docJson) == 0 {
		return DefaultSettings(), nil
	}
	var doc map[string]any
	if err := json.Unmarshal(docJson, &doc); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings document: %w", err)
	}
	return DecodeSettings(doc), nil
}

func layoutExists(id LayoutID) bool {
	_, ok := LayoutByID(id)
	return ok
}

func docString(doc map[string]any, key, fallback string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return fallback
}

func docBool(doc map[string]any, key string, fallback bool) bool {
	if v, ok := doc[key].(bool); ok {
		return v
	}
	return fallback
}

func docInt(doc map[string]any, key string, fallback int) int {
	if v, ok := docFloat(doc, key); ok {
		return int(v)
	}
	return fallback
}

func docFloat(doc map[string]any, key string) (float64, bool) {
	switch v := doc[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func docStringList(doc map[string]any, key string) []string {
	switch v := doc[key].(type) {
	case []string:
		return v
	case []any:
		list := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
		return list
	default:
		return nil
	}
}

func asPair(v any) (Offset, bool) {
	switch pair := v.(type) {
	case []float64:
		if len(pair) == 2 {
			return Offset{X: pair[0], Y: pair[1]}, true
		}
	case []any:
		if len(pair) != 2 {
			return Offset{}, false
		}
		x, okX := pair[0].(float64)
		y, okY := pair[1].(float64)
		if okX && okY {
			return Offset{X: x, Y: y}, true
		}
	}
	return Offset{}, false
}

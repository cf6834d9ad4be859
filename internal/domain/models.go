package domain

import (
	"time"
)

// Submission is a single fan-uploaded photo attached to an event.
// PlayCount tracks how many display cycles have included it.
type Submission struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	OriginalName string    `json:"original_name"`
	StoragePath  string    `json:"storage_path"`
	ContentType  string    `json:"content_type"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	PlayCount    int       `json:"play_count"`
	Hidden       bool      `json:"hidden"`
	CreatedAt    time.Time `json:"created_at"`
}

// ShapeCategory is the display-shape bucket derived from pixel aspect ratio.
type ShapeCategory string

const (
	CategoryLandscape      ShapeCategory = "landscape"
	CategorySquare         ShapeCategory = "square"
	CategoryPortrait       ShapeCategory = "portrait"
	CategoryUnclassifiable ShapeCategory = "unclassifiable"
)

// UnitKind distinguishes a single-image slide from a mosaic slide.
type UnitKind string

const (
	UnitSingle UnitKind = "single"
	UnitMosaic UnitKind = "mosaic"
)

// DisplayUnit is one step of the rendered rotation: either one submission,
// or a fixed-size group of submissions sharing a shape category.
// Layout is empty for singles and a hint like "3-up" or "6-up" for mosaics.
type DisplayUnit struct {
	Kind        UnitKind      `json:"kind"`
	Category    ShapeCategory `json:"category"`
	Layout      string        `json:"layout,omitempty"`
	Submissions []Submission  `json:"submissions"`
}

// Playlist is an ordered display sequence. The order is significant and
// must not be re-sorted downstream.
type Playlist []DisplayUnit

package gallery

import "errors"

var (
	// ErrInvalidDimensions is returned by [Item.Validate] when width or
	// height is not positive. Aspect ratio is undefined for such items.
	ErrInvalidDimensions = errors.New("item width and height must be positive")

	// ErrInvalidRating is returned by [Item.Validate] when the rating is
	// outside the 0-5 range.
	ErrInvalidRating = errors.New("item rating must be between 0 and 5")
)

// Orientation classifies an item by its aspect ratio.
// It is always derived, never stored.
type Orientation int

const (
	// Vertical covers portrait and square items (aspect ratio <= 1.0).
	Vertical Orientation = iota
	// Horizontal covers landscape items (aspect ratio > 1.0).
	Horizontal
)

// String returns "vertical" or "horizontal".
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Item is a single piece of visual content to be placed into a row.
//
// The zero value is not usable - Width and Height must be positive and
// Rating must be in [0, 5] before handing the item to the layout engine.
type Item struct {
	ID     string `toml:"id" json:"id"`         // Unique identifier (assigned by the source if missing)
	File   string `toml:"file" json:"file"`     // Original file name, used only for labels
	Width  int    `toml:"width" json:"width"`   // Pixel width of the source image
	Height int    `toml:"height" json:"height"` // Pixel height of the source image
	Rating int    `toml:"rating" json:"rating"` // Editorial priority, 0 (filler) to 5 (showpiece)
}

// AspectRatio returns width divided by height.
func (i Item) AspectRatio() float64 {
	return float64(i.Width) / float64(i.Height)
}

// Orientation derives the item's orientation from its aspect ratio.
// Square items count as vertical.
func (i Item) Orientation() Orientation {
	if i.AspectRatio() > 1.0 {
		return Horizontal
	}
	return Vertical
}

// Validate checks the item invariants: positive dimensions and a rating
// in [0, 5].
func (i Item) Validate() error {
	if i.Width <= 0 || i.Height <= 0 {
		return ErrInvalidDimensions
	}
	if i.Rating < 0 || i.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

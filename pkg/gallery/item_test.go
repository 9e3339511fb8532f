package gallery

import (
	"errors"
	"testing"
)

func TestItemOrientation(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          Orientation
	}{
		{name: "landscape", width: 1600, height: 900, want: Horizontal},
		{name: "portrait", width: 900, height: 1600, want: Vertical},
		{name: "square counts as vertical", width: 1000, height: 1000, want: Vertical},
		{name: "barely wide", width: 1001, height: 1000, want: Horizontal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := Item{ID: "a", Width: tt.width, Height: tt.height}
			if got := it.Orientation(); got != tt.want {
				t.Errorf("Orientation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestItemAspectRatio(t *testing.T) {
	it := Item{Width: 300, Height: 200}
	if got := it.AspectRatio(); got != 1.5 {
		t.Errorf("AspectRatio() = %v, want 1.5", got)
	}
}

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr error
	}{
		{name: "valid", item: Item{Width: 100, Height: 100, Rating: 3}},
		{name: "zero width", item: Item{Width: 0, Height: 100}, wantErr: ErrInvalidDimensions},
		{name: "negative height", item: Item{Width: 100, Height: -1}, wantErr: ErrInvalidDimensions},
		{name: "rating too high", item: Item{Width: 100, Height: 100, Rating: 6}, wantErr: ErrInvalidRating},
		{name: "negative rating", item: Item{Width: 100, Height: 100, Rating: -1}, wantErr: ErrInvalidRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOrientationString(t *testing.T) {
	if Horizontal.String() != "horizontal" || Vertical.String() != "vertical" {
		t.Errorf("unexpected Orientation strings: %q, %q", Horizontal, Vertical)
	}
}

package app

import "testing"

func TestGetLayoutMode(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{0, LayoutNarrow},
		{39, LayoutNarrow},
		{40, LayoutMedium},
		{79, LayoutMedium},
		{80, LayoutWide},
		{200, LayoutWide},
	}
	for _, tt := range tests {
		if got := GetLayoutMode(tt.width); got != tt.want {
			t.Errorf("GetLayoutMode(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{24, 22},
		{2, 0},
		{1, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := ContentHeight(tt.total); got != tt.want {
			t.Errorf("ContentHeight(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

package board

import "testing"

func TestDropIndex(t *testing.T) {
	// three cards, each 2 rows tall, starting at row 0
	spans := []Span{{Top: 0, Height: 2}, {Top: 2, Height: 2}, {Top: 4, Height: 2}}

	tests := []struct {
		name    string
		pointer float64
		want    int
	}{
		{"above everything", -1, 0},
		{"upper half of first", 0.5, 0},
		{"lower half of first", 1.5, 1},
		{"on a midpoint goes after", 3, 2},
		{"below everything", 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DropIndex(tt.pointer, spans); got != tt.want {
				t.Errorf("DropIndex(%v) = %d, want %d", tt.pointer, got, tt.want)
			}
		})
	}

	if got := DropIndex(5, nil); got != 0 {
		t.Errorf("DropIndex on empty column = %d, want 0", got)
	}
}

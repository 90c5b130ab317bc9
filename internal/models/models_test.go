package models

import (
	"testing"

	"github.com/thenoetrevino/todoboard/internal/types"
)

func TestOrderOrDefault(t *testing.T) {
	tests := []struct {
		name  string
		order *int
		want  int
	}{
		{"missing order sorts last", nil, MissingOrder},
		{"zero is kept", IntPtr(0), 0},
		{"explicit value", IntPtr(7), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrderOrDefault(tt.order); got != tt.want {
				t.Errorf("OrderOrDefault() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestColumn_FindCard(t *testing.T) {
	col := &Column{
		ID: "c1",
		Cards: []*Card{
			{ID: "a", Text: "first", Order: 0},
			{ID: "b", Text: "second", Order: 1},
		},
	}

	card, idx := col.FindCard("b")
	if card == nil || idx != 1 {
		t.Fatalf("FindCard(b) = %v, %d; want card at index 1", card, idx)
	}

	card, idx = col.FindCard(types.CardID("missing"))
	if card != nil || idx != -1 {
		t.Errorf("FindCard(missing) = %v, %d; want nil, -1", card, idx)
	}

	var nilCol *Column
	if nilCol.CardCount() != 0 {
		t.Error("CardCount on nil column should be 0")
	}
}

func TestPatches_IsEmpty(t *testing.T) {
	if !(ColumnPatch{}).IsEmpty() {
		t.Error("zero ColumnPatch should be empty")
	}
	if (ColumnPatch{Collapsed: BoolPtr(false)}).IsEmpty() {
		t.Error("ColumnPatch with Collapsed set should not be empty")
	}
	if !(CardPatch{}).IsEmpty() {
		t.Error("zero CardPatch should be empty")
	}
	if (CardPatch{Order: IntPtr(0)}).IsEmpty() {
		t.Error("CardPatch with Order set should not be empty")
	}
}

func TestDefaultColumns(t *testing.T) {
	if len(DefaultColumns) != 2 {
		t.Fatalf("expected 2 default columns, got %d", len(DefaultColumns))
	}
	if DefaultColumns[0].Name != "doing" || DefaultColumns[0].Order != 0 {
		t.Errorf("first default column = %+v, want doing/0", DefaultColumns[0])
	}
	if DefaultColumns[1].Name != "done today" || DefaultColumns[1].Order != 1 {
		t.Errorf("second default column = %+v, want done today/1", DefaultColumns[1])
	}
}

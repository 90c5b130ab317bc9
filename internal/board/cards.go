package board

import (
	"context"
	"strings"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// AddCard appends a card to the end of a column. A missing column ID or
// blank text is ignored.
func (r *Reconciler) AddCard(ctx context.Context, columnID types.ColumnID, text string) (types.CardID, error) {
	text = strings.TrimSpace(text)
	if columnID.IsZero() || text == "" {
		r.logger.Debug("add card ignored", "column_id", columnID, "has_text", text != "")
		return "", nil
	}

	col := r.snapshotColumn(columnID)
	if col == nil {
		return "", r.inconsistent("add card", ErrColumnNotFound, "column_id", columnID)
	}

	order := col.CardCount()
	id, err := r.store.CreateCard(ctx, columnID, models.NewCard{Text: text, Order: order})
	if err != nil {
		return "", r.persistFailure("add card", err, "column_id", columnID)
	}

	r.logger.Info("card added", "column_id", columnID, "card_id", id, "order", order)
	r.afterWrite(ctx)
	return id, nil
}

// UpdateCard replaces a card's text and rewrites its current order. Blank
// text is ignored. Presentations leave their edit mode whatever the result.
func (r *Reconciler) UpdateCard(ctx context.Context, columnID types.ColumnID, cardID types.CardID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	col := r.snapshotColumn(columnID)
	if col == nil {
		return r.inconsistent("update card", ErrColumnNotFound, "column_id", columnID)
	}
	card, _ := col.FindCard(cardID)
	if card == nil {
		return r.inconsistent("update card", ErrCardNotFound, "column_id", columnID, "card_id", cardID)
	}

	order := card.Order
	if err := r.store.UpdateCard(ctx, columnID, cardID, models.CardPatch{Text: &text, Order: &order}); err != nil {
		return r.persistFailure("update card", err, "column_id", columnID, "card_id", cardID)
	}

	r.afterWrite(ctx)
	return nil
}

// DeleteCard removes a single card. Callers are expected to have confirmed
// the intent with the user.
func (r *Reconciler) DeleteCard(ctx context.Context, columnID types.ColumnID, cardID types.CardID) error {
	if err := r.store.DeleteCard(ctx, columnID, cardID); err != nil {
		return r.persistFailure("delete card", err, "column_id", columnID, "card_id", cardID)
	}

	r.afterWrite(ctx)
	return nil
}

package board

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// MoveCardRequest describes a card drop
type MoveCardRequest struct {
	From   types.ColumnID
	To     types.ColumnID
	CardID types.CardID
	// TargetIndex is the drop position. Within one column it selects the new
	// position; across columns it is ignored and the card is appended.
	TargetIndex *int
}

// ReorderCard moves a card to targetIndex within its column and renumbers
// every card of the column to its new position. Unknown cards and drops on
// the current position are no-ops. targetIndex is clamped to the column.
func (r *Reconciler) ReorderCard(ctx context.Context, columnID types.ColumnID, cardID types.CardID, targetIndex int) error {
	col := r.snapshotColumn(columnID)
	if col == nil {
		return r.inconsistent("reorder card", ErrColumnNotFound, "column_id", columnID)
	}

	cards := col.Cards
	_, current := col.FindCard(cardID)
	if current == -1 {
		return nil
	}
	targetIndex = clamp(targetIndex, 0, len(cards)-1)
	if current == targetIndex {
		return nil
	}

	moved := cards[current]
	cards = slices.Delete(cards, current, current+1)
	cards = slices.Insert(cards, targetIndex, moved)

	err := r.renumber(ctx, len(cards), func(ctx context.Context, i int) error {
		order := i
		return r.store.UpdateCard(ctx, columnID, cards[i].ID, models.CardPatch{Order: &order})
	})
	if err != nil {
		return r.persistFailure("reorder cards", err, "column_id", columnID, "card_id", cardID)
	}

	r.logger.Debug("card reordered", "column_id", columnID, "card_id", cardID, "from", current, "to", targetIndex)
	r.afterWrite(ctx)
	return nil
}

// MoveCard realizes a card drop. Drops inside the source column with a target
// index are reorders. Anything else creates the card at the end of the
// destination and then deletes the original, so the card gets a new ID. If
// the create fails the original is kept; if the delete fails the card exists
// in both columns and ErrCardDuplicated is returned.
func (r *Reconciler) MoveCard(ctx context.Context, req MoveCardRequest) (types.CardID, error) {
	from := r.snapshotColumn(req.From)
	if from == nil {
		return "", r.inconsistent("move card", ErrColumnNotFound, "column_id", req.From)
	}
	card, _ := from.FindCard(req.CardID)
	if card == nil {
		return "", r.inconsistent("move card", ErrCardNotFound, "column_id", req.From, "card_id", req.CardID)
	}
	if card.Text == "" {
		return "", r.inconsistent("move card", ErrInvalidCard, "column_id", req.From, "card_id", req.CardID)
	}

	if req.From == req.To && req.TargetIndex != nil {
		return req.CardID, r.ReorderCard(ctx, req.From, req.CardID, *req.TargetIndex)
	}

	to := r.snapshotColumn(req.To)
	if to == nil {
		return "", r.inconsistent("move card", ErrColumnNotFound, "column_id", req.To)
	}

	order := to.CardCount()
	newID, err := r.store.CreateCard(ctx, req.To, models.NewCard{Text: card.Text, Order: order})
	if err != nil {
		return "", r.persistFailure("move card", err, "from", req.From, "to", req.To, "card_id", req.CardID)
	}

	if err := r.store.DeleteCard(ctx, req.From, req.CardID); err != nil {
		r.logger.Error("move card left a duplicate",
			"from", req.From,
			"to", req.To,
			"card_id", req.CardID,
			"new_card_id", newID,
			"error", err)
		r.alert(fmt.Sprintf("move card failed: %v (the card now appears in both columns)", err))
		r.afterWrite(ctx)
		return newID, fmt.Errorf("move card: %w: %w", ErrCardDuplicated, err)
	}

	r.logger.Info("card moved", "from", req.From, "to", req.To, "card_id", req.CardID, "new_card_id", newID, "order", order)
	r.afterWrite(ctx)
	return newID, nil
}

// ReorderColumns moves the dragged column to the target column's position
// and renumbers every column.
func (r *Reconciler) ReorderColumns(ctx context.Context, draggedID, targetID types.ColumnID) error {
	if draggedID == targetID {
		return nil
	}

	columns := r.View()
	draggedIndex := slices.IndexFunc(columns, func(c *models.Column) bool { return c.ID == draggedID })
	targetIndex := slices.IndexFunc(columns, func(c *models.Column) bool { return c.ID == targetID })
	if draggedIndex == -1 || targetIndex == -1 {
		return r.inconsistent("reorder columns", ErrColumnNotFound, "dragged", draggedID, "target", targetID)
	}

	dragged := columns[draggedIndex]
	columns = slices.Delete(columns, draggedIndex, draggedIndex+1)
	columns = slices.Insert(columns, targetIndex, dragged)

	err := r.renumber(ctx, len(columns), func(ctx context.Context, i int) error {
		order := i
		return r.store.UpdateColumn(ctx, columns[i].ID, models.ColumnPatch{Order: &order})
	})
	if err != nil {
		return r.persistFailure("reorder columns", err, "dragged", draggedID, "target", targetID)
	}

	r.afterWrite(ctx)
	return nil
}

// renumber issues n order writes concurrently and returns the first error.
// A failed write does not cancel the others.
func (r *Reconciler) renumber(ctx context.Context, n int, write func(ctx context.Context, i int) error) error {
	var g errgroup.Group
	g.SetLimit(r.writeLimit)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			return write(ctx, i)
		})
	}
	return g.Wait()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

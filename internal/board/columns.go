package board

import (
	"context"
	"strings"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// CreateColumn appends a new, expanded, empty column. Blank names are ignored.
func (r *Reconciler) CreateColumn(ctx context.Context, name string) (types.ColumnID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}

	r.mu.RLock()
	order := len(r.columns)
	r.mu.RUnlock()

	id, err := r.store.CreateColumn(ctx, models.NewColumn{
		Name:      name,
		Collapsed: false,
		Order:     order,
	})
	if err != nil {
		return "", r.persistFailure("create column", err, "name", name)
	}

	r.logger.Info("column created", "column_id", id, "name", name, "order", order)
	r.afterWrite(ctx)
	return id, nil
}

// RenameColumn writes the trimmed name only. Blank names are ignored.
func (r *Reconciler) RenameColumn(ctx context.Context, id types.ColumnID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	if err := r.store.UpdateColumn(ctx, id, models.ColumnPatch{Name: &name}); err != nil {
		return r.persistFailure("rename column", err, "column_id", id)
	}

	r.afterWrite(ctx)
	return nil
}

// ToggleColumn flips the collapsed flag of a column
func (r *Reconciler) ToggleColumn(ctx context.Context, id types.ColumnID) error {
	col := r.snapshotColumn(id)
	if col == nil {
		return r.inconsistent("toggle column", ErrColumnNotFound, "column_id", id)
	}

	collapsed := !col.Collapsed
	if err := r.store.UpdateColumn(ctx, id, models.ColumnPatch{Collapsed: &collapsed}); err != nil {
		return r.persistFailure("toggle column", err, "column_id", id)
	}

	r.afterWrite(ctx)
	return nil
}

// DeleteColumn removes a column and every card in it. Callers are expected
// to have confirmed the intent with the user.
func (r *Reconciler) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	if err := r.store.DeleteColumn(ctx, id); err != nil {
		return r.persistFailure("delete column", err, "column_id", id)
	}

	r.logger.Info("column deleted", "column_id", id)
	r.afterWrite(ctx)
	return nil
}

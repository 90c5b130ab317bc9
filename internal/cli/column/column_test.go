package column

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todoboard/internal/app"
	"github.com/thenoetrevino/todoboard/internal/cli"
	"github.com/thenoetrevino/todoboard/internal/models"
	testcli "github.com/thenoetrevino/todoboard/internal/testutil/cli"
)

// view refreshes and returns the board as stored
func view(t *testing.T, a *app.App) []*models.Column {
	t.Helper()
	require.NoError(t, a.Board.Refresh(context.Background()))
	return a.Board.View()
}

func names(columns []*models.Column) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i] = col.Name
	}
	return out
}

func run(t *testing.T, a *app.App, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	return testcli.ExecuteCLICommandWithContext(t, context.Background(), a, cmd, args)
}

func TestCreateColumn(t *testing.T) {
	_, a := testcli.SetupCLITest(t)

	out, _, err := run(t, a, CreateCmd(), "--name", "  review  ")
	require.NoError(t, err)
	assert.Contains(t, out, "Column 'review' created")

	cols := view(t, a)
	assert.Equal(t, []string{"doing", "done today", "review"}, names(cols), "defaults are seeded first")
	assert.Equal(t, 2, cols[2].Order)
}

func TestCreateColumnOutputModes(t *testing.T) {
	_, a := testcli.SetupCLITest(t)

	out, _, err := run(t, a, CreateCmd(), "--name", "review", "--json")
	require.NoError(t, err)
	data := testcli.Data(t, out)
	assert.Equal(t, "created", data["action"])
	assert.NotEmpty(t, data["id"])

	out, _, err = run(t, a, CreateCmd(), "--name", "blocked", "--quiet")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	cols := view(t, a)
	assert.Equal(t, id, cols[len(cols)-1].ID.String())
}

func TestCreateColumnBlankName(t *testing.T) {
	_, a := testcli.SetupCLITest(t)

	_, stderr, err := run(t, a, CreateCmd(), "--name", "   ")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Contains(t, stderr, "name is required")
	assert.Len(t, view(t, a), 2)
}

func TestRenameColumn(t *testing.T) {
	_, a := testcli.SetupCLITest(t)

	out, _, err := run(t, a, RenameCmd(), "--column", "DOING", "--name", "in progress")
	require.NoError(t, err)
	assert.Contains(t, out, "Column 'doing' renamed to 'in progress'")
	assert.Equal(t, []string{"in progress", "done today"}, names(view(t, a)))
}

func TestRenameColumnNotFound(t *testing.T) {
	_, a := testcli.SetupCLITest(t)

	out, _, err := run(t, a, RenameCmd(), "--column", "nope", "--name", "x", "--json")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	result := testcli.ParseJSON(t, out)
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "COLUMN_NOT_FOUND", errData["code"])
	assert.NotEmpty(t, errData["suggestion"])
}

func TestRenameColumnAmbiguous(t *testing.T) {
	_, a := testcli.SetupCLITest(t)
	_, _, err := run(t, a, CreateCmd(), "--name", "Doing")
	require.NoError(t, err)

	_, _, err = run(t, a, RenameCmd(), "--column", "doing", "--name", "x")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.ErrorIs(t, err, cli.ErrAmbiguous)

	// An ID always wins
	id := view(t, a)[2].ID.String()
	_, _, err = run(t, a, RenameCmd(), "--column", id, "--name", "x")
	require.NoError(t, err)
}

func TestToggleColumn(t *testing.T) {
	_, a := testcli.SetupCLITest(t)

	out, _, err := run(t, a, ToggleCmd(), "--column", "done today")
	require.NoError(t, err)
	assert.Contains(t, out, "collapsed")
	assert.True(t, view(t, a)[1].Collapsed)

	out, _, err = run(t, a, ToggleCmd(), "--column", "done today")
	require.NoError(t, err)
	assert.Contains(t, out, "expanded")
	assert.False(t, view(t, a)[1].Collapsed)
}

func TestMoveColumn(t *testing.T) {
	_, a := testcli.SetupCLITest(t)
	_, _, err := run(t, a, CreateCmd(), "--name", "review")
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "to another column",
			args: []string{"--column", "review", "--to", "doing"},
			want: []string{"review", "doing", "done today"},
		},
		{
			name: "to an index",
			args: []string{"--column", "review", "--index", "1"},
			want: []string{"doing", "review", "done today"},
		},
		{
			name: "past the end",
			args: []string{"--column", "doing", "--index", "99"},
			want: []string{"review", "done today", "doing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, a, MoveCmd(), tt.args...)
			require.NoError(t, err)

			cols := view(t, a)
			assert.Equal(t, tt.want, names(cols))
			for i, col := range cols {
				assert.Equal(t, i, col.Order, "orders are renumbered")
			}
		})
	}
}

func TestMoveColumnNeedsDestination(t *testing.T) {
	_, a := testcli.SetupCLITest(t)

	_, _, err := run(t, a, MoveCmd(), "--column", "doing")
	assert.Error(t, err)
}

func TestListColumns(t *testing.T) {
	_, a := testcli.SetupCLITest(t)

	out, _, err := run(t, a, ListCmd())
	require.NoError(t, err)
	assert.Contains(t, out, "1. doing (0 cards)")
	assert.Contains(t, out, "2. done today (0 cards)")

	out, _, err = run(t, a, ListCmd(), "--quiet")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 2)
}

func TestDeleteColumn(t *testing.T) {
	repo, a := testcli.SetupCLITest(t)
	prev := cli.Confirm
	t.Cleanup(func() { cli.Confirm = prev })

	cols := view(t, a)
	_, err := a.Board.AddCard(context.Background(), cols[0].ID, "orphan")
	require.NoError(t, err)

	cli.Confirm = func(title, description string) (bool, error) {
		assert.Contains(t, title, "doing")
		assert.Contains(t, description, "1 cards")
		return false, nil
	}
	out, _, err := run(t, a, DeleteCmd(), "--column", "doing")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")
	assert.Len(t, view(t, a), 2)

	cli.Confirm = func(string, string) (bool, error) {
		t.Fatal("--force must not ask")
		return false, nil
	}
	out, _, err = run(t, a, DeleteCmd(), "--column", "doing", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "Column 'doing' deleted")
	assert.Equal(t, []string{"done today"}, names(view(t, a)))

	var cards int
	require.NoError(t, repo.DB().QueryRow("SELECT COUNT(*) FROM cards").Scan(&cards))
	assert.Zero(t, cards, "cards are deleted with their column")
}

// Package cli holds CLI test fixtures. It is separate from testutil to avoid
// import cycles when lower-level package tests import testutil.
package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/todoboard/internal/app"
	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/database"
	"github.com/thenoetrevino/todoboard/internal/logging"
	"github.com/thenoetrevino/todoboard/internal/testutil"
)

// SetupCLITest creates an in-memory board and returns both the repository and
// the App commands will run against
func SetupCLITest(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)

	appInstance, err := app.New(context.Background(), config.Default(),
		app.WithStore(repo),
		app.WithLogger(logging.Discard()),
	)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}

	return repo, appInstance
}

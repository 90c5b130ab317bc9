package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todoboard/internal/board"
	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/database"
	"github.com/thenoetrevino/todoboard/internal/logging"
	"github.com/thenoetrevino/todoboard/internal/realtime"
	"github.com/thenoetrevino/todoboard/internal/rest"
	"github.com/thenoetrevino/todoboard/internal/store/storetest"
	"github.com/thenoetrevino/todoboard/internal/testutil"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Backend = backend
	cfg.DBPath = filepath.Join(dir, "board.db")
	cfg.SocketPath = filepath.Join(dir, "todoboard.sock")
	return cfg
}

func TestNewLocal(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.BackendLocal)

	a, err := New(ctx, cfg, WithLogger(logging.Discard()))
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	assert.IsType(t, &database.Repository{}, a.Store())
	assert.False(t, a.Live())

	require.NoError(t, a.Board.Load(ctx))
	assert.Len(t, a.Board.View(), 2, "empty board is seeded")
	assert.FileExists(t, cfg.DBPath)
}

func TestNewREST(t *testing.T) {
	cfg := testConfig(t, config.BackendREST)
	cfg.APIURL = "http://localhost:5000"

	a, err := New(context.Background(), cfg, WithLogger(logging.Discard()))
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	assert.IsType(t, &rest.Client{}, a.Store())
	assert.False(t, a.Live())
}

func TestNewRESTInvalidURL(t *testing.T) {
	cfg := testConfig(t, config.BackendREST)
	cfg.APIURL = "localhost:5000"

	_, err := New(context.Background(), cfg, WithLogger(logging.Discard()))
	assert.Error(t, err)
}

func TestNewUnknownBackend(t *testing.T) {
	cfg := testConfig(t, "firebase")

	_, err := New(context.Background(), cfg, WithLogger(logging.Discard()))
	assert.ErrorIs(t, err, config.ErrUnknownBackend)
}

func TestNewRealtimeWithoutDaemonFallsBack(t *testing.T) {
	cfg := testConfig(t, config.BackendRealtime)

	a, err := New(context.Background(), cfg, WithLogger(logging.Discard()))
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	assert.IsType(t, &database.Repository{}, a.Store())
	assert.False(t, a.Live())
}

func TestNewRealtimeWithDaemon(t *testing.T) {
	server, socketPath := testutil.SetupTestDaemon(t)
	cfg := testConfig(t, config.BackendRealtime)
	cfg.SocketPath = socketPath

	a, err := New(context.Background(), cfg, WithLogger(logging.Discard()))
	require.NoError(t, err)
	defer func() { _ = a.Close() }()

	assert.IsType(t, &realtime.Store{}, a.Store())
	assert.True(t, a.Live())
	assert.True(t, testutil.WaitForClientCount(t, server, 1, 2*time.Second))
}

func TestWithStoreAndAlerter(t *testing.T) {
	mem := storetest.NewMemory()
	mem.FailOn(storetest.OpList, storetest.ErrInjected)

	var alerts []string
	a, err := New(context.Background(), testConfig(t, config.BackendLocal),
		WithStore(mem),
		WithAlerter(board.AlerterFunc(func(msg string) { alerts = append(alerts, msg) })),
		WithLogger(logging.Discard()),
	)
	require.NoError(t, err)

	err = a.Board.Load(context.Background())
	require.ErrorIs(t, err, storetest.ErrInjected)
	assert.Len(t, alerts, 1)

	require.NoError(t, a.Close())
	assert.True(t, mem.Closed())
}

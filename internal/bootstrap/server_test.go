package bootstrap_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-storefront-api/internal/bootstrap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunHTTPServer_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- bootstrap.RunHTTPServer(ctx, http.NotFoundHandler(), bootstrap.ServerConfig{
			Port:            "0",
			ShutdownTimeout: time.Second,
		}, zap.NewNop())
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunHTTPServer_ListenError(t *testing.T) {
	err := bootstrap.RunHTTPServer(context.Background(), http.NotFoundHandler(), bootstrap.ServerConfig{
		Port: "not-a-port",
	}, zap.NewNop())
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		l, err := bootstrap.NewLogger(env)
		require.NoError(t, err)
		assert.NotNil(t, l)
	}
}

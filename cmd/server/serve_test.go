package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/booking-api/internal/platform/logger"
)

func TestServeUntilDone_GracefulShutdown(t *testing.T) {
	log, buf := logger.NewTestLogger(t)
	ctx, cancel := context.WithCancel(context.Background())

	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	done := make(chan error, 1)
	go func() { done <- serveUntilDone(ctx, server, time.Second, log) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Contains(t, buf.String(), "server shutdown completed")
}

func TestServeUntilDone_ListenFailure(t *testing.T) {
	log, _ := logger.NewTestLogger(t)

	server := &http.Server{Addr: "127.0.0.1:-1", Handler: http.NotFoundHandler()}
	err := serveUntilDone(context.Background(), server, time.Second, log)
	assert.Error(t, err)
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "seed"})
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

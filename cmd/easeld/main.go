// Command easeld serves drawing sessions over WebSocket. Each
// connection gets its own canvas; nothing outlives the connection.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/easelkit/easel"
	"github.com/easelkit/easel/remote"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8741", "listen address")
	width := flag.Int("width", 800, "canvas width in pixels")
	height := flag.Int("height", 600, "canvas height in pixels")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	easel.SetLogger(logger)

	mux := http.NewServeMux()
	mux.Handle("/session", remote.NewServer(*width, *height, remote.WithLogger(logger)))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("easeld listening", "addr", *addr, "canvas", fmt.Sprintf("%dx%d", *width, *height))
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("easeld exited", "err", err)
		os.Exit(1)
	}
}

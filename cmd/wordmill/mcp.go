// CLAUDE:SUMMARY CLI subcommand that exposes the preprocessing tools over MCP stdio.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/hazyhaar/wordmill/pkg/api"
	"github.com/hazyhaar/wordmill/pkg/langpack"
)

func cmdMCP(args []string) {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	packsDir := fs.String("packs-dir", "packs", "directory with language packs")
	fs.Parse(args)

	// stdout carries the MCP protocol, so logs go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	reg := langpack.NewRegistry(*packsDir)
	if err := reg.Load(); err != nil {
		logger.Error("failed to load language packs", "error", err)
		os.Exit(1)
	}
	logger.Info("language packs loaded", "count", reg.PackCount(), "words", reg.TotalWords())

	srv := server.NewMCPServer("wordmill", "1.0.0",
		server.WithToolCapabilities(false),
	)
	api.RegisterMCPTools(srv, reg)

	if err := server.ServeStdio(srv); err != nil {
		logger.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}

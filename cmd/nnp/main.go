package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/cli"
	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp"
	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp/paths"
	"github.com/richardahn/obsidian-notebook-navigator-profiles/internal/nnp/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	vaultDir, err := resolveVaultDir()
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if os.Getenv("NNP_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	store := storage.New(afero.NewOsFs())
	builder := paths.New(vaultDir)

	mgr := nnp.NewManager(store, builder, logger)
	root := cli.NewRootCommand(mgr, cli.NewPromptUI(), os.Stdout, os.Stderr)
	mgr.SetRegistrar(cli.NewRegistrar(root))
	mgr.SetRefresh(func() {
		fmt.Fprintln(os.Stdout, "Reload the Notebook Navigator plugin in Obsidian to pick up the change.")
	})

	if err := mgr.Init(); err != nil {
		return err
	}
	defer mgr.Close()

	return root.Execute()
}

// resolveVaultDir returns the vault to operate on: $NNP_VAULT when set,
// otherwise the current working directory.
func resolveVaultDir() (string, error) {
	if custom := strings.TrimSpace(os.Getenv("NNP_VAULT")); custom != "" {
		return custom, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return dir, nil
}

package cli

import (
	"context"
	"customer-directory-service/internal/bootstrap"
	"customer-directory-service/internal/config"
	"customer-directory-service/internal/platform/logx"
	"customer-directory-service/internal/services"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	FlagSource   = ""
	FlagDataset  = ""
	FlagDBPath   = ""
	FlagLogLevel = 0
)

// logLevel maps the -v count onto zerolog levels; commands are quiet by default.
func logLevel() string {
	switch {
	case FlagLogLevel >= 2:
		return "trace"
	case FlagLogLevel == 1:
		return "debug"
	}
	return "warn"
}

// openDirectory builds a directory service from the environment overridden by flags.
// The returned func releases the dataset source.
func openDirectory(ctx context.Context, stderr io.Writer) (*services.DirectoryService, func(), error) {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		return nil, func() {}, err
	}

	if FlagDataset != "" {
		cfg.DatasetPath = FlagDataset
		cfg.DatasetSource = config.SourceFile
	}
	if FlagSource != "" {
		cfg.DatasetSource = strings.ToLower(FlagSource)
	}
	if FlagDBPath != "" {
		cfg.DBPath = FlagDBPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, func() {}, err
	}

	log := logx.NewWithWriter(stderr, logLevel())

	source, closeSource, err := bootstrap.OpenSource(ctx, cfg)
	if err != nil {
		return nil, func() {}, err
	}

	svc := services.NewDirectoryService(source, log, services.Options{
		LoadTimeout: cfg.LoadTimeout,
		WaitTimeout: cfg.WaitTimeout,
	})
	return svc, closeSource, nil
}

// withDirectory runs fn against a loaded directory.
func withDirectory(cmd *cobra.Command, fn func(ctx context.Context, svc *services.DirectoryService) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, closeSource, err := openDirectory(ctx, cmd.ErrOrStderr())
	defer closeSource()
	if err != nil {
		return fmt.Errorf("open directory: %w", err)
	}

	if err := svc.Initialize(ctx); err != nil {
		return err
	}
	return fn(ctx, svc)
}

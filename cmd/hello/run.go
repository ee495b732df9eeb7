package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"gemini-hello/config"
	"gemini-hello/internal/credential"
	"gemini-hello/internal/greeting/usecase"
	"gemini-hello/pkg/gemini"
	"gemini-hello/pkg/log"
)

const defaultEnvFile = ".env"

type options struct {
	configPath string
	envFile    string
}

// run performs the whole program: credential, client, one request, print.
// Nothing is written to stdout unless the request succeeds. Errors are
// returned, not logged; main reports them once.
func run(ctx context.Context, opts options, stdout io.Writer) error {
	// 1. Environment file
	if err := loadEnvFile(opts.envFile); err != nil {
		return err
	}

	// 2. Configuration
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 3. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer log.Sync(logger)

	ctx = log.SetTraceID(ctx, uuid.NewString())
	logger.Debugf(ctx, "Environment: %s", cfg.Environment.Name)

	// 4. Credential, before any client exists
	apiKey, err := credential.FromEnv(cfg.Gemini.APIKeyEnv)
	if err != nil {
		return fmt.Errorf("read API key: %w", err)
	}
	logger.Debugf(ctx, "API key %s loaded from %s", credential.Mask(apiKey), cfg.Gemini.APIKeyEnv)

	// 5. Client and model handle
	llm, err := gemini.New(ctx, gemini.Config{
		APIKey:     apiKey,
		Model:      gemini.DefaultModel,
		APIURL:     cfg.Gemini.APIURL,
		APIVersion: cfg.Gemini.APIVersion,
	})
	if err != nil {
		return fmt.Errorf("create gemini client: %w", err)
	}

	// 6. One request
	out, err := usecase.New(logger, llm).Greet(ctx)
	if err != nil {
		return err
	}

	// 7. Print
	if _, err := fmt.Fprintln(stdout, out.Text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// loadEnvFile loads variables from path without overriding ones already set.
// With no path, .env is loaded only if it exists.
func loadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(defaultEnvFile); errors.Is(err, os.ErrNotExist) {
			return nil
		}
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yojanabuddy/teachme/internal/analysis"
	"github.com/yojanabuddy/teachme/internal/completion"
	"github.com/yojanabuddy/teachme/internal/llm"
	"github.com/yojanabuddy/teachme/internal/questions"
	"github.com/yojanabuddy/teachme/internal/server"
	"github.com/yojanabuddy/teachme/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the tutoring HTTP service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides TEACHME_ADDR, default :8080)")
}

func runServe(cmd *cobra.Command) error {
	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("oracle config: %w", err)
	}

	s, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := llm.NewProvider(ctx, cfg, s.EventRepo())
	if err != nil {
		return fmt.Errorf("build oracle provider: %w", err)
	}

	engine := session.NewEngine(
		s.SessionRepo(),
		s.NoteRepo(),
		analysis.NewAnalyzer(provider, analysis.DefaultAnalyzerConfig()),
		questions.NewGenerator(provider, questions.DefaultGeneratorConfig()),
		completion.NewAnalyzer(provider, completion.DefaultAnalyzerConfig()),
	)

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = os.Getenv("TEACHME_ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.NewHandlers(engine).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", addr, "primary", cfg.Primary, "fallback", cfg.Fallback)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}

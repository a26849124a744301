package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/noliquid/backend/internal/api"
	"github.com/wonny/noliquid/backend/internal/api/handlers"
	"github.com/wonny/noliquid/backend/internal/landing"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "웹 서버 시작",
	Long: `랜딩 페이지, 백테스트 대시보드, JSON API 서버를 시작합니다.

Endpoints:
  GET  /health                  - Health check
  GET  /                        - 랜딩 페이지
  GET  /backtest?tab=chart      - 대시보드 (차트 탭)
  GET  /backtest?tab=stats      - 대시보드 (통계 탭)
  GET  /api/backtest/report     - 전체 리포트
  GET  /api/backtest/equity     - 에쿼티 커브
  GET  /api/backtest/summary    - 요약 지표
  GET  /api/backtest/ratings    - 성과 등급
  GET  /api/features            - 랜딩 기능 목록

Example:
  go run ./cmd/noliquid api
  go run ./cmd/noliquid api --port 8080`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (default is PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== NoLiquid API Server ===")

	// 1. Load config
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := newLogger(cfg, os.Stdout)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Load dataset and analyzer
	analyzer, closeCache, err := newAnalyzer(cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()

	// Fail fast on a series that cannot be analyzed
	if _, err := analyzer.Analyze(cmd.Context()); err != nil {
		return fmt.Errorf("analyze dataset: %w", err)
	}

	// 4. Parse templates
	renderer, err := landing.NewRenderer()
	if err != nil {
		return err
	}

	// 5. Create handlers and router
	backtestHandler := handlers.NewBacktestHandler(analyzer, log)
	pageHandler := handlers.NewPageHandler(renderer, analyzer, log)
	router := api.NewRouter(backtestHandler, pageHandler, cfg, log)

	// 6. Create server
	server := api.New(cfg, log, router)

	fmt.Fprintf(out, "\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Fprintf(out, "   Dashboard: http://localhost:%s/backtest\n", cfg.Port)
	fmt.Fprintln(out, "\nPress Ctrl+C to stop")

	// 7. Serve until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		return err
	}

	log.Info("Server stopped")
	return nil
}

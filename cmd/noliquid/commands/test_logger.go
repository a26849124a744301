package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/noliquid/backend/pkg/config"
	"github.com/wonny/noliquid/backend/pkg/logger"
)

// testLoggerCmd represents the test-logger command
var testLoggerCmd = &cobra.Command{
	Use:   "test-logger",
	Short: "Logger 기능 테스트",
	Long: `구조화된 로깅 기능을 테스트합니다.

이 명령어는:
- JSON/Console 포맷 테스트
- 구조화된 필드 로깅
- 에러 컨텍스트 로깅

Example:
  go run ./cmd/noliquid test-logger`,
	RunE: runTestLogger,
}

func init() {
	rootCmd.AddCommand(testLoggerCmd)
}

func runTestLogger(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== NoLiquid Logger Test ===")

	steps := []struct {
		title string
		cfg   *config.Config
		run   func(log *logger.Logger)
	}{
		{"1. JSON Format (Production)", &config.Config{Env: "production", LogLevel: "info", LogFormat: "json"}, logLevels},
		{"2. Console Format (Development)", &config.Config{Env: "development", LogLevel: "debug", LogFormat: "console"}, logLevels},
		{"3. Structured Logging with Fields", &config.Config{Env: "production", LogLevel: "info", LogFormat: "json"}, logStructured},
		{"4. Error Logging", &config.Config{Env: "production", LogLevel: "error", LogFormat: "json"}, logErrors},
	}

	for _, step := range steps {
		fmt.Fprintln(out, step.title)
		PrintSeparator(out)
		step.run(logger.NewWithWriter(step.cfg, os.Stdout))
		fmt.Fprintln(out)
	}

	PrintSuccess(out, "All logger tests completed!")
	return nil
}

func logLevels(log *logger.Logger) {
	log.Debug("Debugging report pipeline")
	log.Info("Service started")
	log.Warn("Report cache disabled, recomputing on every request")
	log.Error("Failed to render dashboard")
}

func logStructured(log *logger.Logger) {
	// Single field
	log.WithField("dataset", "noliquid-perp-v1").Info("Dataset loaded")

	// Multiple fields
	log.WithFields(map[string]interface{}{
		"total_pnl":        6646.5,
		"win_rate":         66.67,
		"max_drawdown_pct": -19.53,
	}).Info("Backtest analysis completed")

	// Chained fields
	log.WithField("module", "api").
		WithField("path", "/api/backtest/summary").
		Info("HTTP request")
}

func logErrors(log *logger.Logger) {
	err := errors.New("dataset has no months")
	log.WithError(err).Error("Failed to load dataset")

	log.WithError(err).
		WithFields(map[string]interface{}{
			"source": "./data/backtest.yaml",
			"status": 422,
		}).
		Error("Backtest analysis failed")
}

package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/noliquid/backend/internal/termview"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "백테스트 리포트 출력",
	Long: `월별 손익 시계열을 분석해 터미널에 대시보드를 출력합니다.

출력 항목:
- 헤드라인 카드 (Total P&L, Win Rate, Profit Factor, Max Drawdown)
- 에쿼티 스파크라인
- 상세 지표 12종
- 월별 손익
- 성과 등급과 인사이트

Example:
  go run ./cmd/noliquid report
  go run ./cmd/noliquid report --format json
  go run ./cmd/noliquid report --dataset ./data/backtest.yaml`,
	RunE: runReport,
}

var (
	reportFormat string
)

func init() {
	rootCmd.AddCommand(reportCmd)

	// Flags
	reportCmd.Flags().StringVar(&reportFormat, "format", "text", "output format (text|json)")
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportFormat != "text" && reportFormat != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", reportFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := newLogger(cfg, os.Stderr)

	analyzer, closeCache, err := newAnalyzer(cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()

	report, err := analyzer.Analyze(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if reportFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	return termview.New(out).Write(out, report)
}

package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	env         string
	verbose     bool
	datasetPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "noliquid",
	Short: "NoLiquid - 백테스트 분석 대시보드",
	Long: `NoLiquid Unified CLI

월별 손익 시계열로 에쿼티 커브, 드로다운, 성과 지표를 계산하고
랜딩 페이지와 백테스트 대시보드를 제공합니다.

Usage:
  go run ./cmd/noliquid [command]

Examples:
  go run ./cmd/noliquid api
  go run ./cmd/noliquid report
  go run ./cmd/noliquid report --format json
  go run ./cmd/noliquid dataset check ./data/backtest.yaml
  go run ./cmd/noliquid test-logger`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "environment (development|staging|production), overrides ENV")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logs)")
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "monthly P&L YAML file (default is the embedded series)")
}

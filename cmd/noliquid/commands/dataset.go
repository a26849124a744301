package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/noliquid/backend/internal/dashboard"
	"github.com/wonny/noliquid/backend/internal/dataset"
)

// datasetCmd groups the dataset commands
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "데이터셋 관리",
}

// datasetCheckCmd represents the dataset check command
var datasetCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "데이터셋 검증",
	Long: `월별 손익 YAML 파일을 검증하고 해시를 출력합니다.

검증 항목:
- 알 수 없는 필드
- 빈 시계열
- 빈 월 라벨, 중복 월 라벨
- 유한하지 않은 손익 값

경로를 생략하면 --dataset 또는 내장 시계열을 검증합니다.

Example:
  go run ./cmd/noliquid dataset check
  go run ./cmd/noliquid dataset check ./data/backtest.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDatasetCheck,
}

func init() {
	rootCmd.AddCommand(datasetCmd)
	datasetCmd.AddCommand(datasetCheckCmd)
}

func runDatasetCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path := datasetPath
	if len(args) == 1 {
		path = args[0]
	}

	ds, source, err := dataset.Load(path)
	if err != nil {
		PrintError(out, fmt.Sprintf("%s is invalid", source))
		return err
	}

	hash, err := ds.Hash()
	if err != nil {
		return err
	}

	var total float64
	for _, r := range ds.Records() {
		total += r.PnL
	}
	f := dashboard.NewFormatter(ds.Currency())

	PrintHeader(out, "Dataset Check")
	PrintKeyValue(out, "Source", source, 10)
	PrintKeyValue(out, "Name", ds.Meta.Name, 10)
	PrintKeyValue(out, "Currency", ds.Currency(), 10)
	PrintKeyValue(out, "Months", fmt.Sprintf("%d (%s ~ %s)", len(ds.Months), ds.Months[0].Month, ds.Months[len(ds.Months)-1].Month), 10)
	PrintKeyValue(out, "Total P&L", f.Money(total), 10)
	PrintKeyValue(out, "SHA-256", hash, 10)
	PrintSeparator(out)
	PrintSuccess(out, "Dataset is valid")
	return nil
}

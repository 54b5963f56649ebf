// Package commands provides CLI commands for malsum.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daehopark/malsum/internal/config"
	"github.com/daehopark/malsum/internal/logging"
)

var (
	// Global flags
	modelFlag  string
	outputFlag string
	rawFlag    bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "malsum [본문]",
	Short: "셀모임 말씀묵상 도우미",
	Long: `malsum은 셀모임을 위한 말씀묵상 CLI입니다. 개역한글판 본문을
찾아 말씀관찰·말씀해석·말씀적용 세 갈래로 묵상을 돕고, 묵상한
내용을 나눔용으로 정리해 줍니다.

Examples:
  malsum study                  대화형 묵상 화면 열기
  malsum "창 1:1"               본문을 찾고 말씀관찰까지 한 번에
  malsum lookup "요 3:16"       본문만 찾아 출력
  malsum meditate "시 23" -c 해석
  malsum chat "이 말씀의 배경은?" -p "창 1:1"
  malsum share make "롬 8:28"   나눔 요약과 나눔 토큰 만들기
  malsum share open <토큰>      나눔받은 말씀 열기`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("malsum %s (built %s)\n", Version, BuildTime)
			return nil
		}
		if len(args) > 0 {
			return runStudyOnce(args[0])
		}
		return cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "사용할 모델 (예: gemini-2.5-flash)")
	rootCmd.PersistentFlags().BoolVar(&rawFlag, "raw", false, "꾸밈 없이 본문만 출력")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "결과를 파일로 저장")
	rootCmd.Flags().BoolP("version", "v", false, "버전을 출력하고 종료")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(meditateCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(configCmd)
}

// getModel returns the model to use (from flag or config)
func getModel() string {
	if modelFlag != "" {
		return modelFlag
	}
	cfg, err := config.LoadConfig()
	if err != nil || cfg.DefaultModel == "" {
		return "gemini-2.5-flash"
	}
	return cfg.DefaultModel
}

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/daehopark/malsum/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "설정 보기와 변경",
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Gemini API 키 저장",
	Long: `Gemini API 키를 입력받아 설정 파일에 저장합니다. 키는
화면에 표시되지 않습니다. 환경변수 GEMINI_API_KEY가 설정되어
있으면 저장된 키보다 우선합니다.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(os.Stderr, "Gemini API 키: ")
		keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("키를 읽지 못했습니다: %w", err)
		}
		key := strings.TrimSpace(string(keyBytes))
		if key == "" {
			return fmt.Errorf("키가 비어 있습니다")
		}
		if err := config.SaveAPIKey(key); err != nil {
			return err
		}
		path, _ := config.GetConfigPath()
		fmt.Fprintf(os.Stderr, "✓ 키를 저장했어요 (%s)\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "현재 설정 출력",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠ 설정을 읽지 못해 기본값을 보여 드려요: %v\n", err)
		}

		keyState := "미설정"
		if os.Getenv(config.EnvAPIKey) != "" {
			keyState = "환경변수 사용"
		} else if cfg.APIKey != "" {
			keyState = "저장됨"
		}

		fmt.Printf("API 키:        %s\n", keyState)
		fmt.Printf("기본 모델:     %s\n", cfg.DefaultModel)
		fmt.Printf("클립보드 복사: %v\n", cfg.CopyToClipboard)
		fmt.Printf("마크다운 스타일: %s\n", cfg.Markdown.Style)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "설정 파일 경로 출력",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

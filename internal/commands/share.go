package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/daehopark/malsum/internal/config"
	"github.com/daehopark/malsum/internal/models"
	"github.com/daehopark/malsum/internal/session"
	"github.com/daehopark/malsum/internal/share"
	"github.com/daehopark/malsum/internal/tui"
)

var (
	printFlag  bool
	noCopyFlag bool
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "묵상 나눔 만들기와 열기",
}

var shareMakeCmd = &cobra.Command{
	Use:   "make <본문>",
	Short: "본문을 묵상하고 나눔 요약과 토큰 만들기",
	Long: `본문을 찾아 세 갈래 묵상을 모두 만든 뒤, 나눔용 요약과
나눔 토큰을 출력합니다. 토큰을 받은 사람은
'malsum share open <토큰>'으로 같은 말씀을 열어볼 수 있습니다.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, err := newGenerator(ctx)
		if err != nil {
			if !rawFlag {
				fmt.Fprintln(os.Stderr, formatErrorMessage(err, "시작할 수 없습니다"))
			}
			return err
		}
		s := session.New(client)

		var spin *spinner
		if !rawFlag {
			spin = newSpinner("본문을 찾고 있어요")
			spin.start()
		}
		p, err := s.Lookup(ctx, args[0])
		if err != nil {
			if !rawFlag {
				spin.stopWithError()
				fmt.Fprintln(os.Stderr, formatErrorMessage(err, "본문을 찾지 못했습니다"))
			}
			return err
		}
		if !rawFlag {
			spin.stopWithSuccess(p.Reference)
		}

		for _, category := range models.AllCategories() {
			if !rawFlag {
				spin = newSpinner(category.Label() + " 내용을 묵상하고 있어요")
				spin.start()
			}
			if _, err := s.SelectCategory(ctx, category); err != nil {
				if !rawFlag {
					spin.stopWithError()
					fmt.Fprintln(os.Stderr, formatErrorMessage(err, category.Label()+" 생성에 실패했습니다"))
				}
				return err
			}
			if !rawFlag {
				spin.stopWithSuccess(category.Label())
			}
		}

		if !rawFlag {
			spin = newSpinner("나눔 내용을 정리하고 있어요")
			spin.start()
		}
		summary, err := s.Summarize(ctx)
		if err != nil {
			// The assembled text still carries the study when the
			// summary generation fails.
			summary, err = s.DefaultShareText()
			if err != nil {
				if !rawFlag {
					spin.stopWithError()
					fmt.Fprintln(os.Stderr, formatErrorMessage(err, "나눔 내용을 만들지 못했습니다"))
				}
				return err
			}
		}
		token, err := s.ShareToken()
		if err != nil {
			if !rawFlag {
				spin.stopWithError()
			}
			return err
		}
		if !rawFlag {
			spin.stopWithSuccess("나눔 준비 완료")
		}

		full := summary + "\n\n말씀 보기: malsum share open " + token

		if rawFlag || outputFlag != "" {
			return writeOutput(full)
		}

		printSection("나눔", summary)
		fmt.Println(lipgloss.NewStyle().Foreground(colorTextDim).Render("나눔 토큰:"))
		fmt.Println(token)

		cfg, _ := config.LoadConfig()
		if cfg.CopyToClipboard && !noCopyFlag {
			if err := clipboard.WriteAll(full); err != nil {
				warn := lipgloss.NewStyle().Foreground(colorErr).Render(
					fmt.Sprintf("⚠ 클립보드 복사 실패: %v", err))
				fmt.Fprintln(os.Stderr, warn)
			} else {
				ok := lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ 클립보드에 복사했어요")
				fmt.Fprintln(os.Stderr, ok)
			}
		}
		return nil
	},
}

var shareOpenCmd = &cobra.Command{
	Use:   "open <토큰>",
	Short: "나눔받은 말씀 열기",
	Long: `나눔 토큰을 풀어 본문과 묵상 내용을 읽기 전용으로 엽니다.
--print를 주면 화면 대신 터미널로 바로 출력합니다.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := share.Decode(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "나눔 토큰을 열 수 없습니다"))
			return err
		}

		if printFlag || rawFlag {
			return printSnapshot(snap)
		}
		return tui.RunShared(session.NewShared(snap))
	},
}

// printSnapshot writes a decoded study straight to the terminal.
func printSnapshot(snap share.Snapshot) error {
	if rawFlag {
		return writeOutput(share.DefaultText(snap))
	}
	printPassage(snap.Reference, snap.Text)
	meditation := snap.Meditation()
	for _, category := range models.AllCategories() {
		if text := meditation.Get(category); text != "" {
			printSection(category.Label(), text)
		}
	}
	return nil
}

func init() {
	shareMakeCmd.Flags().BoolVar(&noCopyFlag, "no-copy", false, "클립보드 복사 건너뛰기")
	shareOpenCmd.Flags().BoolVar(&printFlag, "print", false, "화면 대신 바로 출력")
	shareCmd.AddCommand(shareMakeCmd)
	shareCmd.AddCommand(shareOpenCmd)
}

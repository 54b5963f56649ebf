package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daehopark/malsum/internal/config"
	"github.com/daehopark/malsum/internal/models"
	"github.com/daehopark/malsum/internal/session"
	"github.com/daehopark/malsum/internal/tui"
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "대화형 묵상 화면 열기",
	Long: `본문 검색, 세 갈래 묵상, 본문에 근거한 질문, 나눔까지
한 화면에서 이어지는 대화형 묵상입니다.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		client, err := newGenerator(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "시작할 수 없습니다"))
			return err
		}

		cfg, _ := config.LoadConfig()
		return tui.RunStudy(session.New(client), cfg.CopyToClipboard)
	},
}

// runStudyOnce handles `malsum "창 1:1"`: fetch the passage and print
// it with its observation.
func runStudyOnce(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("본문을 입력해 주세요")
	}

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

	p, obs, err := s.Study(ctx, input)
	if err != nil {
		if !rawFlag {
			spin.stopWithError()
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "묵상을 준비하지 못했습니다"))
		}
		return err
	}
	if !rawFlag {
		spin.stopWithSuccess(p.Reference)
	}

	if rawFlag {
		return writeOutput(p.Reference + "\n\n" + p.Text + "\n\n" + obs)
	}
	if outputFlag != "" {
		return writeOutput(p.Reference + "\n\n" + p.Text + "\n\n" + obs)
	}

	printPassage(p.Reference, p.Text)
	printSection(models.CategoryObservation.Label(), obs)
	return nil
}

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daehopark/malsum/internal/bible"
	"github.com/daehopark/malsum/internal/session"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <본문>",
	Short: "본문만 찾아 출력",
	Long: `개역한글판 본문을 찾아 출력합니다. 축약된 책 이름도
알아듣습니다 (창 → 창세기, 요 → 요한복음).`,
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

		if rawFlag {
			return writeOutput(p.Text)
		}
		printPassage(p.Reference, p.Text)
		return nil
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <본문>",
	Short: "책 이름 축약을 펼쳐 보기",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(bible.NormalizeReference(args[0]))
		return nil
	},
}

func init() {
	lookupCmd.AddCommand(normalizeCmd)
}

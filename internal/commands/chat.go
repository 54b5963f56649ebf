package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daehopark/malsum/internal/session"
)

var passageFlag string

var chatCmd = &cobra.Command{
	Use:   "chat <질문>",
	Short: "본문에 근거해 한 번 질문하기",
	Long: `-p로 지정한 본문을 먼저 찾은 뒤, 그 본문에 근거해 질문에
답합니다. 본문 없이 물어도 됩니다.`,
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
		if passageFlag != "" {
			if !rawFlag {
				spin = newSpinner("본문을 찾고 있어요")
				spin.start()
			}
			p, err := s.Lookup(ctx, passageFlag)
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
		}

		if !rawFlag {
			spin = newSpinner("답변을 구하고 있어요")
			spin.start()
		}
		reply, err := s.SendChat(ctx, args[0])
		if err != nil {
			if !rawFlag {
				spin.stopWithError()
				fmt.Fprintln(os.Stderr, formatErrorMessage(err, "답변을 받지 못했습니다"))
			}
			return err
		}
		if !rawFlag {
			spin.stopWithSuccess("답변 도착")
		}

		if rawFlag || outputFlag != "" {
			return writeOutput(reply.Text)
		}
		printSection("도우미", reply.Text)
		return nil
	},
}

func init() {
	chatCmd.Flags().StringVarP(&passageFlag, "passage", "p", "", "근거로 삼을 본문 (예: 창 1:1)")
}

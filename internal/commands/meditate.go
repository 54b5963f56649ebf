package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daehopark/malsum/internal/models"
	"github.com/daehopark/malsum/internal/session"
)

var categoryFlag string

var meditateCmd = &cobra.Command{
	Use:   "meditate <본문>",
	Short: "본문을 찾아 묵상 내용 만들기",
	Long: `본문을 찾은 뒤 지정한 갈래의 묵상 내용을 만듭니다.

-c 값: 관찰(observation), 해석(interpretation), 적용(application),
또는 all(세 갈래 모두).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := parseCategories(categoryFlag)
		if err != nil {
			return err
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

		var rawParts []string
		for _, category := range categories {
			if !rawFlag {
				spin = newSpinner(category.Label() + " 내용을 묵상하고 있어요")
				spin.start()
			}
			text, err := s.SelectCategory(ctx, category)
			if err != nil {
				if !rawFlag {
					spin.stopWithError()
					fmt.Fprintln(os.Stderr, formatErrorMessage(err, category.Label()+" 생성에 실패했습니다"))
				}
				return err
			}
			if !rawFlag {
				spin.stopWithSuccess(category.Label())
			}
			rawParts = append(rawParts, "["+category.Label()+"]\n"+text)
		}

		if rawFlag || outputFlag != "" {
			return writeOutput(strings.Join(rawParts, "\n\n"))
		}

		printPassage(p.Reference, p.Text)
		meditation := s.Meditation()
		for _, category := range categories {
			printSection(category.Label(), meditation.Get(category))
		}
		return nil
	},
}

// parseCategories maps the -c flag onto meditation categories.
func parseCategories(flag string) ([]models.Category, error) {
	switch strings.ToLower(strings.TrimSpace(flag)) {
	case "", "관찰", "observation":
		return []models.Category{models.CategoryObservation}, nil
	case "해석", "interpretation":
		return []models.Category{models.CategoryInterpretation}, nil
	case "적용", "application":
		return []models.Category{models.CategoryApplication}, nil
	case "all", "모두":
		return models.AllCategories(), nil
	}
	return nil, fmt.Errorf("알 수 없는 묵상 갈래: %s", flag)
}

func init() {
	meditateCmd.Flags().StringVarP(&categoryFlag, "category", "c", "관찰", "묵상 갈래 (관찰, 해석, 적용, all)")
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/daehopark/malsum/internal/config"
	apierrors "github.com/daehopark/malsum/internal/errors"
	"github.com/daehopark/malsum/internal/gemini"
	"github.com/daehopark/malsum/internal/render"
)

var (
	sectionLabelStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	sectionBubbleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorText).
				Padding(0, 1).
				MarginTop(1).
				MarginBottom(1)

	passageHeadStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#5eead4")).
				Bold(true)
)

// newGenerator builds the Gemini client from stored configuration.
func newGenerator(ctx context.Context) (*gemini.Client, error) {
	cfg, _ := config.LoadConfig()
	key := config.ResolveAPIKey(cfg)
	if key == "" {
		return nil, apierrors.ErrNoAPIKey
	}
	return gemini.NewClient(ctx, key, gemini.WithModel(getModel()))
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// contentWidth clamps the terminal width into a readable column.
func contentWidth() int {
	w := getTerminalWidth() - 4
	if w < 40 {
		w = 40
	}
	if w > 120 {
		w = 120
	}
	return w
}

// printSection prints a labeled, markdown-rendered block to stdout.
func printSection(label, body string) {
	width := contentWidth()
	fmt.Println(sectionLabelStyle.Render("✦ " + label))

	renderOpts := render.LoadOptionsFromConfigWithWidth(width - 4)
	rendered, err := render.Markdown(body, renderOpts)
	if err != nil {
		rendered = body
	}
	rendered = strings.TrimRight(rendered, "\n")

	fmt.Println(sectionBubbleStyle.Width(width).Render(rendered))
}

// printPassage prints the passage without markdown treatment, the
// text is verse material and stays verbatim.
func printPassage(reference, text string) {
	width := contentWidth()
	fmt.Println(passageHeadStyle.Render("📖 " + reference))
	fmt.Println(sectionBubbleStyle.Width(width).Render(text))
}

// writeOutput honors the --output flag, otherwise prints raw text.
func writeOutput(text string) error {
	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}
	fmt.Print(text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Println()
	}
	return nil
}

// formatErrorMessage formats an error with helpful hints
func formatErrorMessage(err error, context string) string {
	if err == nil {
		return ""
	}

	errorStyle := lipgloss.NewStyle().Foreground(colorErr)
	dimStyle := lipgloss.NewStyle().Foreground(colorTextDim)

	var sb strings.Builder
	sb.WriteString(errorStyle.Render(fmt.Sprintf("✗ %s: %v", context, err)))

	switch {
	case errors.Is(err, apierrors.ErrNoAPIKey):
		sb.WriteString(dimStyle.Render("\n  Hint: 'malsum config set-key'로 Gemini API 키를 등록하거나 GEMINI_API_KEY를 설정하세요"))
	case apierrors.IsGenerationError(err, "lookup"):
		sb.WriteString(dimStyle.Render("\n  Hint: 장과 절까지 입력해 보세요 (예: 창 1:1, 요 3:16)"))
	case apierrors.IsShareDecodeError(err):
		sb.WriteString(dimStyle.Render("\n  Hint: 나눔 토큰이 온전한지 확인하세요"))
	}

	return sb.String()
}

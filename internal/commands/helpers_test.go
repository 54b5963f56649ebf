package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	apierrors "github.com/daehopark/malsum/internal/errors"
)

func TestNewGeneratorWithoutKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")

	_, err := newGenerator(context.Background())
	if !errors.Is(err, apierrors.ErrNoAPIKey) {
		t.Errorf("err = %v, want ErrNoAPIKey", err)
	}
}

func TestFormatErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		context  string
		wantHint string
	}{
		{
			name:     "missing key points at set-key",
			err:      apierrors.ErrNoAPIKey,
			context:  "시작할 수 없습니다",
			wantHint: "set-key",
		},
		{
			name:     "lookup failure suggests full reference",
			err:      apierrors.NewGenerationError("lookup", "본문을 찾을 수 없습니다", apierrors.ErrNoContent),
			context:  "본문을 찾지 못했습니다",
			wantHint: "장과 절",
		},
		{
			name:     "share decode failure mentions the token",
			err:      &apierrors.ShareDecodeError{Reason: "truncated"},
			context:  "나눔 토큰을 열 수 없습니다",
			wantHint: "토큰",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatErrorMessage(tt.err, tt.context)
			if !strings.Contains(got, tt.context) {
				t.Errorf("message %q missing context %q", got, tt.context)
			}
			if !strings.Contains(got, tt.wantHint) {
				t.Errorf("message %q missing hint %q", got, tt.wantHint)
			}
		})
	}

	if formatErrorMessage(nil, "x") != "" {
		t.Error("nil error should format to empty string")
	}
}

func TestContentWidthBounds(t *testing.T) {
	w := contentWidth()
	if w < 40 || w > 120 {
		t.Errorf("contentWidth() = %d, want within [40, 120]", w)
	}
}

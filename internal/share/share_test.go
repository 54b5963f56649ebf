package share

import (
	"strings"
	"testing"

	apierrors "github.com/daehopark/malsum/internal/errors"
	"github.com/daehopark/malsum/internal/models"
)

func TestEncodeDecodeRoundtrip(t *testing.T) {
	snap := Snapshot{
		Reference:      "창세기 1:1",
		Text:           "1 태초에 하나님이 천지를 창조하시니라",
		Observation:    "1. 하나님은 창조주이십니다",
		Interpretation: "1. 히브리어 '바라'는 무에서의 창조를 뜻해요",
	}

	token, err := Encode(snap)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.HasPrefix(token, "m1.") {
		t.Errorf("token %q missing version prefix", token)
	}

	got, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != snap {
		t.Errorf("roundtrip mismatch:\n got  %+v\n want %+v", got, snap)
	}
}

func TestTokenIsURLSafe(t *testing.T) {
	snap := Snapshot{
		Reference: "시편 23:1-6",
		Text:      strings.Repeat("여호와는 나의 목자시니 내게 부족함이 없으리로다\n", 6),
	}
	token, err := Encode(snap)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	for _, c := range []string{"+", "/", "=", " "} {
		if strings.Contains(token, c) {
			t.Errorf("token contains %q", c)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "wrong prefix", token: "x9.abcdef"},
		{name: "not base64", token: "m1.!!!!"},
		{name: "not deflate", token: "m1.aGVsbG8"},
		{name: "truncated", token: "m1.q1YqSi1LLSrOzM9TslIyNDJW0lFQSsvPyc8DcY2M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.token)
			if err == nil {
				t.Fatal("expected error")
			}
			if !apierrors.IsShareDecodeError(err) {
				t.Errorf("err = %T, want ShareDecodeError", err)
			}
		})
	}
}

func TestDecodeRejectsMissingPassage(t *testing.T) {
	token, err := Encode(Snapshot{Observation: "내용만 있는 경우"})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	_, err = Decode(token)
	if !apierrors.IsShareDecodeError(err) {
		t.Errorf("err = %v, want ShareDecodeError for missing passage", err)
	}
}

func TestFromSessionAccessors(t *testing.T) {
	p := models.Passage{Reference: "요한복음 3:16", Text: "하나님이 세상을 이처럼 사랑하사"}
	var m models.MeditationContent
	m.Set(models.CategoryApplication, "1. 적용")

	snap := FromSession(p, m)
	if snap.Passage() != p {
		t.Errorf("Passage() = %+v", snap.Passage())
	}
	if !snap.Meditation().Has(models.CategoryApplication) {
		t.Error("Meditation() dropped the application content")
	}
}

func TestDefaultText(t *testing.T) {
	snap := Snapshot{
		Reference: "창세기 1:1",
		Text:      "1 태초에 하나님이 천지를 창조하시니라\n2 땅이 혼돈하고 공허하며",
		Observation: "1. 하나님은 어떤 분이신가?\n" +
			"이 본문에서 하나님은 창조주로 나타나십니다.",
	}

	got := DefaultText(snap)
	if !strings.HasPrefix(got, "<QT 나눔>\n창세기 1:1") {
		t.Errorf("header wrong:\n%s", got)
	}
	if !strings.Contains(got, "<말씀요약>") {
		t.Error("missing summary header")
	}
	if !strings.Contains(got, "태초에 하나님이") {
		t.Error("missing passage digest")
	}
	if strings.Contains(got, "1. 하나님은") {
		t.Error("enumerated meditation lines must be filtered out")
	}
	if !strings.Contains(got, "창조주로 나타나십니다") {
		t.Error("prose meditation lines must be kept")
	}
}

func TestPassageDigestCapsLength(t *testing.T) {
	long := strings.Repeat("가", 400)
	digest := passageDigest(long)
	runes := []rune(digest)
	if len(runes) != defaultDigestLimit+3 {
		t.Errorf("digest length = %d runes, want %d plus ellipsis", len(runes), defaultDigestLimit+3)
	}
	if !strings.HasSuffix(digest, "...") {
		t.Error("long digest must end with an ellipsis")
	}
}

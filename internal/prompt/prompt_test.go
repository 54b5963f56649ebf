package prompt

import (
	"strings"
	"testing"

	"github.com/daehopark/malsum/internal/models"
)

func TestPolicyBlockConstraints(t *testing.T) {
	musts := []string{
		"해요체",
		"개역한글판",
		"삼위일체",
		"마크다운 강조 문법",
	}
	for _, want := range musts {
		if !strings.Contains(PolicyBlock, want) {
			t.Errorf("PolicyBlock missing %q", want)
		}
	}
}

func TestForCategory(t *testing.T) {
	tests := []struct {
		category models.Category
		want     Operation
	}{
		{models.CategoryObservation, OpObservation},
		{models.CategoryInterpretation, OpInterpretation},
		{models.CategoryApplication, OpApplication},
	}
	for _, tt := range tests {
		if got := ForCategory(tt.category); got != tt.want {
			t.Errorf("ForCategory(%v) = %v, want %v", tt.category, got, tt.want)
		}
	}
}

func TestPassageLookup(t *testing.T) {
	p := PassageLookup("창세기 1:1")
	if !strings.Contains(p, "창세기 1:1") {
		t.Error("lookup prompt missing the reference")
	}
	if !strings.Contains(p, "개역한글판") {
		t.Error("lookup prompt must pin the translation")
	}
	if !strings.Contains(p, "절 번호를 포함") {
		t.Error("lookup prompt must demand verse numbers")
	}

	// Deterministic: same input, same string.
	if p != PassageLookup("창세기 1:1") {
		t.Error("PassageLookup is not deterministic")
	}
}

func TestMeditationEmbedsPassage(t *testing.T) {
	passage := "태초에 하나님이 천지를 창조하시니라"
	for _, c := range models.AllCategories() {
		got := Meditation(c, passage)
		if !strings.Contains(got, passage) {
			t.Errorf("%v prompt missing passage text", c)
		}
		if !strings.Contains(got, "3가지") {
			t.Errorf("%v prompt must ask for three items", c)
		}
		if !strings.Contains(got, "별표나 언더스코어") {
			t.Errorf("%v prompt missing the shared symbol rules", c)
		}
	}
}

func TestMeditationCategoryFraming(t *testing.T) {
	passage := "본문"
	tests := []struct {
		category models.Category
		want     string
	}{
		{models.CategoryObservation, "말씀관찰 질문"},
		{models.CategoryInterpretation, "성경주석 해석"},
		{models.CategoryApplication, "말씀적용 질문"},
	}
	for _, tt := range tests {
		if got := Meditation(tt.category, passage); !strings.Contains(got, tt.want) {
			t.Errorf("Meditation(%v) missing %q", tt.category, tt.want)
		}
	}
}

func TestChatQuestion(t *testing.T) {
	p := &models.Passage{Reference: "창세기 1:1", Text: "태초에"}
	got := ChatQuestion(p, "이 말씀의 배경은?")
	want := "[현재 묵상중인 본문: 창세기 1:1]\n질문: 이 말씀의 배경은?"
	if got != want {
		t.Errorf("ChatQuestion = %q, want %q", got, want)
	}

	if got := ChatQuestion(nil, "일반 질문"); got != "일반 질문" {
		t.Errorf("ChatQuestion without passage = %q, want passthrough", got)
	}
}

func TestShareSummary(t *testing.T) {
	passage := models.Passage{Reference: "시편 23:1", Text: "여호와는 나의 목자시니"}
	var meditation models.MeditationContent
	meditation.Set(models.CategoryObservation, "1. 관찰")

	got := ShareSummary(passage, meditation)
	if !strings.Contains(got, "시편 23:1") {
		t.Error("summary prompt missing reference")
	}
	if !strings.Contains(got, "말씀관찰: 1. 관찰") {
		t.Error("summary prompt missing observation content")
	}
	if !strings.Contains(got, "말씀해석: 없음") {
		t.Error("empty categories must read 없음")
	}
	if !strings.Contains(got, "<QT 나눔>") {
		t.Error("summary prompt missing the share format")
	}
}

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apierrors "github.com/daehopark/malsum/internal/errors"
	"github.com/daehopark/malsum/internal/gemini"
	"github.com/daehopark/malsum/internal/models"
	"github.com/daehopark/malsum/internal/session"
	"github.com/daehopark/malsum/internal/share"
)

func newTestModel(t *testing.T) (Model, *gemini.MockGenerator) {
	t.Helper()
	mock := &gemini.MockGenerator{
		PassageText: "태초에 하나님이 천지를 창조하시니라",
		ChatVal:     "답변이에요.",
		SummaryVal:  "<QT 나눔> 요약",
	}
	m := NewStudyModel(session.New(mock), false)
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return resized.(Model), mock
}

func TestNewStudyModelDefaults(t *testing.T) {
	m, _ := newTestModel(t)
	if m.readOnly {
		t.Error("study model must not start read-only")
	}
	if m.active != models.CategoryObservation {
		t.Errorf("active = %v, want observation", m.active)
	}
	if m.focus != focusReference {
		t.Error("initial focus should be the reference input")
	}
}

func TestViewNotReady(t *testing.T) {
	mock := &gemini.MockGenerator{}
	m := NewStudyModel(session.New(mock), false)
	if !strings.Contains(m.View(), "초기화") {
		t.Error("View before the first resize should show the init message")
	}
}

func TestWindowSizeMakesReady(t *testing.T) {
	mock := &gemini.MockGenerator{}
	m := NewStudyModel(session.New(mock), false)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if !updated.(Model).ready {
		t.Error("model should be ready after a window size message")
	}
}

func TestPassageMsgChainsObservation(t *testing.T) {
	m, _ := newTestModel(t)

	// Commit the passage the same way the lookup command would.
	p, err := m.session.Lookup(context.Background(), "창 1:1")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	updated, cmd := m.Update(passageMsg{passage: p})
	um := updated.(Model)
	if um.loadingPassage {
		t.Error("passage loading must clear")
	}
	if !um.loadingMed {
		t.Error("observation generation must start immediately")
	}
	if cmd == nil {
		t.Fatal("expected a follow-up command")
	}
	if um.active != models.CategoryObservation {
		t.Errorf("active = %v, want observation", um.active)
	}
}

func TestMeditationMsgRefreshesView(t *testing.T) {
	m, _ := newTestModel(t)
	if _, err := m.session.Lookup(context.Background(), "창 1:1"); err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if _, err := m.session.Generate(context.Background(), models.CategoryObservation, ""); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	m.loadingMed = true

	updated, _ := m.Update(meditationMsg{category: models.CategoryObservation, text: "1. observation"})
	um := updated.(Model)
	if um.loadingMed {
		t.Error("meditation loading must clear")
	}
	if !strings.Contains(um.View(), "창세기 1:1") {
		t.Error("view missing the passage reference")
	}
}

func TestCanceledMeditationIsNotAnError(t *testing.T) {
	m, _ := newTestModel(t)
	m.loadingMed = true

	updated, _ := m.Update(meditationErrMsg{category: models.CategoryInterpretation, err: context.Canceled})
	if updated.(Model).err != nil {
		t.Error("a superseded generation must not surface as an error")
	}

	updated, _ = m.Update(meditationErrMsg{category: models.CategoryInterpretation, err: errors.New("boom")})
	if updated.(Model).err == nil {
		t.Error("real failures must surface")
	}
}

func TestChatErrMsg(t *testing.T) {
	m, _ := newTestModel(t)
	m.loadingChat = true

	updated, _ := m.Update(chatErrMsg{err: errors.New("network down")})
	um := updated.(Model)
	if um.loadingChat {
		t.Error("chat loading must clear on error")
	}
	if um.err == nil {
		t.Error("error must be stored for display")
	}
}

func TestShareMsgSetsNotice(t *testing.T) {
	m, _ := newTestModel(t)
	if _, err := m.session.Lookup(context.Background(), "창 1:1"); err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	m.loadingShare = true

	updated, _ := m.Update(shareMsg{summary: "<QT 나눔> 요약", copied: true})
	um := updated.(Model)
	if um.loadingShare {
		t.Error("share loading must clear")
	}
	if um.notice == "" {
		t.Error("notice must be set after sharing")
	}
	if !strings.Contains(um.View(), "나눔") {
		t.Error("view must surface the share result")
	}
}

func TestAnimationTickIncrementsWhileLoading(t *testing.T) {
	m, _ := newTestModel(t)
	m.loadingPassage = true

	updated, _ := m.Update(animationTickMsg(time.Now()))
	if updated.(Model).animationFrame != m.animationFrame+1 {
		t.Error("animation frame should advance while loading")
	}

	m.loadingPassage = false
	m.animationFrame = 0
	updated, _ = m.Update(animationTickMsg(time.Now()))
	if updated.(Model).animationFrame != 0 {
		t.Error("animation frame should hold when idle")
	}
}

func TestSharedModelView(t *testing.T) {
	snap := share.Snapshot{
		Reference:      "시편 23:1",
		Text:           "여호와는 나의 목자시니 내게 부족함이 없으리로다",
		Observation:    "1. 관찰",
		Interpretation: "1. 해석",
	}
	m := NewSharedModel(session.NewShared(snap))
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	sm := resized.(Model)

	view := sm.View()
	if !strings.Contains(view, "읽기 전용") {
		t.Error("shared view must be labeled read-only")
	}
	if !strings.Contains(view, "시편 23:1") {
		t.Error("shared view missing reference")
	}
}

func TestSharedModelTabKeys(t *testing.T) {
	snap := share.Snapshot{
		Reference:      "시편 23:1",
		Text:           "여호와는 나의 목자시니",
		Observation:    "1. 관찰",
		Interpretation: "1. 해석",
	}
	m := NewSharedModel(session.NewShared(snap))
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	sm := resized.(Model)

	updated, cmd := sm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
	um := updated.(Model)
	if um.active != models.CategoryInterpretation {
		t.Errorf("active = %v, want interpretation after pressing 2", um.active)
	}
	if um.loadingMed {
		t.Error("read-only tab switch must not trigger generation")
	}
	_ = cmd
}

func TestCycleCategoryWraps(t *testing.T) {
	snap := share.Snapshot{Reference: "창세기 1:1", Text: "본문"}
	m := NewSharedModel(session.NewShared(snap))
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	sm := resized.(Model)

	order := []models.Category{
		models.CategoryInterpretation,
		models.CategoryApplication,
		models.CategoryObservation,
	}
	cur := tea.Model(sm)
	for _, want := range order {
		cur, _ = cur.(Model).cycleCategory()
		if got := cur.(Model).active; got != want {
			t.Fatalf("active = %v, want %v", got, want)
		}
	}
}

func TestFormatUserError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "lookup failure",
			err:  apierrors.NewGenerationError("lookup", "본문을 찾을 수 없습니다", apierrors.ErrNoContent),
			want: "본문을 찾을 수 없어요",
		},
		{
			name: "busy",
			err:  apierrors.ErrBusy,
			want: "이전 요청",
		},
		{
			name: "no passage",
			err:  apierrors.ErrNoPassage,
			want: "본문을 검색",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatUserError(tt.err)
			if !strings.Contains(got, tt.want) {
				t.Errorf("formatUserError(%v) = %q, want substring %q", tt.err, got, tt.want)
			}
		})
	}
}

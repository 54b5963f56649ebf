package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apierrors "github.com/daehopark/malsum/internal/errors"
	"github.com/daehopark/malsum/internal/models"
	"github.com/daehopark/malsum/internal/render"
	"github.com/daehopark/malsum/internal/session"
)

// Animation tick message
type animationTickMsg time.Time

// Message types for the TUI
type (
	passageMsg struct {
		passage models.Passage
	}
	lookupErrMsg struct {
		err error
	}
	meditationMsg struct {
		category models.Category
		text     string
	}
	meditationErrMsg struct {
		category models.Category
		err      error
	}
	chatReplyMsg struct {
		reply models.ChatMessage
	}
	chatErrMsg struct {
		err error
	}
	shareMsg struct {
		summary string
		token   string
		copied  bool
	}
	shareErrMsg struct {
		err error
	}
)

// focusArea identifies which input currently receives keystrokes.
type focusArea int

const (
	focusReference focusArea = iota
	focusChat
)

// Model represents the study TUI state.
type Model struct {
	session  *session.Session
	readOnly bool

	// UI components
	viewport  viewport.Model
	refInput  textinput.Model
	chatInput textarea.Model
	spinner   spinner.Model

	// State
	focus          focusArea
	active         models.Category
	summary        string
	notice         string
	loadingPassage bool
	loadingMed     bool
	loadingChat    bool
	loadingShare   bool
	ready          bool
	err            error
	animationFrame int

	copyToClipboard bool

	// Dimensions
	width  int
	height int
}

// NewStudyModel creates the interactive study TUI model.
func NewStudyModel(s *session.Session, copyToClipboard bool) Model {
	ti := textinput.New()
	ti.Placeholder = "예: 창 1:1, 요 3:16"
	ti.CharLimit = 100
	ti.Focus()
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorText)

	ta := textarea.New()
	ta.Placeholder = "본문에 대해 궁금한 점을 물어보세요"
	ta.CharLimit = 2000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = loadingStyle

	return Model{
		session:         s,
		viewport:        viewport.New(80, 20),
		refInput:        ti,
		chatInput:       ta,
		spinner:         sp,
		focus:           focusReference,
		active:          models.CategoryObservation,
		copyToClipboard: copyToClipboard,
	}
}

// NewSharedModel creates a read-only view of a shared study.
func NewSharedModel(s *session.Session) Model {
	m := NewStudyModel(s, false)
	m.readOnly = true
	m.refInput.Blur()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
	)
}

// animationTick returns a command that sends animation tick messages.
func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return animationTickMsg(t)
	})
}

func (m Model) loading() bool {
	return m.loadingPassage || m.loadingMed || m.loadingChat || m.loadingShare
}

// lookupCmd fetches the passage named by input.
func (m Model) lookupCmd(input string) tea.Cmd {
	return func() tea.Msg {
		p, err := m.session.Lookup(context.Background(), input)
		if err != nil {
			return lookupErrMsg{err: err}
		}
		return passageMsg{passage: p}
	}
}

// generateCmd produces one meditation category. A non-empty override
// carries freshly fetched passage text past the cache.
func (m Model) generateCmd(category models.Category, override string) tea.Cmd {
	return func() tea.Msg {
		text, err := m.session.Generate(context.Background(), category, override)
		if err != nil {
			return meditationErrMsg{category: category, err: err}
		}
		return meditationMsg{category: category, text: text}
	}
}

// chatCmd sends one chat turn.
func (m Model) chatCmd(question string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.session.SendChat(context.Background(), question)
		if err != nil {
			return chatErrMsg{err: err}
		}
		return chatReplyMsg{reply: reply}
	}
}

// shareCmd generates the share summary and copies it together with
// the share token.
func (m Model) shareCmd() tea.Cmd {
	copyOut := m.copyToClipboard
	return func() tea.Msg {
		summary, err := m.session.Summarize(context.Background())
		if err != nil {
			return shareErrMsg{err: err}
		}
		token, err := m.session.ShareToken()
		if err != nil {
			return shareErrMsg{err: err}
		}
		copied := false
		if copyOut {
			payload := summary + "\n\n말씀 보기: malsum share open " + token
			if clipboard.WriteAll(payload) == nil {
				copied = true
			}
		}
		return shareMsg{summary: summary, token: token, copied: copied}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		inputHeight := 5
		statusHeight := 1
		padding := 2

		vpHeight := m.height - headerHeight - inputHeight - statusHeight - padding
		if vpHeight < 5 {
			vpHeight = 5
		}
		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
		}
		m.refInput.Width = contentWidth - 8
		m.chatInput.SetWidth(contentWidth - 4)
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.loading() {
				m.loadingPassage = false
				m.loadingMed = false
				m.loadingChat = false
				m.loadingShare = false
			} else {
				return m, tea.Quit
			}

		case "tab":
			if !m.readOnly {
				m.switchFocus()
			}

		case "shift+tab":
			return m.cycleCategory()

		case "left", "right", "1", "2", "3":
			// Direct tab switching only in read-only mode, where no
			// text input owns the keys.
			if m.readOnly {
				switch msg.String() {
				case "1":
					return m.selectCategory(models.CategoryObservation)
				case "2":
					return m.selectCategory(models.CategoryInterpretation)
				case "3":
					return m.selectCategory(models.CategoryApplication)
				case "left", "right":
					return m.cycleCategory()
				}
			}

		case "ctrl+s":
			if !m.loading() && m.session.Passage() != nil {
				m.loadingShare = true
				m.err = nil
				m.notice = ""
				m.animationFrame = 0
				return m, tea.Batch(m.shareCmd(), m.spinner.Tick, animationTick())
			}

		case "enter":
			if m.readOnly || m.loading() {
				break
			}
			switch m.focus {
			case focusReference:
				input := strings.TrimSpace(m.refInput.Value())
				if input == "" {
					break
				}
				m.loadingPassage = true
				m.err = nil
				m.notice = ""
				m.summary = ""
				m.active = models.CategoryObservation
				m.animationFrame = 0
				m.refInput.Reset()
				m.updateViewport()
				return m, tea.Batch(m.lookupCmd(input), m.spinner.Tick, animationTick())
			case focusChat:
				question := strings.TrimSpace(m.chatInput.Value())
				if question == "" {
					break
				}
				m.loadingChat = true
				m.err = nil
				m.notice = ""
				m.animationFrame = 0
				m.chatInput.Reset()
				return m, tea.Batch(m.chatCmd(question), m.spinner.Tick, animationTick())
			}
		}

	case passageMsg:
		m.loadingPassage = false
		m.active = models.CategoryObservation
		m.updateViewport()
		m.viewport.GotoTop()
		// The fresh text rides along so the observation starts
		// before the cache would allow it.
		m.loadingMed = true
		return m, tea.Batch(
			m.generateCmd(models.CategoryObservation, msg.passage.Text),
			m.spinner.Tick,
			animationTick(),
		)

	case lookupErrMsg:
		m.loadingPassage = false
		m.err = msg.err
		m.updateViewport()

	case meditationMsg:
		m.loadingMed = false
		m.updateViewport()

	case meditationErrMsg:
		m.loadingMed = false
		if !errors.Is(msg.err, context.Canceled) {
			m.err = msg.err
		}
		m.updateViewport()

	case chatReplyMsg:
		m.loadingChat = false
		m.updateViewport()
		m.viewport.GotoBottom()

	case chatErrMsg:
		m.loadingChat = false
		m.err = msg.err
		m.updateViewport()
		m.viewport.GotoBottom()

	case shareMsg:
		m.loadingShare = false
		m.summary = msg.summary
		if msg.copied {
			m.notice = "나눔 내용을 클립보드에 복사했어요"
		} else {
			m.notice = "나눔 내용이 준비되었어요"
		}
		m.updateViewport()
		m.viewport.GotoBottom()

	case shareErrMsg:
		m.loadingShare = false
		m.err = msg.err

	case spinner.TickMsg:
		if m.loading() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case animationTickMsg:
		if m.loading() {
			m.animationFrame++
			cmds = append(cmds, animationTick())
		}
	}

	// Only pass KeyMsg to the focused input to prevent escape
	// sequence leaks.
	if !m.loading() && !m.readOnly {
		if _, ok := msg.(tea.KeyMsg); ok {
			switch m.focus {
			case focusReference:
				m.refInput, cmd = m.refInput.Update(msg)
			case focusChat:
				m.chatInput, cmd = m.chatInput.Update(msg)
			}
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) switchFocus() {
	if m.focus == focusReference {
		m.focus = focusChat
		m.refInput.Blur()
		m.chatInput.Focus()
	} else {
		m.focus = focusReference
		m.chatInput.Blur()
		m.refInput.Focus()
	}
}

// cycleCategory advances the active meditation tab.
func (m Model) cycleCategory() (tea.Model, tea.Cmd) {
	all := models.AllCategories()
	for i, c := range all {
		if c == m.active {
			return m.selectCategory(all[(i+1)%len(all)])
		}
	}
	return m.selectCategory(models.CategoryObservation)
}

// selectCategory switches the visible tab and fills it on demand.
func (m Model) selectCategory(category models.Category) (tea.Model, tea.Cmd) {
	m.active = category
	if m.session.Passage() == nil {
		m.updateViewport()
		return m, nil
	}
	if m.readOnly || m.session.Meditation().Has(category) {
		m.updateViewport()
		return m, nil
	}
	if m.loadingMed {
		m.updateViewport()
		return m, nil
	}
	m.loadingMed = true
	m.err = nil
	m.animationFrame = 0
	m.updateViewport()
	return m, tea.Batch(m.generateCmd(category, ""), m.spinner.Tick, animationTick())
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  초기화 중...")
	}

	var sections []string
	contentWidth := m.width - 4

	// Header
	headerParts := []string{
		titleStyle.Render("✦ 말씀묵상"),
	}
	if p := m.session.Passage(); p != nil {
		headerParts = append(headerParts,
			hintStyle.Render("  •  "),
			subtitleStyle.Render(p.Reference),
		)
	}
	if m.readOnly {
		headerParts = append(headerParts,
			hintStyle.Render("  •  "),
			noticeStyle.Render("나눔받은 말씀 (읽기 전용)"),
		)
	}
	headerContent := lipgloss.JoinHorizontal(lipgloss.Center, headerParts...)
	sections = append(sections, headerStyle.Width(contentWidth).Render(headerContent))

	// Content area
	var content string
	if m.session.Passage() == nil && !m.loadingPassage {
		content = m.renderWelcome()
	} else {
		content = m.viewport.View()
	}
	sections = append(sections, contentAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(content))

	// Input panel
	sections = append(sections, m.renderInputPanel(contentWidth))

	// Status bar
	sections = append(sections, m.renderStatusBar(contentWidth))

	// Error display
	if m.err != nil {
		sections = append(sections, errorStyle.Render("⚠ "+formatUserError(m.err)))
	}
	if m.notice != "" {
		sections = append(sections, noticeStyle.Render("✔ "+m.notice))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderInputPanel(width int) string {
	var inputContent string
	switch {
	case m.loading():
		inputContent = m.renderLoadingAnimation()
	case m.readOnly:
		inputContent = hintStyle.Render("나눔받은 말씀은 읽기만 할 수 있어요")
	case m.focus == focusReference:
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("본문 검색"),
			m.refInput.View(),
		)
	default:
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("질문"),
			m.chatInput.View(),
		)
	}
	return inputPanelStyle.Width(width).Render(inputContent)
}

// renderWelcome renders the empty state before the first lookup.
func (m Model) renderWelcome() string {
	width := m.viewport.Width - 4
	height := m.viewport.Height

	icon := welcomeIconStyle.Width(width).Render("✦")
	title := welcomeTitleStyle.Width(width).Render("말씀묵상")
	var subtitle string
	if m.readOnly {
		subtitle = welcomeStyle.Width(width).Render("나눔받은 말씀을 불러오지 못했어요")
	} else {
		subtitle = welcomeStyle.Width(width).Render("묵상할 본문을 입력해 주세요 (예: 창 1:1)")
	}

	content := lipgloss.JoinVertical(lipgloss.Center, "", icon, "", title, "", subtitle, "")

	contentHeight := lipgloss.Height(content)
	topPadding := (height - contentHeight) / 2
	if topPadding < 0 {
		topPadding = 0
	}
	return strings.Repeat("\n", topPadding) + content
}

// renderLoadingAnimation renders the animated loading indicator.
func (m Model) renderLoadingAnimation() string {
	chars := []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

	frame := m.animationFrame
	spinIdx := frame % len(chars)
	spinColor := gradientColors[frame%len(gradientColors)]
	spin := lipgloss.NewStyle().Foreground(spinColor).Bold(true).Render(chars[spinIdx])

	barWidth := 20
	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		colorIdx := (i + frame) % len(gradientColors)
		style := lipgloss.NewStyle().Foreground(gradientColors[colorIdx])
		bar.WriteString(style.Render("█"))
	}

	label := " 말씀을 준비하고 있어요 "
	switch {
	case m.loadingPassage:
		label = " 본문을 찾고 있어요 "
	case m.loadingMed:
		label = " " + m.active.Label() + " 내용을 묵상하고 있어요 "
	case m.loadingChat:
		label = " 답변을 구하고 있어요 "
	case m.loadingShare:
		label = " 나눔 내용을 정리하고 있어요 "
	}
	text := lipgloss.NewStyle().Foreground(colorText).Render(label)

	return fmt.Sprintf("%s %s %s", spin, bar.String(), text)
}

// renderStatusBar renders the bottom status bar with shortcuts.
func (m Model) renderStatusBar(width int) string {
	type shortcut struct {
		key  string
		desc string
	}
	var shortcuts []shortcut
	if m.readOnly {
		shortcuts = []shortcut{
			{"1·2·3", "묵상 탭"},
			{"↑↓", "스크롤"},
			{"Esc", "종료"},
		}
	} else {
		shortcuts = []shortcut{
			{"Enter", "검색/질문"},
			{"Tab", "입력 전환"},
			{"S-Tab", "묵상 탭"},
			{"^S", "나눔"},
			{"Esc", "종료"},
		}
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, lipgloss.JoinHorizontal(
			lipgloss.Center,
			statusKeyStyle.Render(s.key),
			statusDescStyle.Render(" "+s.desc),
		))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(items, "  │  "))
	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// updateViewport refreshes the viewport content.
func (m *Model) updateViewport() {
	var content strings.Builder
	width := m.viewport.Width - 4
	if width < 20 {
		width = 20
	}

	p := m.session.Passage()
	if p == nil {
		m.viewport.SetContent("")
		return
	}

	// Passage
	content.WriteString(passageRefStyle.Render("📖 " + p.Reference))
	content.WriteString("\n")
	content.WriteString(passageStyle.Width(width).Render(p.Text))
	content.WriteString("\n\n")

	// Meditation tab bar
	content.WriteString(m.renderTabBar())
	content.WriteString("\n\n")

	// Active meditation
	meditation := m.session.Meditation()
	if text := meditation.Get(m.active); text != "" {
		rendered, err := render.MarkdownWithWidth(text, width)
		if err != nil {
			rendered = text
		}
		content.WriteString(strings.TrimRight(rendered, "\n"))
		content.WriteString("\n")
	} else if !m.loadingMed {
		content.WriteString(hintStyle.Render("  아직 묵상 내용이 없어요"))
		content.WriteString("\n")
	}

	// Chat transcript
	transcript := m.session.Transcript()
	if len(transcript) > 0 {
		content.WriteString("\n")
		content.WriteString(hintStyle.Render(strings.Repeat("─", width)))
		content.WriteString("\n\n")
		for _, msg := range transcript {
			if msg.Role == models.RoleUser {
				label := userLabelStyle.Render("⬤ 나")
				if msg.Status == models.StatusFailed {
					label += failedTagStyle.Render("  (전송 실패)")
				}
				content.WriteString(label + "\n")
				content.WriteString(userBubbleStyle.Width(width).Render(msg.Text))
			} else {
				content.WriteString(modelLabelStyle.Render("✦ 도우미") + "\n")
				rendered, err := render.MarkdownWithWidth(msg.Text, width-2)
				if err != nil {
					rendered = msg.Text
				}
				content.WriteString(modelBubbleStyle.Width(width).Render(strings.TrimRight(rendered, "\n")))
			}
			content.WriteString("\n\n")
		}
	}

	// Share summary
	if m.summary != "" {
		content.WriteString(hintStyle.Render(strings.Repeat("─", width)))
		content.WriteString("\n\n")
		content.WriteString(noticeStyle.Render("나눔 요약") + "\n")
		content.WriteString(passageStyle.Width(width).Render(m.summary))
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// renderTabBar renders the three meditation category tabs.
func (m Model) renderTabBar() string {
	meditation := m.session.Meditation()
	var tabs []string
	for _, c := range models.AllCategories() {
		label := c.Label()
		switch {
		case c == m.active:
			tabs = append(tabs, tabActiveStyle.Render("▸ "+label))
		case meditation.Has(c):
			tabs = append(tabs, tabInactiveStyle.Render("  "+label))
		default:
			tabs = append(tabs, tabEmptyStyle.Render("  "+label))
		}
	}
	return strings.Join(tabs, "   ")
}

// formatUserError maps internal errors onto user-facing Korean text.
func formatUserError(err error) string {
	switch {
	case err == nil:
		return ""
	case apierrors.IsGenerationError(err, "lookup"):
		return "본문을 찾을 수 없어요. 장과 절까지 입력해 주세요 (예: 창 1:1)"
	case errors.Is(err, apierrors.ErrBusy):
		return "아직 이전 요청을 처리하고 있어요"
	case errors.Is(err, apierrors.ErrNoPassage):
		return "먼저 묵상할 본문을 검색해 주세요"
	default:
		return err.Error()
	}
}

// RunStudy starts the interactive study TUI.
func RunStudy(s *session.Session, copyToClipboard bool) error {
	p := tea.NewProgram(NewStudyModel(s, copyToClipboard), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunShared starts the read-only TUI for a shared study.
func RunShared(s *session.Session) error {
	p := tea.NewProgram(NewSharedModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

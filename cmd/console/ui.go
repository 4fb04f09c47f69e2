package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/newsroom-engine/pkg/article"
	"github.com/jwebster45206/newsroom-engine/pkg/simulation"
)

const (
	TitlePlaceholder   = "기사 제목을 입력하세요..."
	ContentPlaceholder = "기사 본문을 입력하세요..."
	YearPlaceholder    = "연도 (예: 1995)"
)

// uiScreen is which screen the UI is on.
type uiScreen int

const (
	screenEditor uiScreen = iota
	screenResults
	screenReply
)

// editorFocus is which input owns the keyboard on the editor screen.
type editorFocus int

const (
	focusTitle editorFocus = iota
	focusContent
	focusYear
)

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config    *ConsoleConfig
	client    *http.Client
	sessionID uuid.UUID

	screen uiScreen
	focus  editorFocus

	titleInput  textinput.Model
	contentArea textarea.Model
	yearInput   textinput.Model
	replyInput  textinput.Model

	resultViewport viewport.Model
	metaViewport   viewport.Model

	draft  article.Article
	result *simulation.Result

	// selectedComment indexes result.Comments on the results screen.
	selectedComment int

	ready   bool
	width   int
	height  int
	err     error
	loading bool

	// Quit confirmation state
	showQuitModal bool

	// Progress bar state
	progressTick int
}

type draftMsg struct {
	draft *article.Draft
	err   error
}

type simulateMsg struct {
	response *SimulateResponse
	err      error
}

type reactionMsg struct {
	commentIndex int
	replies      []simulation.Reply
	err          error
}

type progressTickMsg struct{}

var (
	mainPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	commentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	selectedCommentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	replyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // grey

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	activeModeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // yellow
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, sessionID uuid.UUID) ConsoleUI {
	ti := textinput.New()
	ti.Placeholder = TitlePlaceholder
	ti.CharLimit = 200
	ti.Focus()

	ca := textarea.New()
	ca.Placeholder = ContentPlaceholder
	ca.CharLimit = 4000
	ca.SetWidth(50)
	ca.SetHeight(8)
	ca.ShowLineNumbers = false

	yi := textinput.New()
	yi.Placeholder = YearPlaceholder
	yi.CharLimit = 4

	ri := textinput.New()
	ri.Placeholder = "댓글에 답글을 입력하세요..."
	ri.CharLimit = 500

	resultVp := viewport.New(50, 20)
	resultVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ConsoleUI{
		config:         cfg,
		client:         client,
		sessionID:      sessionID,
		screen:         screenEditor,
		focus:          focusTitle,
		titleInput:     ti,
		contentArea:    ca,
		yearInput:      yi,
		replyInput:     ri,
		resultViewport: resultVp,
		metaViewport:   metaVp,
		draft: article.Article{
			Category: article.DefaultCategory,
		},
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return textinput.Blink
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true

	case draftMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.titleInput.SetValue(msg.draft.Title)
		m.contentArea.SetValue(msg.draft.Content)
		m.draft.Category = msg.draft.Category
		m.metaViewport.SetContent(m.writeMetadata())
		return m, nil

	case simulateMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.result = msg.response.Result
		m.selectedComment = 0
		m.screen = screenResults
		m.writeResultContent()
		m.metaViewport.SetContent(m.writeMetadata())
		return m, nil

	case reactionMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else if m.result != nil && msg.commentIndex < len(m.result.Comments) {
			m.err = nil
			c := &m.result.Comments[msg.commentIndex]
			c.Replies = append(c.Replies, msg.replies...)
		}
		m.screen = screenResults
		m.writeResultContent()
		return m, nil

	case progressTickMsg:
		if m.loading {
			m.progressTick++
			if m.screen != screenEditor {
				m.writeResultContent()
			}
			return m, progressTick()
		}

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if msg.Type == tea.KeyEsc && m.screen == screenReply {
				m.screen = screenResults
				m.replyInput.Blur()
				return m, nil
			}
			if msg.Type == tea.KeyEsc && m.screen == screenResults {
				m.screen = screenEditor
				m.focusEditor()
				return m, textinput.Blink
			}
			m.showQuitModal = true
			return m, nil
		}

		switch m.screen {
		case screenEditor:
			return m.updateEditor(msg)
		case screenResults:
			return m.updateResults(msg)
		case screenReply:
			return m.updateReply(msg)
		}
	}

	return m.updateComponents(msg)
}

func (m ConsoleUI) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyTab:
		m.cycleFocus()
		return m, textinput.Blink

	case tea.KeyF2:
		m.draft.EmergencyMode = !m.draft.EmergencyMode
		m.metaViewport.SetContent(m.writeMetadata())
		return m, nil

	case tea.KeyF3:
		m.draft.CrazyMode = !m.draft.CrazyMode
		m.metaViewport.SetContent(m.writeMetadata())
		return m, nil

	case tea.KeyF4:
		m.draft.FakeNewsMode = !m.draft.FakeNewsMode
		m.metaViewport.SetContent(m.writeMetadata())
		return m, nil

	case tea.KeyF5:
		m.draft.TimeMachineMode = !m.draft.TimeMachineMode
		if !m.draft.TimeMachineMode && m.focus == focusYear {
			m.focus = focusTitle
			m.focusEditor()
		}
		m.metaViewport.SetContent(m.writeMetadata())
		return m, nil

	case tea.KeyF6:
		m.draft.Category = nextCategory(m.draft.Category)
		m.metaViewport.SetContent(m.writeMetadata())
		return m, nil

	case tea.KeyCtrlR:
		m.loading = true
		m.progressTick = 0
		m.err = nil
		return m, tea.Batch(m.fetchRandomArticle(), progressTick())

	case tea.KeyCtrlS:
		a := m.snapshotArticle()
		if err := a.Validate(); err != nil {
			m.err = err
			return m, nil
		}
		m.loading = true
		m.progressTick = 0
		m.err = nil
		return m, tea.Batch(m.submitArticle(a), progressTick())
	}

	return m.updateComponents(msg)
}

func (m ConsoleUI) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyUp:
		if m.selectedComment > 0 {
			m.selectedComment--
			m.writeResultContent()
		}
		return m, nil

	case tea.KeyDown:
		if m.result != nil && m.selectedComment < len(m.result.Comments)-1 {
			m.selectedComment++
			m.writeResultContent()
		}
		return m, nil

	case tea.KeyEnter:
		if m.result == nil || len(m.result.Comments) == 0 {
			return m, nil
		}
		m.screen = screenReply
		m.replyInput.Reset()
		m.replyInput.Focus()
		return m, textinput.Blink
	}

	return m.updateComponents(msg)
}

func (m ConsoleUI) updateReply(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		reply := strings.TrimSpace(m.replyInput.Value())
		if reply == "" {
			return m, nil
		}
		m.loading = true
		m.progressTick = 0
		m.err = nil
		m.replyInput.Blur()
		return m, tea.Batch(m.submitReply(m.selectedComment, reply), progressTick())
	}

	var cmd tea.Cmd
	m.replyInput, cmd = m.replyInput.Update(msg)
	return m, cmd
}

func (m ConsoleUI) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		caCmd tea.Cmd
		yiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	m.titleInput, tiCmd = m.titleInput.Update(msg)
	m.contentArea, caCmd = m.contentArea.Update(msg)
	m.yearInput, yiCmd = m.yearInput.Update(msg)
	m.resultViewport, vpCmd = m.resultViewport.Update(msg)

	return m, tea.Batch(tiCmd, caCmd, yiCmd, vpCmd)
}

func (m ConsoleUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				if m.screen == screenEditor {
					m.focusEditor()
					return m, textinput.Blink
				}
				return m, nil
			}
		}
	}

	return m, nil
}

// snapshotArticle collects the editor state into the article sent to
// the API.
func (m *ConsoleUI) snapshotArticle() article.Article {
	a := m.draft
	a.Title = strings.TrimSpace(m.titleInput.Value())
	a.Content = strings.TrimSpace(m.contentArea.Value())
	if a.TimeMachineMode {
		a.TargetYear = strings.TrimSpace(m.yearInput.Value())
	} else {
		a.TargetYear = ""
	}
	return a
}

func (m *ConsoleUI) cycleFocus() {
	switch m.focus {
	case focusTitle:
		m.focus = focusContent
	case focusContent:
		if m.draft.TimeMachineMode {
			m.focus = focusYear
		} else {
			m.focus = focusTitle
		}
	case focusYear:
		m.focus = focusTitle
	}
	m.focusEditor()
}

func (m *ConsoleUI) focusEditor() {
	m.titleInput.Blur()
	m.contentArea.Blur()
	m.yearInput.Blur()

	switch m.focus {
	case focusTitle:
		m.titleInput.Focus()
	case focusContent:
		m.contentArea.Focus()
	case focusYear:
		m.yearInput.Focus()
	}
}

func (m *ConsoleUI) layout() {
	mainWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - mainWidth - 6

	m.titleInput.Width = mainWidth - 6
	m.contentArea.SetWidth(mainWidth - 4)
	m.contentArea.SetHeight(m.height - 12)
	m.yearInput.Width = 20
	m.replyInput.Width = mainWidth - 6

	m.resultViewport.Width = mainWidth - 2
	m.resultViewport.Height = m.height - 7
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4

	m.metaViewport.SetContent(m.writeMetadata())
	if m.result != nil {
		m.writeResultContent()
	}
}

func nextCategory(c article.Category) article.Category {
	categories := article.Categories()
	for i, cat := range categories {
		if cat == c {
			return categories[(i+1)%len(categories)]
		}
	}
	return article.DefaultCategory
}

func onOff(active bool) string {
	if active {
		return activeModeStyle.Render("ON")
	}
	return "off"
}

func (m *ConsoleUI) writeMetadata() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("편집국") + "\n\n")

	content.WriteString("Session:\n")
	content.WriteString(m.sessionID.String()[:8] + "...\n\n")

	content.WriteString("분류:\n")
	content.WriteString(string(m.draft.Category) + "\n\n")

	content.WriteString("모드:\n")
	content.WriteString(fmt.Sprintf("• 긴급 속보: %s\n", onOff(m.draft.EmergencyMode)))
	content.WriteString(fmt.Sprintf("• 황당 모드: %s\n", onOff(m.draft.CrazyMode)))
	content.WriteString(fmt.Sprintf("• 가짜 뉴스: %s\n", onOff(m.draft.FakeNewsMode)))
	content.WriteString(fmt.Sprintf("• 타임머신: %s\n", onOff(m.draft.TimeMachineMode)))
	content.WriteString("\n")

	content.WriteString("Commands:\n")
	switch m.screen {
	case screenEditor:
		content.WriteString("• Tab: 입력 전환\n")
		content.WriteString("• F2-F5: 모드 토글\n")
		content.WriteString("• F6: 분류 변경\n")
		content.WriteString("• Ctrl+R: 랜덤 기사\n")
		content.WriteString("• Ctrl+S: 발행\n")
	case screenResults:
		content.WriteString("• ↑/↓: 댓글 선택\n")
		content.WriteString("• Enter: 답글 달기\n")
		content.WriteString("• Esc: 편집으로\n")
	case screenReply:
		content.WriteString("• Enter: 답글 전송\n")
		content.WriteString("• Esc: 취소\n")
	}
	content.WriteString("• Ctrl+C: 종료\n")

	return content.String()
}

// writeResultContent renders the simulation result into the viewport.
func (m *ConsoleUI) writeResultContent() {
	if m.result == nil {
		return
	}
	width := m.resultViewport.Width - 6
	if width < 20 {
		width = 20
	}

	r := m.result
	var content strings.Builder

	content.WriteString(titleStyle.Render("시뮬레이션 결과") + "\n\n")
	content.WriteString(scoreStyle.Render(fmt.Sprintf("화제성 %.0f  신뢰도 %.0f  논란성 %.0f",
		r.ViralityScore, r.ReliabilityScore, r.ControversyScore)) + "\n")
	content.WriteString(fmt.Sprintf("예상 조회수 %d  공유 %d  여론 %s\n\n",
		r.ExpectedViews, r.ExpectedShares, r.Sentiment))

	content.WriteString(headingStyle.Render("데스크 피드백") + "\n")
	content.WriteString(wordwrap.String(r.EditorFeedback, width) + "\n\n")

	content.WriteString(headingStyle.Render("사회적 영향") + "\n")
	content.WriteString(wordwrap.String(r.SocialImpact, width) + "\n\n")

	if r.ExtraIndices != nil {
		content.WriteString(headingStyle.Render("지표") + "\n")
		content.WriteString(fmt.Sprintf("불안 %.0f  안정 %.0f  분노 %.0f\n\n",
			r.ExtraIndices.AnxietyIndex, r.ExtraIndices.StabilityIndex, r.ExtraIndices.AngerIndex))
	}

	for _, stock := range r.StockAnalysis {
		content.WriteString(headingStyle.Render(stock.IndexName) + "\n")
		content.WriteString(fmt.Sprintf("%.2f → %.2f\n", stock.StartValue, stock.EndValue))
		content.WriteString(wordwrap.String(stock.Commentary, width) + "\n\n")
	}

	if len(r.OtherMediaCoverage) > 0 {
		content.WriteString(headingStyle.Render("타 언론 보도") + "\n")
		for _, coverage := range r.OtherMediaCoverage {
			content.WriteString(fmt.Sprintf("• [%s] %s (%s)\n",
				coverage.Outlet, coverage.Headline, coverage.Tone))
		}
		content.WriteString("\n")
	}

	content.WriteString(separatorStyle.Render(strings.Repeat("─", width)) + "\n\n")
	content.WriteString(headingStyle.Render(fmt.Sprintf("댓글 (%d)", len(r.Comments))) + "\n\n")

	for i, c := range r.Comments {
		header := fmt.Sprintf("[%s] %s · 좋아요 %d · %s", c.Platform, c.Username, c.Likes, c.Sentiment)
		if i == m.selectedComment {
			content.WriteString(selectedCommentStyle.Render("▶ "+header) + "\n")
		} else {
			content.WriteString(commentStyle.Render("  "+header) + "\n")
		}
		content.WriteString("  " + wordwrap.String(c.Content, width-2) + "\n")
		for _, reply := range c.Replies {
			content.WriteString(replyStyle.Render(fmt.Sprintf("    ↳ %s: %s (좋아요 %d)",
				reply.Username, reply.Content, reply.Likes)) + "\n")
		}
		content.WriteString("\n")
	}

	if m.loading {
		content.WriteString(m.renderProgressBar())
	}

	m.resultViewport.SetContent(content.String())
}

func (m ConsoleUI) fetchRandomArticle() tea.Cmd {
	a := m.snapshotArticle()
	return func() tea.Msg {
		draft, err := requestRandomArticle(m.client, m.config.APIBaseURL, a)
		return draftMsg{draft, err}
	}
}

func (m ConsoleUI) submitArticle(a article.Article) tea.Cmd {
	return func() tea.Msg {
		resp, err := requestSimulation(m.client, m.config.APIBaseURL, m.sessionID, a)
		return simulateMsg{resp, err}
	}
}

func (m ConsoleUI) submitReply(commentIndex int, reply string) tea.Cmd {
	a := m.snapshotArticle()
	c := m.result.Comments[commentIndex]
	return func() tea.Msg {
		replies, err := requestReaction(m.client, m.config.APIBaseURL, a, c, reply)
		return reactionMsg{commentIndex, replies, err}
	}
}

func (m ConsoleUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("게임을 종료할까요?"))
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Y: 종료  N: 계속  Ctrl+C: 강제 종료"))

	modal := modalStyle.Width(50).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m ConsoleUI) View() string {
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	mainWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - mainWidth - 6

	var main string
	switch m.screen {
	case screenEditor:
		main = m.renderEditor(mainWidth)
	case screenResults:
		main = m.resultViewport.View()
	case screenReply:
		main = lipgloss.JoinVertical(lipgloss.Left,
			m.resultViewport.View(),
			separatorStyle.Render(strings.Repeat("─", mainWidth-4)),
			m.replyInput.View(),
		)
	}

	mainPanel := mainPanelStyle.Width(mainWidth).Height(m.height - 3).Render(main)
	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, mainPanel, metaPanel)
}

func (m ConsoleUI) renderEditor(mainWidth int) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("NEWSROOM ENGINE") + "\n\n")
	content.WriteString(headingStyle.Render("제목") + "\n")
	content.WriteString(m.titleInput.View() + "\n\n")
	content.WriteString(headingStyle.Render("본문") + "\n")
	content.WriteString(m.contentArea.View() + "\n")

	if m.draft.TimeMachineMode {
		content.WriteString("\n" + headingStyle.Render("타임머신 연도") + "\n")
		content.WriteString(m.yearInput.View() + "\n")
	}

	if m.loading {
		content.WriteString("\n" + m.renderProgressBar())
	}

	if m.err != nil {
		content.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()))
	}

	return content.String()
}

// renderProgressBar creates an animated progress bar for loading states
func (m ConsoleUI) renderProgressBar() string {
	usable := m.resultViewport.Width - 6
	if usable <= 0 {
		usable = 30 // fallback before sizing
	}

	if usable > 80 {
		usable = 80
	} else if usable < 10 {
		usable = 10
	}

	const totalFrames = 40
	frame := m.progressTick % totalFrames
	filled := (frame * usable) / totalFrames

	var bar strings.Builder
	for i := 0; i < usable; i++ {
		if i < filled {
			bar.WriteString("█")
		} else if i == filled && frame%4 < 2 {
			bar.WriteString("▓")
		} else {
			bar.WriteString("░")
		}
	}
	return separatorStyle.Render(bar.String())
}

// progressTick creates a command that sends a progress tick message
func progressTick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return progressTickMsg{}
	})
}

package studio

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/barnaia/redactor-studio/src/ui"
)

// accessWordEnv names the optional gate word. When unset the gate
// screen is skipped entirely.
const accessWordEnv = "REDACTOR_ACCESS_WORD"

type pickerKind int

const (
	pickNone pickerKind = iota
	pickMenu
	pickPlatform
	pickStyle
	pickTone
	pickCreativity
	pickPersona
	pickFormat
	pickTextModel
	pickImageModel
)

type instructionKind int

const (
	instrEditText instructionKind = iota
	instrEditImage
)

type choiceItem struct {
	label string
	desc  string
	value string
}

func (c choiceItem) Title() string       { return c.label }
func (c choiceItem) Description() string { return c.desc }
func (c choiceItem) FilterValue() string { return c.label }

type historyItem struct{ entry HistoryEntry }

func (h historyItem) Title() string { return h.entry.Topic }
func (h historyItem) Description() string {
	ts := time.UnixMilli(h.entry.Timestamp).Format("02/01 15:04")
	return fmt.Sprintf("%s · %s", ts, h.entry.MIMEType)
}
func (h historyItem) FilterValue() string { return h.entry.Topic }

// progressMsg streams pipeline milestones from the worker goroutine.
type progressMsg Progress

// generateDoneMsg is the final message of any content-producing task.
type generateDoneMsg struct {
	content *GeneratedContent
	err     error
}

type newsDoneMsg struct {
	news *FetchedNews
	err  error
}

type suggestDoneMsg struct {
	topics []string
	err    error
}

type hintsDoneMsg struct {
	hint string
	err  error
}

type modelsLoadedMsg struct {
	text  []ModelOption
	image []ModelOption
}

type ipDetectedMsg string

type elapsedTickMsg time.Time

type model struct {
	ctx    context.Context
	engine *Engine
	logger *zap.Logger

	accessWord string
	gateErr    string

	mode             ui.Mode
	picker           pickerKind
	instruction      instructionKind
	instructionTitle string
	platform         Platform

	textModelOpts  []ModelOption
	imageModelOpts []ModelOption

	list     list.Model
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	styles   ui.Styles

	working     bool
	workingText string
	progress    Progress
	status      string
	publicIP    string
	width       int
	height      int

	Program *tea.Program
}

func NewModel(ctx context.Context, engine *Engine, logger *zap.Logger) *model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	ta := textarea.New()
	ta.Placeholder = "Escribe tu tema aquí..."
	ta.SetHeight(3)
	ta.SetValue(engine.Settings.Settings.Topic)

	vp := viewport.New(0, 0)
	vp.SetContent("Bienvenido. Escribe un tema y pulsa ctrl+g para generar.")

	st := ui.NewStyles()

	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = st.Working

	m := &model{
		ctx:            ctx,
		engine:         engine,
		logger:         logger,
		accessWord:     os.Getenv(accessWordEnv),
		mode:           ui.ModeMain,
		platform:       PlatformLinkedIn,
		textModelOpts:  TextModelOptions,
		imageModelOpts: ImageModelOptions,
		list:           l,
		textarea:       ta,
		viewport:       vp,
		spinner:        s,
		styles:         st,
	}
	if m.accessWord != "" {
		m.mode = ui.ModeGate
		m.textarea.Placeholder = "Palabra de acceso..."
		m.textarea.SetValue("")
	}
	m.textarea.Focus()
	return m
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.loadModelsCmd(), m.detectIPCmd())
}

func (m *model) loadModelsCmd() tea.Cmd {
	return func() tea.Msg {
		text, image := m.engine.ListModelOptions(m.ctx)
		return modelsLoadedMsg{text: text, image: image}
	}
}

func (m *model) detectIPCmd() tea.Cmd {
	return func() tea.Msg {
		return ipDetectedMsg(DetectPublicIP(m.ctx))
	}
}

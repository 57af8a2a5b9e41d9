package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"msgstack/internal/config"
	"msgstack/internal/logger"
	"msgstack/internal/stack"
	"msgstack/internal/transcript"
)

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626"))
)

// writeClipboard 可在测试中替换。
var writeClipboard = clipboard.WriteAll

// saveConfig 可在测试中替换。
var saveConfig = config.Save

// Options 描述 TUI 的初始状态。
type Options struct {
	Config     config.Config
	ConfigPath string
	Entries    []transcript.Entry
	// Log 接收容器的调试日志；为空时使用默认入口。
	Log *logger.LogEntry
}

// Model 是承载单个堆叠容器的 Bubble Tea 模型。
type Model struct {
	cfg     config.Config
	cfgPath string
	entries []transcript.Entry
	log     *logger.LogEntry

	container *stack.Container
	frame     Frame
	filter    textinput.Model
	filtering bool
	query     string
	notice    string
	err       error
	width     int
	height    int
}

func New(opts Options) *Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter messages"
	ti.CharLimit = 0

	log := opts.Log
	if log == nil {
		log = logger.Named("stack")
	}
	m := &Model{
		cfg:     opts.Config,
		cfgPath: opts.ConfigPath,
		entries: opts.Entries,
		log:     log,
		filter:  ti,
		width:   80,
		height:  24,
	}
	m.rebuild()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.repaint()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filtering {
			return m, m.updateFilter(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.notice, m.err = "", nil
	switch msg.String() {
	case "q", "esc":
		return tea.Quit
	case "+", "=":
		m.cfg.MaxLines++
		m.container.SetMaxDisplayedLines(m.cfg.DisplayedLines())
	case "-":
		if m.cfg.MaxLines > 1 {
			m.cfg.MaxLines--
			m.container.SetMaxDisplayedLines(m.cfg.DisplayedLines())
		}
	case "0":
		m.cfg.MaxLines = 0
		m.container.SetMaxDisplayedLines(m.cfg.DisplayedLines())
	case "]":
		m.cfg.Spacing++
		m.container.SetSpacing(m.cfg.Spacing)
	case "[":
		if m.cfg.Spacing > 0 {
			m.cfg.Spacing--
			m.container.SetSpacing(m.cfg.Spacing)
		}
	case "r":
		m.cfg.RTL = !m.cfg.RTL
		m.container.SetDirection(directionFor(m.cfg.RTL))
	case "/":
		m.filtering = true
		m.filter.SetValue(m.query)
		return m.filter.Focus()
	case "y":
		if err := writeClipboard(VisibleText(m.container)); err != nil {
			m.err = fmt.Errorf("copy: %w", err)
		} else {
			m.notice = fmt.Sprintf("copied %d messages", m.frame.Visible)
		}
	case "w":
		if err := saveConfig(m.cfgPath, m.cfg); err != nil {
			m.err = fmt.Errorf("save config: %w", err)
		} else {
			m.notice = "config saved"
		}
	default:
		return nil
	}
	m.repaint()
	return nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		m.query = strings.TrimSpace(m.filter.Value())
		m.rebuild()
		return nil
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		if m.query != "" {
			m.query = ""
			m.rebuild()
		}
		return nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return cmd
}

// rebuild 重新创建容器，记录集合或过滤条件变化时使用。
func (m *Model) rebuild() {
	m.container = BuildStack(m.cfg, transcript.Filter(m.entries, m.query), m.log)
	m.repaint()
}

func (m *Model) repaint() {
	m.frame = Paint(m.container, m.width, max(m.height-1, 0))
}

func (m *Model) View() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(m.frame.Lines, "\n"))
	sb.WriteString("\n")
	if m.filtering {
		sb.WriteString(m.filter.View())
		return sb.String()
	}
	sb.WriteString(m.statusLine())
	return sb.String()
}

func (m *Model) statusLine() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	lines := "∞"
	if m.cfg.MaxLines > 0 {
		lines = fmt.Sprintf("%d", m.cfg.MaxLines)
	}
	dir := "ltr"
	if m.cfg.RTL {
		dir = "rtl"
	}
	parts := []string{
		fmt.Sprintf("visible %d/%d", m.frame.Visible, m.container.Len()),
		"lines " + lines,
		fmt.Sprintf("spacing %d", m.cfg.Spacing),
		dir,
	}
	if m.query != "" {
		parts = append(parts, "filter "+m.query)
	}
	if m.notice != "" {
		parts = append(parts, m.notice)
	}
	return statusStyle.Render(strings.Join(parts, " · "))
}

// Config 返回当前（可能已被按键修改的）配置。
func (m *Model) Config() config.Config {
	return m.cfg
}

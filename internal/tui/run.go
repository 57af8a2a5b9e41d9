package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"msgstack/internal/config"
)

// Result 返回 TUI 运行后的必要信息。
type Result struct {
	Config config.Config
}

// Run 封装 Bubble Tea 入口，返回最终的 UI 结果。
func Run(opts Options) (Result, error) {
	program := tea.NewProgram(New(opts), tea.WithAltScreen())
	m, err := program.Run()
	if err != nil {
		return Result{}, err
	}
	tuiModel, ok := m.(*Model)
	if !ok {
		return Result{}, errors.New("unexpected tui model")
	}
	return Result{Config: tuiModel.Config()}, nil
}

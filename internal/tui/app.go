// Package tui is the terminal live preview: it watches a design file (and
// optional order file), re-renders on change, and draws the receipt as a
// paper strip.
package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/FabioCZ/receipt-craft-fabs/internal/interp"
	"github.com/FabioCZ/receipt-craft-fabs/internal/preview"
	"github.com/FabioCZ/receipt-craft-fabs/pkg/design"
	"github.com/FabioCZ/receipt-craft-fabs/pkg/order"
)

const (
	minPaperWidth = 20
	maxPaperWidth = 64
	pollInterval  = 500 * time.Millisecond
)

// Messages
type tickMsg time.Time
type reloadMsg struct {
	receipt string
	err     error
}

// App is the live preview Bubble Tea model
type App struct {
	designPath string
	orderPath  string
	paperWidth int

	// UI state
	width    int
	height   int
	ready    bool
	quitting bool

	viewport viewport.Model

	// Last render
	receipt    string
	renderErr  error
	reloadedAt time.Time

	// Change detection
	designMod time.Time
	orderMod  time.Time
}

// NewApp creates the live preview for a design file. orderPath may be empty.
func NewApp(designPath, orderPath string, paperWidth int) *App {
	if paperWidth <= 0 {
		paperWidth = preview.DefaultWidth
	}

	return &App{
		designPath: designPath,
		orderPath:  orderPath,
		paperWidth: paperWidth,
	}
}

// Run starts the preview and blocks until the user quits
func Run(designPath, orderPath string, paperWidth int) error {
	_, err := tea.NewProgram(NewApp(designPath, orderPath, paperWidth), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.reloadCmd(),
		a.tickCmd(),
	)
}

func (a *App) tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// reloadCmd re-reads the watched files and renders the receipt
func (a *App) reloadCmd() tea.Cmd {
	designPath, orderPath, width := a.designPath, a.orderPath, a.paperWidth
	return func() tea.Msg {
		receipt, err := renderFiles(designPath, orderPath, width)
		return reloadMsg{receipt: receipt, err: err}
	}
}

func renderFiles(designPath, orderPath string, width int) (string, error) {
	doc, err := design.ParseFile(designPath)
	if err != nil {
		return "", err
	}
	if err := design.Validate(doc); err != nil {
		return "", err
	}

	var ord *order.Order
	if orderPath != "" {
		data, err := os.ReadFile(orderPath)
		if err != nil {
			return "", fmt.Errorf("failed to read order file: %w", err)
		}
		ord = &order.Order{}
		if err := json.Unmarshal(data, ord); err != nil {
			return "", fmt.Errorf("failed to parse order file: %w", err)
		}
	}

	cmds := interp.Render(doc, ord)
	return preview.Render(cmds, preview.Options{Width: width, Styled: true}), nil
}

// filesChanged reports whether a watched file's mtime moved since last check
func (a *App) filesChanged() bool {
	changed := false

	if mod, ok := mtime(a.designPath); ok && mod != a.designMod {
		a.designMod = mod
		changed = true
	}
	if a.orderPath != "" {
		if mod, ok := mtime(a.orderPath); ok && mod != a.orderMod {
			a.orderMod = mod
			changed = true
		}
	}

	return changed
}

func mtime(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			a.quitting = true
			return a, tea.Quit
		case "r":
			return a, a.reloadCmd()
		case "+", "=":
			if a.paperWidth < maxPaperWidth {
				a.paperWidth += 2
			}
			return a, a.reloadCmd()
		case "-":
			if a.paperWidth > minPaperWidth {
				a.paperWidth -= 2
			}
			return a, a.reloadCmd()
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		chromeHeight := 5 // header, status, help
		if !a.ready {
			a.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			a.ready = true
		} else {
			a.viewport.Width = msg.Width
			a.viewport.Height = msg.Height - chromeHeight
		}
		a.viewport.SetContent(a.paperView())

	case tickMsg:
		if a.filesChanged() {
			return a, tea.Batch(a.reloadCmd(), a.tickCmd())
		}
		return a, a.tickCmd()

	case reloadMsg:
		a.receipt = msg.receipt
		a.renderErr = msg.err
		a.reloadedAt = time.Now()
		if a.ready {
			a.viewport.SetContent(a.paperView())
		}
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// View renders the UI
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if !a.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Receipt Preview"))
	b.WriteByte('\n')
	b.WriteString(a.viewport.View())
	b.WriteByte('\n')
	b.WriteString(a.statusView())
	b.WriteByte('\n')
	b.WriteString(a.helpView())

	return b.String()
}

func (a *App) paperView() string {
	if a.renderErr != nil {
		return ErrorStyle.Render(fmt.Sprintf("render failed: %v", a.renderErr))
	}
	if a.receipt == "" {
		return StatusStyle.Render("(empty receipt)")
	}
	paper := PaperStyle.Width(a.paperWidth + 4).Render(a.receipt)
	if a.width > lipgloss.Width(paper) {
		paper = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, paper)
	}
	return paper
}

func (a *App) statusView() string {
	status := fmt.Sprintf("%s  width %d", a.designPath, a.paperWidth)
	if a.orderPath != "" {
		status += "  order " + a.orderPath
	}
	if !a.reloadedAt.IsZero() {
		status += "  reloaded " + a.reloadedAt.Format("15:04:05")
	}
	return StatusStyle.Render(status)
}

func (a *App) helpView() string {
	items := []string{
		RenderHelp("r", "reload"),
		RenderHelp("+/-", "width"),
		RenderHelp("↑/↓", "scroll"),
		RenderHelp("q", "quit"),
	}
	return StatusStyle.Render(strings.Join(items, "  "))
}

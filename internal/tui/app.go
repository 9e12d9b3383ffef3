// Package tui provides the interactive Bubble Tea dashboard for splyyt.
package tui

import (
	"errors"
	"strings"

	"github.com/diankaa7/splyyt/internal/config"
	"github.com/diankaa7/splyyt/internal/progression"
	"github.com/diankaa7/splyyt/internal/store"
	"github.com/diankaa7/splyyt/internal/tracker"
	"github.com/diankaa7/splyyt/internal/tui/components"
	"github.com/diankaa7/splyyt/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ProfileLoadedMsg is sent when the store has been opened and the profile
// decoded.
type ProfileLoadedMsg struct {
	Tracker   *tracker.Tracker
	Store     *store.Store
	Onboarded bool
	Err       error
}

const (
	tabDashboard = iota
	tabChart
	tabProfile
	tabShop
	tabSettings
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 120
	minContentHeight = 5
)

// App is the root Bubble Tea model.
type App struct {
	cfg config.Config

	// Data, set once ProfileLoadedMsg arrives
	tr      *tracker.Tracker
	st      *store.Store
	loaded  bool
	loadErr error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Onboarding slides (first launch only)
	onboarding bool
	slide      int

	// Active huh form, nil when no form is open
	form     *huh.Form
	formKind int
	formVals formValues

	// Per-tab cursors
	shopCursor     int
	settingsCursor int

	// Latest toast: unlock notification or persistence warning
	notice     string
	noticeWarn bool

	spinner spinner.Model
}

// NewApp creates a new TUI app model.
func NewApp(cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{cfg: cfg, spinner: sp}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(loadProfileCmd(a.cfg), a.spinner.Tick)
}

// loadProfileCmd opens the store and loads the profile off the UI loop.
func loadProfileCmd(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		st, err := store.Open(cfg.StorePath())
		if err != nil {
			return ProfileLoadedMsg{Err: err}
		}
		tr, err := tracker.Load(st)
		if err != nil {
			_ = st.Close()
			return ProfileLoadedMsg{Err: err}
		}
		onboarded, err := tr.Onboarded()
		if err != nil {
			onboarded = false
		}
		return ProfileLoadedMsg{Tracker: tr, Store: st, Onboarded: onboarded}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width-4, 60))
		}
		return a, nil

	case ProfileLoadedMsg:
		if msg.Err != nil {
			a.loadErr = msg.Err
			a.loaded = true
			return a, nil
		}
		a.tr = msg.Tracker
		a.st = msg.Store
		a.loaded = true
		a.onboarding = !msg.Onboarded

		// On-demand evaluation at launch: week-no-spend can fire here
		// with no mutation at all.
		unlocked, err := a.tr.EvaluateAchievements()
		a.setMutationNotice(unlocked, err)
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}

	// Forward everything else to the active form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, a.quit()
	}

	if !a.loaded {
		return a, nil
	}

	if a.onboarding {
		return a.updateOnboarding(key)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}

	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, a.quit()
	case "?":
		a.showHelp = true
		return a, nil
	case "i":
		return a.openForm(formIncome)
	case "e":
		return a.openForm(formExpense)
	case "g":
		return a.openForm(formGoal)
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			if idx == tabProfile {
				// The profile view re-checks unlock predicates.
				unlocked, err := a.tr.EvaluateAchievements()
				a.setMutationNotice(unlocked, err)
			}
			return a, nil
		}
	}

	switch a.activeTab {
	case tabShop:
		return a.updateShopKeys(key)
	case tabSettings:
		return a.updateSettingsKeys(key)
	}

	return a, nil
}

func (a App) quit() tea.Cmd {
	if a.st != nil {
		_ = a.st.Close()
	}
	return tea.Quit
}

// setMutationNotice turns a mutation result into the status-bar toast.
// Persistence failures become a warning; the session keeps running on the
// in-memory profile.
func (a *App) setMutationNotice(unlocked []progression.AchievementDef, err error) {
	var pe *tracker.PersistError
	if errors.As(err, &pe) {
		a.notice = "не удалось сохранить — изменения только на эту сессию"
		a.noticeWarn = true
		return
	}

	if len(unlocked) > 0 {
		names := make([]string, len(unlocked))
		for i, def := range unlocked {
			names[i] = def.Name
		}
		a.notice = "🏆 " + strings.Join(names, ", ")
		a.noticeWarn = false
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.loadErr != nil {
		return a.viewLoadError()
	}

	if a.onboarding {
		return a.viewOnboarding()
	}

	if a.form != nil {
		return a.viewForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w) + "\n"
	statusBar := components.RenderStatusBar(w, a.notice, a.noticeWarn)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabChart:
		content = a.renderChartTab(cw)
	case tabProfile:
		content = a.renderProfileTab(cw)
	case tabShop:
		content = a.renderShopTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewTooNarrow() string {
	msg := "\n  Терминал слишком узкий.\n  Нужно минимум 70 колонок.\n"
	return padHeight(msg, a.height)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	body := logoStyle.Render("◈ splyyt") + subStyle.Render(" · финансовый трекер") +
		"\n\n" + a.spinner.View() + subStyle.Render(" Загружаю профиль...")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(body))
}

func (a App) viewLoadError() string {
	t := theme.Active
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		errStyle.Render("Не удалось открыть профиль: "+a.loadErr.Error()))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	bindings := []struct{ key, desc string }{
		{"d c p s x", "Вкладки"},
		{"← → tab", "Соседняя вкладка"},
		{"i", "Добавить доход"},
		{"e", "Добавить трату"},
		{"g", "Поставить цель"},
		{"j k / Enter", "Выбор в списках"},
		{"?", "Помощь"},
		{"q", "Выход"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Клавиши"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(padRight(bind.key, 14)))
		b.WriteString(descStyle.Render(bind.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Любая клавиша закрывает"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

func padRight(s string, w int) string {
	if pad := w - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

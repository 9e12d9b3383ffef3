package tui

import (
	"fmt"
	"strings"

	"github.com/diankaa7/splyyt/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// onboardingSlides are shown once, on the very first launch.
var onboardingSlides = []struct {
	title string
	body  string
}{
	{
		title: "Привет! Это splyyt",
		body:  "Твой личный финансовый трекер:\nдоходы, траты и цели в одном месте.",
	},
	{
		title: "Записывай и планируй",
		body:  "Добавляй доходы и траты по категориям,\nставь финансовую цель и следи за прогрессом.",
	},
	{
		title: "Прокачивайся",
		body:  "За полезные привычки — XP, уровни\nи ачивки. От Новичка до Финансового Ниндзя!",
	},
}

func (a App) updateOnboarding(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "enter", "right", "l", " ":
		if a.slide < len(onboardingSlides)-1 {
			a.slide++
			return a, nil
		}
		return a.finishOnboarding()
	case "left", "h":
		if a.slide > 0 {
			a.slide--
		}
		return a, nil
	case "esc", "s":
		return a.finishOnboarding()
	case "q":
		return a, a.quit()
	}
	return a, nil
}

func (a App) finishOnboarding() (tea.Model, tea.Cmd) {
	if err := a.tr.SetOnboarded(); err != nil {
		a.notice = "не удалось сохранить — изменения только на эту сессию"
		a.noticeWarn = true
	}
	a.onboarding = false
	return a, nil
}

func (a App) viewOnboarding() string {
	t := theme.Active
	slide := onboardingSlides[a.slide]

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Width(54).
		Align(lipgloss.Center).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dotOn := lipgloss.NewStyle().Foreground(t.Accent)
	dotOff := lipgloss.NewStyle().Foreground(t.TextDim)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var dots strings.Builder
	for i := range onboardingSlides {
		if i == a.slide {
			dots.WriteString(dotOn.Render("●"))
		} else {
			dots.WriteString(dotOff.Render("○"))
		}
		if i < len(onboardingSlides)-1 {
			dots.WriteString(" ")
		}
	}

	next := "Enter — далее"
	if a.slide == len(onboardingSlides)-1 {
		next = "Enter — начать"
	}

	body := fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s",
		titleStyle.Render(slide.title),
		bodyStyle.Render(slide.body),
		dots.String(),
		hintStyle.Render(next+"   Esc — пропустить"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(body))
}

package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/diankaa7/splyyt/internal/ledger"
	"github.com/diankaa7/splyyt/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	formIncome = iota
	formExpense
	formGoal
)

// formValues holds the raw form inputs. Amounts stay strings until
// submission; huh validates them inline.
type formValues struct {
	label    string
	amount   string
	category string
}

func validateLabel(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("нужно заполнить")
	}
	return nil
}

func validateAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("введи число")
	}
	if v <= 0 {
		return errors.New("сумма должна быть больше нуля")
	}
	return nil
}

func (a App) openForm(kind int) (tea.Model, tea.Cmd) {
	a.formKind = kind
	a.formVals = formValues{category: ledger.CategoryFood}
	a.notice = ""

	switch kind {
	case formIncome:
		a.form = newIncomeForm(&a.formVals)
	case formExpense:
		a.form = newExpenseForm(&a.formVals)
	case formGoal:
		a.form = newGoalForm(&a.formVals)
	}

	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.width-4, 60))
	}
	return a, a.form.Init()
}

func newIncomeForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Источник").
				Placeholder("Работа, подарок...").
				Validate(validateLabel).
				Value(&v.label),
			huh.NewInput().
				Title("Сумма").
				Validate(validateAmount).
				Value(&v.amount),
		).Title("Новый доход"),
	)
}

func newExpenseForm(v *formValues) *huh.Form {
	opts := make([]huh.Option[string], len(ledger.Categories))
	for i, tag := range ledger.Categories {
		opts[i] = huh.NewOption(ledger.CategoryLabel(tag), tag)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Описание").
				Placeholder("Кофе, кино...").
				Validate(validateLabel).
				Value(&v.label),
			huh.NewInput().
				Title("Сумма").
				Validate(validateAmount).
				Value(&v.amount),
			huh.NewSelect[string]().
				Title("Категория").
				Options(opts...).
				Value(&v.category),
		).Title("Новая трата"),
	)
}

func newGoalForm(v *formValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Название цели").
				Placeholder("Путешествие...").
				Validate(validateLabel).
				Value(&v.label),
			huh.NewInput().
				Title("Сумма").
				Validate(validateAmount).
				Value(&v.amount),
		).Title("Финансовая цель"),
	)
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.submitForm()
		a.form = nil
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		return a, nil
	}

	return a, cmd
}

// submitForm applies the completed form to the tracker. Amounts already
// passed huh validation, so the parse cannot fail here.
func (a *App) submitForm() {
	amount, _ := strconv.ParseFloat(strings.TrimSpace(a.formVals.amount), 64)
	label := a.formVals.label

	switch a.formKind {
	case formIncome:
		unlocked, err := a.tr.RecordIncome(label, amount)
		a.setMutationNotice(unlocked, err)
	case formExpense:
		unlocked, err := a.tr.RecordExpense(label, amount, a.formVals.category)
		a.setMutationNotice(unlocked, err)
	case formGoal:
		unlocked, err := a.tr.SetGoal(label, amount)
		a.setMutationNotice(unlocked, err)
	}
}

func (a App) viewForm() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(a.form.View()))
}

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"decorquote/models"
	"decorquote/services/booking"
)

// App is the terminal rendition of the booking modal. It drives a
// BookingSessionService in-process: one key press is one flow action.
type App struct {
	ctx       context.Context
	svc       booking.BookingSessionService
	selection models.Selection
	catalog   []models.AddOn

	sessionID string
	view      *models.SessionView
	cursor    int
	field     int
	notice    *models.Notice
	status    string
	closed    bool
}

type detailField int

const (
	fieldName detailField = iota
	fieldPhone
	fieldDate
	fieldCount
)

var fieldLabels = [...]string{"Full Name", "Phone Number", "Event Date"}

type openedMsg struct{ view *models.SessionView }

type submitDoneMsg struct {
	res    *models.SubmitResult
	notice *models.Notice
	err    error
}

type errMsg struct{ err error }

type quitMsg struct{}

// New creates the app for one booking. catalog may be nil to use the service default.
func New(ctx context.Context, svc booking.BookingSessionService, selection models.Selection, catalog []models.AddOn) *App {
	return &App{ctx: ctx, svc: svc, selection: selection, catalog: catalog}
}

func (a *App) Init() tea.Cmd {
	return func() tea.Msg {
		session, err := a.svc.OpenSession(a.ctx, a.selection, a.catalog)
		if err != nil {
			return errMsg{err}
		}
		return openedMsg{booking.BuildSessionView(session)}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openedMsg:
		a.sessionID = msg.view.SessionID
		a.view = msg.view
		return a, nil
	case submitDoneMsg:
		return a.onSubmitDone(msg)
	case errMsg:
		a.status = msg.err.Error()
		return a, nil
	case quitMsg:
		return a, tea.Quit
	case tea.KeyMsg:
		return a.onKey(msg)
	}
	return a, nil
}

func (a *App) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return a, a.close()
	}
	if a.view == nil || a.closed {
		return a, nil
	}
	a.status = ""
	a.notice = nil

	if a.view.Step == models.StepAddons {
		return a.onAddonsKey(msg)
	}
	return a.onDetailsKey(msg)
}

func (a *App) onAddonsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	addons := a.view.AvailableAddons
	switch msg.String() {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(addons)-1 {
			a.cursor++
		}
	case " ":
		if len(addons) > 0 && addons[a.cursor].Type == models.AddOnCheckbox {
			a.apply(a.svc.ToggleAddon(a.ctx, a.sessionID, addons[a.cursor].ID))
		}
	case "+", "=", "right", "l":
		if len(addons) > 0 && addons[a.cursor].Type == models.AddOnQuantity {
			a.apply(a.svc.IncrementAddon(a.ctx, a.sessionID, addons[a.cursor].ID))
		}
	case "-", "left", "h":
		// The minus control is disabled at zero.
		if len(addons) > 0 && addons[a.cursor].CanDecrement {
			a.apply(a.svc.DecrementAddon(a.ctx, a.sessionID, addons[a.cursor].ID))
		}
	case "enter":
		a.apply(a.svc.Proceed(a.ctx, a.sessionID))
		a.field = int(fieldName)
	}
	return a, nil
}

func (a *App) onDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		a.field = (a.field + 1) % int(fieldCount)
		return a, nil
	case tea.KeyShiftTab, tea.KeyUp:
		a.field = (a.field + int(fieldCount) - 1) % int(fieldCount)
		return a, nil
	case tea.KeyCtrlB:
		if !a.view.Submitting {
			a.apply(a.svc.Back(a.ctx, a.sessionID))
		}
		return a, nil
	case tea.KeyEnter:
		return a, a.submit()
	case tea.KeyBackspace:
		a.editField(func(s string) string {
			if s == "" {
				return s
			}
			r := []rune(s)
			return string(r[:len(r)-1])
		})
		return a, nil
	case tea.KeyRunes, tea.KeySpace:
		text := string(msg.Runes)
		if msg.Type == tea.KeySpace {
			text = " "
		}
		a.editField(func(s string) string { return s + text })
		return a, nil
	}
	return a, nil
}

func (a *App) editField(edit func(string) string) {
	if a.view.Submitting {
		return
	}
	d := a.view.Details
	switch detailField(a.field) {
	case fieldName:
		d.Name = edit(d.Name)
	case fieldPhone:
		d.Phone = edit(d.Phone)
	case fieldDate:
		d.Date = edit(d.Date)
	}
	a.apply(a.svc.UpdateDetails(a.ctx, a.sessionID, d))
}

// submit runs the inquiry call off the event loop. The submit control stays
// disabled until submitDoneMsg arrives.
func (a *App) submit() tea.Cmd {
	if !a.view.SubmitEnabled {
		return nil
	}
	a.view.Submitting = true
	a.view.SubmitEnabled = false
	ctx, svc, id := a.ctx, a.svc, a.sessionID
	return func() tea.Msg {
		res, err := svc.Submit(ctx, id)
		notice, _ := svc.PopNotice(ctx, id)
		return submitDoneMsg{res: res, notice: notice, err: err}
	}
}

func (a *App) onSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	if a.closed {
		// Closed while the request was pending.
		return a, nil
	}
	a.notice = msg.notice
	if msg.res != nil && msg.res.Closed {
		a.closed = true
		return a, tea.Tick(1500*time.Millisecond, func(time.Time) tea.Msg { return quitMsg{} })
	}
	if msg.err != nil && a.notice == nil {
		a.status = msg.err.Error()
	}
	a.refresh()
	return a, nil
}

func (a *App) close() tea.Cmd {
	a.closed = true
	if a.sessionID != "" {
		_ = a.svc.CloseSession(a.ctx, a.sessionID)
	}
	return tea.Quit
}

func (a *App) apply(session *models.BookingSession, err error) {
	if err != nil {
		a.status = err.Error()
		return
	}
	a.view = booking.BuildSessionView(session)
	if a.cursor >= len(a.view.AvailableAddons) && a.cursor > 0 {
		a.cursor = len(a.view.AvailableAddons) - 1
	}
}

func (a *App) refresh() {
	view, err := a.svc.GetSessionView(a.ctx, a.sessionID)
	if err != nil {
		a.status = err.Error()
		return
	}
	a.view = view
}

var (
	frameStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2).Width(72)
	titleStyle    = lipgloss.NewStyle().Bold(true).Italic(true)
	subtitleStyle = lipgloss.NewStyle().Faint(true)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	footerStyle   = lipgloss.NewStyle().Faint(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failureStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

func (a *App) View() string {
	if a.view == nil {
		if a.status != "" {
			return failureStyle.Render(a.status) + "\n"
		}
		return "Opening booking...\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.view.Title) + "\n")
	b.WriteString(subtitleStyle.Render(strings.ToUpper(a.view.Subtitle)) + "\n\n")

	if !a.closed {
		if a.view.Step == models.StepAddons {
			a.renderAddons(&b)
		} else {
			a.renderDetails(&b)
		}
		b.WriteString("\n" + footerStyle.Render(a.footer()) + "\n")
	}

	if a.notice != nil {
		style := successStyle
		if a.notice.Kind == models.NoticeFailure {
			style = failureStyle
		}
		b.WriteString("\n" + style.Render(a.notice.Message) + "\n")
	}
	if a.status != "" {
		b.WriteString("\n" + failureStyle.Render(a.status) + "\n")
	}
	return frameStyle.Render(b.String()) + "\n"
}

func (a *App) renderAddons(b *strings.Builder) {
	b.WriteString(sectionStyle.Render("Included in Plan") + "\n")
	for _, f := range a.view.IncludedFeatures {
		b.WriteString("  ✓ " + f + "\n")
	}
	b.WriteString("\n" + sectionStyle.Render("Available Add-ons") + "\n")
	if len(a.view.AvailableAddons) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, addon := range a.view.AvailableAddons {
		control := "[ ]"
		if addon.Type == models.AddOnCheckbox && addon.Selected {
			control = "[x]"
		}
		if addon.Type == models.AddOnQuantity {
			control = fmt.Sprintf("- %d +", addon.Quantity)
		}
		line := fmt.Sprintf("%-8s %s  %s", control, addon.Name, priceStyle.Render(addon.Price))
		if i == a.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
}

func (a *App) renderDetails(b *strings.Builder) {
	b.WriteString(sectionStyle.Render("Order Summary") + "\n")
	for _, l := range a.view.Summary {
		fmt.Fprintf(b, "  %-40s %s\n", l.Label, priceStyle.Render(l.Price))
	}
	b.WriteString("\n")
	values := []string{a.view.Details.Name, a.view.Details.Phone, a.view.Details.Date}
	for i, label := range fieldLabels {
		prefix := "  "
		if i == a.field {
			prefix = cursorStyle.Render("> ")
		}
		fmt.Fprintf(b, "%s%-14s %s\n", prefix, label+":", values[i])
	}
}

func (a *App) footer() string {
	if a.view.Step == models.StepAddons {
		return "↑/↓ move · space toggle · +/- quantity · enter Proceed to Details · esc close"
	}
	submit := "enter Get Quotation"
	if !a.view.SubmitEnabled {
		submit = "Sending..."
	}
	return "tab next field · ctrl+b Back · " + submit + " · esc close"
}

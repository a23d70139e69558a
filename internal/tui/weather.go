package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adikari/dailydesk/internal/service"
)

// weatherTab owns the weather module: a city input and the lookup lifecycle.
type weatherTab struct {
	ctx   context.Context
	svc   *service.WeatherService
	input textinput.Model
	spin  spinner.Model
	panel panel[service.Reading]
}

func newWeatherTab(ctx context.Context, svc *service.WeatherService, defaultCity string) weatherTab {
	in := textinput.New()
	in.Prompt = "City: "
	in.PromptStyle = labelStyle
	in.Placeholder = "e.g. London"
	in.CharLimit = 40
	in.SetValue(defaultCity)
	in.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle))

	return weatherTab{ctx: ctx, svc: svc, input: in, spin: sp}
}

// init auto-fires one lookup for the default city, so the panel is populated
// without any user action.
func (t *weatherTab) init() tea.Cmd {
	return t.trigger()
}

// trigger dispatches a lookup for the current input. Empty or whitespace-only
// input never starts a call.
func (t *weatherTab) trigger() tea.Cmd {
	city := strings.TrimSpace(t.input.Value())
	if city == "" {
		return nil
	}
	seq := t.panel.begin()
	ctx, svc := t.ctx, t.svc
	return tea.Batch(t.spin.Tick, func() tea.Msg {
		reading, err := svc.Fetch(ctx, city)
		return weatherResultMsg{seq: seq, reading: reading, err: err}
	})
}

func (t *weatherTab) handleResult(msg weatherResultMsg) {
	if msg.err != nil {
		t.panel.fail(msg.seq, msg.err.Error())
		return
	}
	t.panel.resolve(msg.seq, msg.reading)
}

func (t *weatherTab) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "enter" {
		return t.trigger()
	}
	if t.panel.loading() {
		// inputs are inert while a call is in flight
		return nil
	}
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return cmd
}

func (t *weatherTab) handleSpinner(msg spinner.TickMsg) tea.Cmd {
	if !t.panel.loading() {
		return nil
	}
	var cmd tea.Cmd
	t.spin, cmd = t.spin.Update(msg)
	return cmd
}

func (t *weatherTab) view() string {
	var b strings.Builder
	b.WriteString(t.input.View())
	b.WriteString("\n\n")

	switch t.panel.phase {
	case phaseLoading:
		b.WriteString(t.spin.View() + " Fetching weather...")
	case phaseError:
		b.WriteString(errorBannerStyle.Render(t.panel.errMsg))
	case phaseSuccess:
		r := *t.panel.data
		lines := []string{
			titleStyle.Render(r.City),
			fmt.Sprintf("%s %s", labelStyle.Render("Temperature"), valueStyle.Render(r.Temperature)),
			fmt.Sprintf("%s   %s", labelStyle.Render("Condition"), valueStyle.Render(r.Condition)),
			fmt.Sprintf("%s        %s", labelStyle.Render("Wind"), valueStyle.Render(r.Wind)),
		}
		b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
		if r.Estimated {
			b.WriteString("\n" + hintStyle.Render("No station data for this city; showing an estimate."))
			if r.Suggestion != "" {
				b.WriteString("\n" + hintStyle.Render("Did you mean "+r.Suggestion+"?"))
			}
		}
	default:
		b.WriteString(hintStyle.Render("Type a city name and press enter."))
	}
	return b.String()
}

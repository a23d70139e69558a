package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adikari/dailydesk/internal/service"
)

// converterTab owns the INR conversion module: an amount input, a target
// currency selector, and the conversion lifecycle. Edits auto-fire after a
// quiet period; enter fires immediately.
type converterTab struct {
	ctx         context.Context
	svc         *service.CurrencyService
	amount      textinput.Model
	currencies  []string
	currencyIdx int
	debounce    time.Duration
	debounceSeq int
	spin        spinner.Model
	panel       panel[service.Conversion]
}

func newConverterTab(ctx context.Context, svc *service.CurrencyService, debounce time.Duration) converterTab {
	in := textinput.New()
	in.Prompt = "Amount (INR): "
	in.PromptStyle = labelStyle
	in.Placeholder = "e.g. 5000"
	in.CharLimit = 16
	in.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle))

	t := converterTab{
		ctx:        ctx,
		svc:        svc,
		amount:     in,
		currencies: service.Currencies(),
		debounce:   debounce,
		spin:       sp,
	}
	for i, code := range t.currencies {
		if code == "USD" {
			t.currencyIdx = i
		}
	}
	return t
}

func (t *converterTab) currency() string {
	return t.currencies[t.currencyIdx]
}

// trigger dispatches a conversion for the current amount and currency. The
// raw input goes to the service as-is; an empty amount comes back as the
// fixed validation failure, same as any other unparseable value.
func (t *converterTab) trigger() tea.Cmd {
	seq := t.panel.begin()
	ctx, svc := t.ctx, t.svc
	amount, target := t.amount.Value(), t.currency()
	return tea.Batch(t.spin.Tick, func() tea.Msg {
		conv, err := svc.Convert(ctx, amount, target)
		return conversionResultMsg{seq: seq, conversion: conv, err: err}
	})
}

// scheduleDebounce arms the auto-fire timer after an edit. Nothing is armed
// while the amount is absent, and every new edit invalidates older timers.
func (t *converterTab) scheduleDebounce() tea.Cmd {
	if strings.TrimSpace(t.amount.Value()) == "" {
		return nil
	}
	t.debounceSeq++
	seq := t.debounceSeq
	return tea.Tick(t.debounce, func(time.Time) tea.Msg {
		return convertDebounceMsg{seq: seq}
	})
}

func (t *converterTab) handleDebounce(msg convertDebounceMsg) tea.Cmd {
	if msg.seq != t.debounceSeq {
		return nil
	}
	return t.trigger()
}

func (t *converterTab) handleResult(msg conversionResultMsg) {
	if msg.err != nil {
		t.panel.fail(msg.seq, msg.err.Error())
		return
	}
	t.panel.resolve(msg.seq, msg.conversion)
}

func (t *converterTab) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return t.trigger()
	case "up":
		t.currencyIdx = (t.currencyIdx - 1 + len(t.currencies)) % len(t.currencies)
		return t.scheduleDebounce()
	case "down":
		t.currencyIdx = (t.currencyIdx + 1) % len(t.currencies)
		return t.scheduleDebounce()
	}
	if t.panel.loading() {
		return nil
	}
	before := t.amount.Value()
	var cmd tea.Cmd
	t.amount, cmd = t.amount.Update(msg)
	if t.amount.Value() != before {
		return tea.Batch(cmd, t.scheduleDebounce())
	}
	return cmd
}

func (t *converterTab) handleSpinner(msg spinner.TickMsg) tea.Cmd {
	if !t.panel.loading() {
		return nil
	}
	var cmd tea.Cmd
	t.spin, cmd = t.spin.Update(msg)
	return cmd
}

func (t *converterTab) view() string {
	var b strings.Builder
	b.WriteString(t.amount.View())
	b.WriteString("\n")

	choices := make([]string, 0, len(t.currencies))
	for i, code := range t.currencies {
		if i == t.currencyIdx {
			choices = append(choices, selectedChoiceStyle.Render(code))
		} else {
			choices = append(choices, choiceStyle.Render(code))
		}
	}
	b.WriteString(labelStyle.Render("Target: ") + strings.Join(choices, " "))
	b.WriteString("\n\n")

	switch t.panel.phase {
	case phaseLoading:
		b.WriteString(t.spin.View() + " Converting...")
	case phaseError:
		b.WriteString(errorBannerStyle.Render(t.panel.errMsg))
	case phaseSuccess:
		c := *t.panel.data
		lines := []string{
			fmt.Sprintf("%s %s", valueStyle.Render(fmt.Sprintf("₹%.2f", c.Amount)), labelStyle.Render("converts to")),
			successStyle.Render(fmt.Sprintf("%s %s", c.Result, c.Target)),
			hintStyle.Render(fmt.Sprintf("rate: 1 INR = %.3f %s", c.Rate, c.Target)),
		}
		b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	default:
		b.WriteString(hintStyle.Render("Enter an amount; it converts as you type."))
	}
	return b.String()
}

package tui

import (
	"context"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adikari/dailydesk/internal/service"
)

// quoteFaultMessage is shown when the client-side fault gate trips.
const quoteFaultMessage = "Could not reach the quote service. Please try again."

// quoteFaultRate is the probability the gate trips on any given trigger.
const quoteFaultRate = 0.10

// quoteTab owns the quote module. Unlike the other two modules, its error
// path is injected on the client side: a random gate in front of the
// controller fails one trigger in ten without ever calling the service.
type quoteTab struct {
	ctx   context.Context
	svc   *service.QuoteService
	rng   *rand.Rand
	spin  spinner.Model
	panel panel[service.Quote]
}

func newQuoteTab(ctx context.Context, svc *service.QuoteService, rng *rand.Rand) quoteTab {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle))
	return quoteTab{ctx: ctx, svc: svc, rng: rng, spin: sp}
}

func (t *quoteTab) trigger() tea.Cmd {
	seq := t.panel.begin()
	if t.rng.Float64() < quoteFaultRate {
		t.panel.fail(seq, quoteFaultMessage)
		return nil
	}
	ctx, svc := t.ctx, t.svc
	return tea.Batch(t.spin.Tick, func() tea.Msg {
		quote, err := svc.Random(ctx)
		return quoteResultMsg{seq: seq, quote: quote, err: err}
	})
}

func (t *quoteTab) handleResult(msg quoteResultMsg) {
	if msg.err != nil {
		t.panel.fail(msg.seq, msg.err.Error())
		return
	}
	t.panel.resolve(msg.seq, msg.quote)
}

func (t *quoteTab) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "enter" {
		return t.trigger()
	}
	return nil
}

func (t *quoteTab) handleSpinner(msg spinner.TickMsg) tea.Cmd {
	if !t.panel.loading() {
		return nil
	}
	var cmd tea.Cmd
	t.spin, cmd = t.spin.Update(msg)
	return cmd
}

func (t *quoteTab) view() string {
	var b strings.Builder

	switch t.panel.phase {
	case phaseLoading:
		b.WriteString(t.spin.View() + " Fetching a quote...")
	case phaseError:
		b.WriteString(errorBannerStyle.Render(t.panel.errMsg))
	case phaseSuccess:
		b.WriteString(renderQuote(*t.panel.data))
	default:
		// the default quote stands in until the first request
		b.WriteString(renderQuote(service.DefaultQuote()))
	}
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("Press enter for a new quote."))
	return b.String()
}

func renderQuote(q service.Quote) string {
	body := valueStyle.Render("“"+q.Text+"”") + "\n" + labelStyle.Render("— "+q.Author)
	return boxStyle.Render(body)
}

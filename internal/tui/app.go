package tui

import (
	"context"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adikari/dailydesk/internal/config"
	"github.com/adikari/dailydesk/internal/service"
)

const appName = "DailyDesk"

// Tab indices
const (
	tabWeather   = 0
	tabConverter = 1
	tabQuote     = 2
	tabCount     = 3
)

var tabNames = [tabCount]string{"Weather", "Converter", "Quotes"}

// Services bundles the canned backends the tabs call.
type Services struct {
	Weather  *service.WeatherService
	Currency *service.CurrencyService
	Quotes   *service.QuoteService
}

// App ties the three module tabs together. All three stay live; the active
// tab only decides which one is rendered, and results for a hidden tab still
// land in its state.
type App struct {
	keys      keyMap
	activeTab int
	weather   weatherTab
	converter converterTab
	quote     quoteTab
	status    string
	width     int
	height    int
}

// New builds the app. rng drives the quote module's client-side fault gate.
func New(ctx context.Context, cfg config.Config, svcs Services, rng *rand.Rand) *App {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &App{
		keys:      newKeyMap(),
		activeTab: tabWeather,
		weather:   newWeatherTab(ctx, svcs.Weather, cfg.Weather.DefaultCity),
		converter: newConverterTab(ctx, svcs.Currency, cfg.Converter.Debounce()),
		quote:     newQuoteTab(ctx, svcs.Quotes, rng),
		status:    "Ready. Press tab to switch modules.",
	}
}

// ---------------------------------------------------------------------------
// Bubble Tea interface: Init / Update / View
// ---------------------------------------------------------------------------

func (a *App) Init() tea.Cmd {
	// the weather module fetches its default city without user action
	return a.weather.init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case weatherResultMsg:
		a.weather.handleResult(msg)
		if msg.err == nil {
			a.status = "Weather updated for " + msg.reading.City + "."
		}
		return a, nil
	case conversionResultMsg:
		a.converter.handleResult(msg)
		if msg.err == nil {
			a.status = "Converted to " + msg.conversion.Target + "."
		}
		return a, nil
	case quoteResultMsg:
		a.quote.handleResult(msg)
		if msg.err == nil {
			a.status = "Here's a fresh quote."
		}
		return a, nil
	case convertDebounceMsg:
		return a, a.converter.handleDebounce(msg)
	case spinner.TickMsg:
		return a, tea.Batch(
			a.weather.handleSpinner(msg),
			a.converter.handleSpinner(msg),
			a.quote.handleSpinner(msg),
		)
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.NextTab):
		a.activeTab = (a.activeTab + 1) % tabCount
		a.status = "Viewing " + tabNames[a.activeTab] + "."
		return a, nil
	case key.Matches(msg, a.keys.PrevTab):
		a.activeTab = (a.activeTab - 1 + tabCount) % tabCount
		a.status = "Viewing " + tabNames[a.activeTab] + "."
		return a, nil
	}

	switch a.activeTab {
	case tabConverter:
		return a, a.converter.handleKey(msg)
	case tabQuote:
		return a, a.quote.handleKey(msg)
	default:
		return a, a.weather.handleKey(msg)
	}
}

func (a *App) View() string {
	header := a.renderHeader()

	var body string
	switch a.activeTab {
	case tabConverter:
		body = a.converter.view()
	case tabQuote:
		body = a.quote.view()
	default:
		body = a.weather.view()
	}

	main := header + "\n\n" + body
	statusLine := a.renderStatus(a.status)
	footer := a.renderFooter()
	return a.placeWithFooter(main, statusLine, footer)
}

// ---------------------------------------------------------------------------
// Layout
// ---------------------------------------------------------------------------

func (a *App) renderHeader() string {
	name := headerAppStyle.Render(appName)

	var tabs []string
	for i, tab := range tabNames {
		if i == a.activeTab {
			tabs = append(tabs, activeTabStyle.Render(tab))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(tab))
		}
	}
	tabBar := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))

	content := name + "  " + tabBar
	if a.width <= 0 {
		return headerBarStyle.Render(content)
	}
	return headerBarStyle.Width(a.width).Render(content)
}

func (a *App) footerBindings() []key.Binding {
	switch a.activeTab {
	case tabConverter:
		return []key.Binding{a.keys.NextTab, a.keys.Submit, a.keys.Currency, a.keys.Quit}
	case tabQuote:
		return []key.Binding{a.keys.NextTab, a.keys.NewQuote, a.keys.Quit}
	default:
		return []key.Binding{a.keys.NextTab, a.keys.Submit, a.keys.Quit}
	}
}

func (a *App) renderFooter() string {
	parts := make([]string, 0, 4)
	for _, binding := range a.footerBindings() {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, helpKeyStyle.Render(help.Key)+" "+help.Desc)
	}
	text := strings.Join(parts, "  ")
	if a.width == 0 {
		return footerStyle.Render(text)
	}
	return footerStyle.Render(padRight(text, a.width-footerStyle.GetHorizontalFrameSize()))
}

func (a *App) renderStatus(text string) string {
	if a.width == 0 {
		return statusBarStyle.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	return statusBarStyle.Render(padRight(flat, a.width-statusBarStyle.GetHorizontalFrameSize()))
}

func (a *App) placeWithFooter(body, statusLine, footer string) string {
	if a.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := a.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + statusLine + "\n" + footer
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

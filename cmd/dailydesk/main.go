package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/adikari/dailydesk/internal/config"
	"github.com/adikari/dailydesk/internal/server"
	"github.com/adikari/dailydesk/internal/service"
	"github.com/adikari/dailydesk/internal/tui"
)

func main() {
	// .env is optional; absence is the normal case
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices constructs the canned backends. A zero configured seed means
// seed from the clock; otherwise every run with the same seed replays the
// same fallback readings, quote draws, and fault gate decisions.
func buildServices(cfg config.Config) (server.Services, *rand.Rand) {
	seed := cfg.Service.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	latency := cfg.Service.Latency()
	svcs := server.Services{
		Weather:  service.NewWeatherService(latency, nil, rand.New(rand.NewSource(seed))),
		Currency: service.NewCurrencyService(latency, nil),
		Quotes:   service.NewQuoteService(latency, nil, rand.New(rand.NewSource(seed+1))),
	}
	faultRng := rand.New(rand.NewSource(seed + 2))
	return svcs, faultRng
}

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "dailydesk",
		Short:         "Weather, INR conversion, and quotes in one terminal dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svcs, faultRng := buildServices(cfg)
			app := tui.New(cmd.Context(), cfg, tui.Services{
				Weather:  svcs.Weather,
				Currency: svcs.Currency,
				Quotes:   svcs.Quotes,
			}, faultRng)
			_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
			return err
		},
	}

	root.AddCommand(newWeatherCmd(cfg), newConvertCmd(cfg), newQuoteCmd(cfg), newServeCmd(cfg))
	return root
}

func newWeatherCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "weather CITY",
		Short: "Look up one city and print the reading",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svcs, _ := buildServices(cfg)
			reading, err := svcs.Weather.Fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s, %s, wind %s\n", reading.City, reading.Temperature, reading.Condition, reading.Wind)
			if reading.Estimated {
				fmt.Println("(estimated; no station data for this city)")
				if reading.Suggestion != "" {
					fmt.Printf("did you mean %s?\n", reading.Suggestion)
				}
			}
			return nil
		},
	}
}

func newConvertCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "convert AMOUNT [CURRENCY]",
		Short: "Convert an INR amount (default target USD)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "USD"
			if len(args) == 2 {
				target = args[1]
			}
			svcs, _ := buildServices(cfg)
			conv, err := svcs.Currency.Convert(cmd.Context(), args[0], target)
			if err != nil {
				return err
			}
			fmt.Printf("₹%.2f = %s %s (rate %.3f)\n", conv.Amount, conv.Result, conv.Target, conv.Rate)
			return nil
		},
	}
}

func newQuoteCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print one random quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svcs, _ := buildServices(cfg)
			q, err := svcs.Quotes.Random(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%q\n    — %s\n", q.Text, q.Author)
			return nil
		},
	}
}

func newServeCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the three operations as JSON over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			svcs, _ := buildServices(cfg)
			srv := server.New(svcs)
			log.Printf("listening on %s", cfg.Server.Addr)
			return http.ListenAndServe(cfg.Server.Addr, srv.Handler())
		},
	}
}

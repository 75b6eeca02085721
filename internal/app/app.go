package app

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalary/internal/client"
	"github.com/fr4nk3nst1ner/langsalary/internal/config"
	"github.com/fr4nk3nst1ner/langsalary/internal/provider"
	"github.com/fr4nk3nst1ner/langsalary/internal/ui"
)

// App runs both providers and prints their comparison tables
type App struct {
	cfg      *config.Config
	logger   *pterm.Logger
	out      io.Writer
	progress io.Writer
}

// New validates cfg and builds an App. Nothing is requested before Run.
func New(cfg *config.Config, logger *pterm.Logger, out, progress io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled).WithWriter(io.Discard)
	}
	return &App{cfg: cfg, logger: logger, out: out, progress: progress}, nil
}

type report struct {
	source provider.Source
	title  string
}

// Run aggregates HeadHunter then SuperJob. Tables are printed only when
// both providers succeed.
func (a *App) Run(ctx context.Context) error {
	httpClient, err := client.CreateProxyHTTPClient(a.cfg.HTTP.Proxy, a.cfg.HTTP.Timeout)
	if err != nil {
		return err
	}

	reports := []report{
		{
			source: provider.NewHeadHunter(provider.HeadHunterConfig{
				BaseURL:      a.cfg.HeadHunter.BaseURL,
				UserAgent:    a.cfg.HeadHunter.UserAgent,
				SearchPrefix: a.cfg.HeadHunter.SearchPrefix,
				Area:         a.cfg.HeadHunter.Area,
				PeriodDays:   a.cfg.HeadHunter.PeriodDays,
				PerPage:      a.cfg.HeadHunter.PerPage,
			}, httpClient),
			title: a.cfg.HeadHunter.Title,
		},
		{
			source: provider.NewSuperJob(provider.SuperJobConfig{
				BaseURL:   a.cfg.SuperJob.BaseURL,
				Token:     a.cfg.SuperJob.Token,
				Town:      a.cfg.SuperJob.Town,
				Catalogue: a.cfg.SuperJob.Catalogue,
				Count:     a.cfg.SuperJob.Count,
			}, httpClient),
			title: a.cfg.SuperJob.Title,
		},
	}

	opts := []provider.Option{provider.WithLogger(a.logger)}
	if a.progress != nil && a.cfg.Display.Progress {
		opts = append(opts, provider.WithProgress(a.progress))
	}
	tableOpts := ui.TableOptions{
		GroupDigits: a.cfg.Display.GroupDigits,
		Colorize:    a.cfg.Display.Color,
	}

	tables := make([]string, 0, len(reports))
	for _, r := range reports {
		a.logger.Info("aggregating", a.logger.Args("provider", r.source.Name(), "languages", len(a.cfg.Languages)))

		result, err := provider.NewAggregator(r.source, a.cfg.Languages, opts...).Run(ctx)
		if err != nil {
			return err
		}

		table, err := ui.RenderTable(result, r.title, tableOpts)
		if err != nil {
			return err
		}
		tables = append(tables, table)
	}

	for i, table := range tables {
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		fmt.Fprintln(a.out, table)
	}
	return nil
}

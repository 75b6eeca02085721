package provider

import (
	"context"
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalary/internal/models"
)

// Source is one job platform seen through the capabilities pagination needs
type Source interface {
	Name() string
	// Currency is the code vacancies must be denominated in to be counted.
	Currency() string
	FetchPage(ctx context.Context, language string, page int) (models.Page, error)
	// HasNext reports whether another page should be requested after page.
	HasNext(page models.Page, next int) bool
	// Found folds the vacancy count reported on page into the running count.
	Found(acc int, page models.Page) int
}

// Aggregator walks every page of a Source for each language and averages salaries
type Aggregator struct {
	source    Source
	languages []string
	logger    *pterm.Logger
	progress  io.Writer
}

type Option func(*Aggregator)

// WithLogger sets the logger used for per-page tracing
func WithLogger(logger *pterm.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// WithProgress draws a progress bar (one tick per language) to w
func WithProgress(w io.Writer) Option {
	return func(a *Aggregator) {
		a.progress = w
	}
}

func NewAggregator(source Source, languages []string, opts ...Option) *Aggregator {
	a := &Aggregator{
		source:    source,
		languages: languages,
		logger:    pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled).WithWriter(io.Discard),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run aggregates every language in order. The first failed request aborts the run.
func (a *Aggregator) Run(ctx context.Context) (*models.AggregationResult, error) {
	result := models.NewAggregationResult(len(a.languages))

	var bar *pb.ProgressBar
	if a.progress != nil {
		bar = pb.New(len(a.languages)).
			SetWriter(a.progress).
			Set("prefix", a.source.Name()+" ")
		bar.Start()
		defer bar.Finish()
	}

	for _, language := range a.languages {
		stat, err := a.aggregateLanguage(ctx, language)
		if err != nil {
			return nil, err
		}
		result.Set(language, stat)

		a.logger.Info("language aggregated", a.logger.Args(
			"provider", a.source.Name(),
			"language", language,
			"found", stat.VacanciesFound,
			"processed", stat.VacanciesProcessed,
			"average", humanize.Comma(int64(stat.AverageSalary)),
		))
		if bar != nil {
			bar.Increment()
		}
	}

	return result, nil
}

func (a *Aggregator) aggregateLanguage(ctx context.Context, language string) (models.LanguageStat, error) {
	var estimates []float64
	found := 0

	for page := 0; ; {
		a.logger.Debug("fetching page", a.logger.Args(
			"provider", a.source.Name(),
			"language", language,
			"page", page,
		))

		current, err := a.source.FetchPage(ctx, language, page)
		if err != nil {
			return models.LanguageStat{}, fmt.Errorf("%s: %s page %d: %w", a.source.Name(), language, page, err)
		}
		estimates = append(estimates, a.estimate(current.Vacancies)...)
		found = a.source.Found(found, current)

		page++
		if !a.source.HasNext(current, page) {
			break
		}
	}

	return models.NewLanguageStat(found, estimates), nil
}

// estimate computes a fresh estimate per vacancy, skipping those without
// salary info or in another currency.
func (a *Aggregator) estimate(vacancies []models.Vacancy) []float64 {
	var estimates []float64
	for _, v := range vacancies {
		if v.Salary == nil {
			continue
		}
		if v.Currency != a.source.Currency() {
			a.logger.Trace("skipping vacancy in foreign currency", a.logger.Args("currency", v.Currency))
			continue
		}
		if salary, ok := v.Salary.Predict(); ok {
			estimates = append(estimates, salary)
		}
	}
	return estimates
}

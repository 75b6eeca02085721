package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/langsalary/internal/models"
	"github.com/fr4nk3nst1ner/langsalary/internal/salary"
)

// fakeSource serves canned pages per language and records each request
type fakeSource struct {
	pages    map[string][]models.Page
	err      error
	requests []string
}

func (f *fakeSource) Name() string     { return "Fake" }
func (f *fakeSource) Currency() string { return "rub" }

func (f *fakeSource) FetchPage(_ context.Context, language string, page int) (models.Page, error) {
	f.requests = append(f.requests, language)
	if f.err != nil {
		return models.Page{}, f.err
	}
	return f.pages[language][page], nil
}

func (f *fakeSource) HasNext(_ models.Page, next int) bool {
	return next < len(f.pages[f.requests[len(f.requests)-1]])
}

func (f *fakeSource) Found(_ int, page models.Page) int { return page.Found }

func rub(from, to int) models.Vacancy {
	b := salary.NewBound(from, to)
	return models.Vacancy{Currency: "rub", Salary: &b}
}

func usd(from, to int) models.Vacancy {
	b := salary.NewBound(from, to)
	return models.Vacancy{Currency: "usd", Salary: &b}
}

func TestAggregatorAveragesSinglePage(t *testing.T) {
	src := &fakeSource{pages: map[string][]models.Page{
		"Go": {{Found: 5, Vacancies: []models.Vacancy{
			rub(100, 100),
			rub(200, 200),
			rub(300, 300),
			{Currency: "rub"},
			rub(0, 0),
		}}},
	}}

	result, err := NewAggregator(src, []string{"Go"}).Run(context.Background())
	require.NoError(t, err)

	stat, ok := result.Stat("Go")
	require.True(t, ok)
	assert.Equal(t, models.LanguageStat{VacanciesFound: 5, VacanciesProcessed: 3, AverageSalary: 200}, stat)
}

func TestAggregatorKeepsLanguagesWithoutMatches(t *testing.T) {
	src := &fakeSource{pages: map[string][]models.Page{
		"Ruby": {{Found: 12, Vacancies: []models.Vacancy{usd(1000, 2000), {Currency: "rub"}}}},
		"Go":   {{Found: 1, Vacancies: []models.Vacancy{rub(100, 0)}}},
	}}

	result, err := NewAggregator(src, []string{"Ruby", "Go"}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Ruby", "Go"}, result.Languages())
	stat, ok := result.Stat("Ruby")
	require.True(t, ok)
	assert.Equal(t, models.LanguageStat{VacanciesFound: 12}, stat)
}

func TestAggregatorDoesNotCarryEstimatesAcrossVacancies(t *testing.T) {
	// a foreign-currency vacancy must not leak its estimate into the next one
	src := &fakeSource{pages: map[string][]models.Page{
		"C#": {{Found: 3, Vacancies: []models.Vacancy{
			rub(100, 200),
			usd(9000, 9000),
			rub(0, 0),
		}}},
	}}

	result, err := NewAggregator(src, []string{"C#"}).Run(context.Background())
	require.NoError(t, err)

	stat, _ := result.Stat("C#")
	assert.Equal(t, 1, stat.VacanciesProcessed)
	assert.Equal(t, 150, stat.AverageSalary)
}

func TestAggregatorWalksAllPages(t *testing.T) {
	src := &fakeSource{pages: map[string][]models.Page{
		"Java": {
			{Found: 40, Vacancies: []models.Vacancy{rub(100, 0)}},
			{Found: 40, Vacancies: []models.Vacancy{rub(0, 100)}},
			{Found: 41, Vacancies: []models.Vacancy{rub(100, 300)}},
		},
	}}

	result, err := NewAggregator(src, []string{"Java"}).Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, src.requests, 3)
	stat, _ := result.Stat("Java")
	// (120 + 80 + 200) / 3
	assert.Equal(t, models.LanguageStat{VacanciesFound: 41, VacanciesProcessed: 3, AverageSalary: 133}, stat)
}

func TestAggregatorAbortsOnError(t *testing.T) {
	boom := errors.New("boom")
	src := &fakeSource{err: boom}

	result, err := NewAggregator(src, []string{"Go", "Python"}).Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "Fake: Go page 0")
	assert.Len(t, src.requests, 1)
}

package models

import "github.com/fr4nk3nst1ner/langsalary/internal/salary"

// Vacancy is the part of a job posting the aggregator cares about
type Vacancy struct {
	Currency string
	Salary   *salary.Bound // nil when the posting has no salary info
}

// Page is one page of a provider listing, reduced to what pagination needs
type Page struct {
	Vacancies []Vacancy
	Found     int
	Pages     int
	More      bool
}

// LanguageStat holds the per-language summary for one provider run
type LanguageStat struct {
	VacanciesFound     int
	VacanciesProcessed int
	AverageSalary      int
}

// NewLanguageStat summarizes the collected salary estimates.
// The average is truncated towards zero.
func NewLanguageStat(found int, estimates []float64) LanguageStat {
	stat := LanguageStat{
		VacanciesFound:     found,
		VacanciesProcessed: len(estimates),
	}
	if len(estimates) == 0 {
		return stat
	}

	var sum float64
	for _, e := range estimates {
		sum += e
	}
	stat.AverageSalary = int(sum / float64(len(estimates)))
	return stat
}

// LanguageEntry pairs a language with its stat
type LanguageEntry struct {
	Language string
	Stat     LanguageStat
}

// AggregationResult maps languages to stats, keeping insertion order
type AggregationResult struct {
	entries []LanguageEntry
	index   map[string]int
}

// NewAggregationResult creates an empty result with room for n languages
func NewAggregationResult(n int) *AggregationResult {
	return &AggregationResult{
		entries: make([]LanguageEntry, 0, n),
		index:   make(map[string]int, n),
	}
}

// Set stores the stat for a language. Re-setting a language keeps its position.
func (r *AggregationResult) Set(language string, stat LanguageStat) {
	if i, ok := r.index[language]; ok {
		r.entries[i].Stat = stat
		return
	}
	r.index[language] = len(r.entries)
	r.entries = append(r.entries, LanguageEntry{Language: language, Stat: stat})
}

// Stat returns the stat stored for a language
func (r *AggregationResult) Stat(language string) (LanguageStat, bool) {
	i, ok := r.index[language]
	if !ok {
		return LanguageStat{}, false
	}
	return r.entries[i].Stat, true
}

// Languages returns the languages in insertion order
func (r *AggregationResult) Languages() []string {
	languages := make([]string, len(r.entries))
	for i, e := range r.entries {
		languages[i] = e.Language
	}
	return languages
}

// Entries returns a copy of the entries in insertion order
func (r *AggregationResult) Entries() []LanguageEntry {
	entries := make([]LanguageEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Len returns the number of languages stored
func (r *AggregationResult) Len() int {
	return len(r.entries)
}

package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fr4nk3nst1ner/langsalary/internal/client"
	"github.com/fr4nk3nst1ner/langsalary/internal/models"
	"github.com/fr4nk3nst1ner/langsalary/internal/salary"
)

const (
	HeadHunterBaseURL  = "https://api.hh.ru/vacancies"
	HeadHunterCurrency = "RUR"
)

// HeadHunterConfig holds the fixed search filters for api.hh.ru
type HeadHunterConfig struct {
	BaseURL      string
	UserAgent    string
	SearchPrefix string // prepended to the language, e.g. "Программист"
	Area         int    // 1 is Moscow
	PeriodDays   int
	PerPage      int
}

// hhSearchResponse is the listing returned by GET /vacancies
type hhSearchResponse struct {
	Items []hhVacancy `json:"items"`
	Found int         `json:"found"`
	Pages int         `json:"pages"`
}

type hhVacancy struct {
	Salary *hhSalary `json:"salary"`
}

type hhSalary struct {
	From     *float64 `json:"from"`
	To       *float64 `json:"to"`
	Currency string   `json:"currency"`
}

// HeadHunter pages through api.hh.ru, which reports an explicit page count
type HeadHunter struct {
	cfg        HeadHunterConfig
	httpClient *http.Client
}

func NewHeadHunter(cfg HeadHunterConfig, httpClient *http.Client) *HeadHunter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = HeadHunterBaseURL
	}
	return &HeadHunter{cfg: cfg, httpClient: httpClient}
}

func (h *HeadHunter) Name() string {
	return "HeadHunter"
}

func (h *HeadHunter) Currency() string {
	return HeadHunterCurrency
}

func (h *HeadHunter) FetchPage(ctx context.Context, language string, page int) (models.Page, error) {
	apiURL, err := h.buildURL(language, page)
	if err != nil {
		return models.Page{}, fmt.Errorf("build URL failed: %w", err)
	}

	header := http.Header{}
	if h.cfg.UserAgent != "" {
		header.Set("User-Agent", h.cfg.UserAgent)
	}

	var resp hhSearchResponse
	if err := client.GetJSON(ctx, h.httpClient, apiURL, header, &resp); err != nil {
		return models.Page{}, err
	}

	vacancies := make([]models.Vacancy, len(resp.Items))
	for i, item := range resp.Items {
		if item.Salary == nil {
			continue
		}
		vacancies[i] = models.Vacancy{
			Currency: item.Salary.Currency,
			Salary:   &salary.Bound{From: item.Salary.From, To: item.Salary.To},
		}
	}

	return models.Page{
		Vacancies: vacancies,
		Found:     resp.Found,
		Pages:     resp.Pages,
	}, nil
}

func (h *HeadHunter) HasNext(page models.Page, next int) bool {
	return next < page.Pages
}

// Found keeps the count from the latest page.
func (h *HeadHunter) Found(_ int, page models.Page) int {
	return page.Found
}

// buildURL builds the listing URL for one language and page
func (h *HeadHunter) buildURL(language string, page int) (string, error) {
	u, err := url.Parse(h.cfg.BaseURL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Set("text", strings.TrimSpace(h.cfg.SearchPrefix+" "+language))
	if h.cfg.Area > 0 {
		query.Set("area", strconv.Itoa(h.cfg.Area))
	}
	if h.cfg.PeriodDays > 0 {
		query.Set("period", strconv.Itoa(h.cfg.PeriodDays))
	}
	if h.cfg.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(h.cfg.PerPage))
	}
	query.Set("page", strconv.Itoa(page))

	u.RawQuery = query.Encode()
	return u.String(), nil
}

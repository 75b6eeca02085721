package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fr4nk3nst1ner/langsalary/internal/client"
	"github.com/fr4nk3nst1ner/langsalary/internal/models"
	"github.com/fr4nk3nst1ner/langsalary/internal/salary"
)

const (
	SuperJobBaseURL  = "https://api.superjob.ru/2.0/vacancies/"
	SuperJobCurrency = "rub"
)

// SuperJobConfig holds the fixed search filters for api.superjob.ru
type SuperJobConfig struct {
	BaseURL   string
	Token     string // sent as X-Api-App-Id
	Town      int    // 4 is Moscow
	Catalogue int    // 48 is "Development, programming"
	Count     int
}

// sjSearchResponse is the listing returned by GET /vacancies/
type sjSearchResponse struct {
	Objects []sjVacancy `json:"objects"`
	Total   int         `json:"total"`
	More    bool        `json:"more"`
}

type sjVacancy struct {
	PaymentFrom int    `json:"payment_from"`
	PaymentTo   int    `json:"payment_to"`
	Currency    string `json:"currency"`
}

// SuperJob pages through api.superjob.ru until the "more" flag goes false
type SuperJob struct {
	cfg        SuperJobConfig
	httpClient *http.Client
}

func NewSuperJob(cfg SuperJobConfig, httpClient *http.Client) *SuperJob {
	if cfg.BaseURL == "" {
		cfg.BaseURL = SuperJobBaseURL
	}
	return &SuperJob{cfg: cfg, httpClient: httpClient}
}

func (s *SuperJob) Name() string {
	return "SuperJob"
}

func (s *SuperJob) Currency() string {
	return SuperJobCurrency
}

func (s *SuperJob) FetchPage(ctx context.Context, language string, page int) (models.Page, error) {
	apiURL, err := s.buildURL(language, page)
	if err != nil {
		return models.Page{}, fmt.Errorf("build URL failed: %w", err)
	}

	header := http.Header{}
	header.Set("X-Api-App-Id", s.cfg.Token)

	var resp sjSearchResponse
	if err := client.GetJSON(ctx, s.httpClient, apiURL, header, &resp); err != nil {
		return models.Page{}, err
	}

	vacancies := make([]models.Vacancy, len(resp.Objects))
	for i, obj := range resp.Objects {
		bound := salary.NewBound(obj.PaymentFrom, obj.PaymentTo)
		vacancies[i] = models.Vacancy{
			Currency: obj.Currency,
			Salary:   &bound,
		}
	}

	return models.Page{
		Vacancies: vacancies,
		Found:     resp.Total,
		More:      resp.More,
	}, nil
}

func (s *SuperJob) HasNext(page models.Page, next int) bool {
	return page.More
}

// Found adds up "total" over every page of the listing.
func (s *SuperJob) Found(acc int, page models.Page) int {
	return acc + page.Found
}

func (s *SuperJob) buildURL(language string, page int) (string, error) {
	u, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Set("keyword", language)
	if s.cfg.Town > 0 {
		query.Set("town", strconv.Itoa(s.cfg.Town))
	}
	if s.cfg.Catalogue > 0 {
		query.Set("catalogues", strconv.Itoa(s.cfg.Catalogue))
	}
	if s.cfg.Count > 0 {
		query.Set("count", strconv.Itoa(s.cfg.Count))
	}
	query.Set("page", strconv.Itoa(page)) // SuperJob pages are 0-based

	u.RawQuery = query.Encode()
	return u.String(), nil
}

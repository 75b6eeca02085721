package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultLanguages is the list of languages compared by default
var DefaultLanguages = []string{
	"JavaScript",
	"Ruby",
	"C++",
	"C#",
	"C",
	"Java",
	"Python",
	"Go",
	"1c",
}

// ErrMissingToken is returned when the SuperJob API token is not configured
var ErrMissingToken = errors.New("SJ_TOKEN is not set")

type Config struct {
	Languages  []string         `yaml:"languages" env:"LANGSALARY_LANGUAGES" env-separator:","`
	HeadHunter HeadHunterConfig `yaml:"headhunter" env-prefix:"HH_"`
	SuperJob   SuperJobConfig   `yaml:"superjob" env-prefix:"SJ_"`
	HTTP       HTTPConfig       `yaml:"http" env-prefix:"LANGSALARY_HTTP_"`
	Display    DisplayConfig    `yaml:"display" env-prefix:"LANGSALARY_DISPLAY_"`
	Log        LogConfig        `yaml:"log" env-prefix:"LANGSALARY_LOG_"`
}

type HeadHunterConfig struct {
	BaseURL      string `yaml:"base_url" env:"BASE_URL" env-default:"https://api.hh.ru/vacancies"`
	UserAgent    string `yaml:"user_agent" env:"USER_AGENT" env-default:"langsalary/1.0"`
	SearchPrefix string `yaml:"search_prefix" env:"SEARCH_PREFIX" env-default:"Программист"`
	Area         int    `yaml:"area" env:"AREA" env-default:"1"`
	PeriodDays   int    `yaml:"period_days" env:"PERIOD_DAYS" env-default:"30"`
	PerPage      int    `yaml:"per_page" env:"PER_PAGE" env-default:"100"`
	Title        string `yaml:"title" env:"TITLE" env-default:"HeadHunter Moscow"`
}

type SuperJobConfig struct {
	BaseURL   string `yaml:"base_url" env:"BASE_URL" env-default:"https://api.superjob.ru/2.0/vacancies/"`
	Token     string `yaml:"token" env:"TOKEN"`
	Town      int    `yaml:"town" env:"TOWN" env-default:"4"`
	Catalogue int    `yaml:"catalogue" env:"CATALOGUE" env-default:"48"`
	Count     int    `yaml:"count" env:"COUNT" env-default:"100"`
	Title     string `yaml:"title" env:"TITLE" env-default:"SuperJob Moscow"`
}

type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"TIMEOUT" env-default:"30s"`
	Proxy   string        `yaml:"proxy" env:"PROXY"`
}

type DisplayConfig struct {
	GroupDigits bool `yaml:"group_digits" env:"GROUP_DIGITS" env-default:"false"`
	Color       bool `yaml:"color" env:"COLOR" env-default:"false"`
	Progress    bool `yaml:"progress" env:"PROGRESS" env-default:"true"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL" env-default:"warn"`
}

// Load reads the optional .env file into the process environment, then
// fills the config from the optional YAML file, the environment and defaults.
// A missing .env file is not an error.
func Load(configPath, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if len(cfg.Languages) == 0 {
		cfg.Languages = append([]string(nil), DefaultLanguages...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings every run needs before any request is made
func (c *Config) Validate() error {
	if c.SuperJob.Token == "" {
		return ErrMissingToken
	}
	if len(c.Languages) == 0 {
		return errors.New("no languages configured")
	}
	for _, lang := range c.Languages {
		if lang == "" {
			return errors.New("empty language in list")
		}
	}
	return nil
}

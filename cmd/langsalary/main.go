package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/langsalary/internal/app"
	"github.com/fr4nk3nst1ner/langsalary/internal/config"
	"github.com/fr4nk3nst1ner/langsalary/internal/ui"
)

var logLevels = map[string]pterm.LogLevel{
	"trace": pterm.LogLevelTrace,
	"debug": pterm.LogLevelDebug,
	"info":  pterm.LogLevelInfo,
	"warn":  pterm.LogLevelWarn,
	"error": pterm.LogLevelError,
}

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 langsalary Usage Examples 📋")
	fmt.Println("\n1. Compare the default languages on HeadHunter and SuperJob (SJ_TOKEN read from .env):")
	fmt.Println("   langsalary")

	fmt.Println("\n2. Compare only Go and Rust, with digit grouping and colored salaries:")
	fmt.Println("   langsalary -languages Go,Rust -group-digits -color")

	fmt.Println("\n3. Read settings from a YAML file and trace every page request:")
	fmt.Println("   langsalary -config configs/config.yaml -debug")

	fmt.Println("\n4. Route requests through a proxy and silence the banner:")
	fmt.Println("   langsalary -proxy http://localhost:8080 -silence")
	os.Exit(0)
}

func newLogger(level string, debug bool) *pterm.Logger {
	lvl, ok := logLevels[strings.ToLower(level)]
	if !ok {
		lvl = pterm.LogLevelWarn
	}
	if debug && lvl > pterm.LogLevelDebug {
		lvl = pterm.LogLevelDebug
	}
	return pterm.DefaultLogger.WithLevel(lvl).WithWriter(os.Stderr)
}

func fatal(logger *pterm.Logger, msg string, err error) {
	logger.Error(msg, logger.Args("error", err.Error()))
	os.Exit(1)
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	envFile := flag.String("env", ".env", "Path to the .env file holding SJ_TOKEN")
	languages := flag.String("languages", "", "Comma-separated languages to compare (overrides config)")
	proxyURL := flag.String("proxy", "", "Proxy URL to use")
	groupDigits := flag.Bool("group-digits", false, "Group salary digits with commas")
	color := flag.Bool("color", false, "Color average salaries")
	noProgress := flag.Bool("no-progress", false, "Hide progress bars")
	debug := flag.Bool("debug", false, "Enable debug logging")
	examples := flag.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	ui.PrintBanner(os.Stderr, *silence || *noBanner)

	if *examples {
		printExamples()
		return
	}

	bootLogger := newLogger("", *debug)

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		fatal(bootLogger, "failed to load config", err)
	}

	if *languages != "" {
		cfg.Languages = strings.Split(*languages, ",")
		for i := range cfg.Languages {
			cfg.Languages[i] = strings.TrimSpace(cfg.Languages[i])
		}
	}
	if *proxyURL != "" {
		cfg.HTTP.Proxy = *proxyURL
	}
	cfg.Display.GroupDigits = cfg.Display.GroupDigits || *groupDigits
	cfg.Display.Color = cfg.Display.Color || *color
	cfg.Display.Progress = cfg.Display.Progress && !*noProgress

	logger := newLogger(cfg.Log.Level, *debug)

	a, err := app.New(cfg, logger, os.Stdout, os.Stderr)
	if err != nil {
		fatal(logger, "invalid configuration", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		stop()
		fatal(logger, "run failed", err)
	}
}

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/atinylittleshell/stocksuggest/internal/catalog"
	"github.com/atinylittleshell/stocksuggest/internal/config"
	"github.com/atinylittleshell/stocksuggest/internal/core"
	"github.com/atinylittleshell/stocksuggest/internal/search"
	"github.com/atinylittleshell/stocksuggest/internal/server"
	"github.com/atinylittleshell/stocksuggest/internal/styles"
	"github.com/atinylittleshell/stocksuggest/internal/suggest"
	"github.com/atinylittleshell/stocksuggest/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var BUILD_VERSION = "dev"

var configFlag = flag.String("config", "", "path to the config file (default ~/.stocksuggest/config.yaml)")
var serveFlag = flag.Bool("serve", false, "serve the /search_stock endpoint and the web page")
var urlFlag = flag.String("url", "", "base URL of the search endpoint, overrides client.base_url")

var helpFlag = flag.Bool("h", false, "display help information")
var versionFlag = flag.Bool("ver", false, "display build version")

const helpText = `stocksuggest - Type-ahead stock symbol suggestions

USAGE:
  stocksuggest [options]

MODES:
  stocksuggest -serve     Serve /search_stock and the suggestion page
  stocksuggest            Interactive suggestion box in the terminal
  ... | stocksuggest      Read queries line by line, print suggestions
                          joined by "|" (empty line when there are none)

OPTIONS:
`

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	if *helpFlag {
		fmt.Print(helpText)
		flag.PrintDefaults()
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		os.Exit(1)
	}

	logger, err := initializeLogger(cfg, *serveFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR(fmt.Sprintf("failed to initialize logger: %v", err)))
		os.Exit(1)
	}
	defer logger.Sync() // Flush any buffered log entries

	logger.Info("-------- new stocksuggest session --------", zap.Any("args", os.Args))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("unhandled error", zap.Error(err))
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	// stocksuggest -serve
	if *serveFlag {
		return runServer(ctx, cfg, logger)
	}

	opts, err := clientOptions(cfg, logger)
	if err != nil {
		return err
	}

	// stocksuggest
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return runInteractive(opts, logger)
	}

	// echo TCS | stocksuggest
	return runLines(os.Stdin, os.Stdout, opts)
}

func loadConfig() (*config.Config, error) {
	path := *configFlag
	if path == "" {
		path = core.ConfigFile()
	}

	cfg, err := config.NewLoader(nil).LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	if *urlFlag != "" {
		cfg.Client.BaseURL = *urlFlag
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func initializeLogger(cfg *config.Config, serving bool) (*zap.Logger, error) {
	logLevel := cfg.ZapLevel()
	if BUILD_VERSION == "dev" {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logFile := cfg.Log.File
	if logFile == "" {
		logFile = core.LogFile()
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	loggerConfig.OutputPaths = []string{logFile}

	// The terminal host owns the screen, so only the server logs to stderr.
	if serving {
		loggerConfig.OutputPaths = append(loggerConfig.OutputPaths, "stderr")
	}

	return loggerConfig.Build()
}

// ginMode keeps gin's route listing and debug warnings to dev builds.
func ginMode(version string) string {
	if version == "dev" {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

func runServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	gin.SetMode(ginMode(BUILD_VERSION))

	path := cfg.Catalog.Path
	if path == "" && cfg.Catalog.Driver == catalog.DriverSQLite {
		path = core.CatalogFile()
	}

	store, err := catalog.Open(cfg.Catalog.Driver, path, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := server.New(server.Config{
		Addr:      cfg.Server.Addr,
		StaticDir: cfg.Server.StaticDir,
	}, store, logger)

	return srv.Run(ctx)
}

func clientOptions(cfg *config.Config, logger *zap.Logger) (suggest.Options, error) {
	client, err := search.NewClient(search.ClientConfig{
		BaseURL: cfg.Client.BaseURL,
		Timeout: cfg.Client.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return suggest.Options{}, err
	}

	policy, err := suggest.ParseStalePolicy(cfg.Client.StaleResponses)
	if err != nil {
		return suggest.Options{}, err
	}

	return suggest.Options{
		Searcher:    client,
		Debounce:    cfg.Client.Debounce,
		StalePolicy: policy,
		Logger:      logger,
	}, nil
}

func runInteractive(opts suggest.Options, logger *zap.Logger) error {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 80
	}

	model := tui.New(tui.Config{
		Options: opts,
		Width:   width,
		Logger:  logger,
	})

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("terminal session failed: %w", err)
	}

	result := final.(tui.Model).Result()
	if result.Type == tui.ResultSubmit && result.Value != "" {
		fmt.Println(styles.SELECTION(result.Value))
	}
	return nil
}

// runLines treats every line of r as the input value at one key release and
// writes the rows shown afterwards, joined by "|".
func runLines(r io.Reader, w io.Writer, opts suggest.Options) error {
	input := &suggest.TextInput{}
	box := &suggest.ListBox{}
	controller := suggest.New(input, box, opts)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		input.SetValue(scanner.Text())

		if ch := controller.OnKeyUp(); ch != nil {
			for resp := range ch {
				controller.OnSearchResponse(resp)
			}
		}

		line := ""
		if box.Visible() {
			line = strings.Join(box.Texts(), "|")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return scanner.Err()
}

package airport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rest-planner/layover-daylight/internal/domain"
	"github.com/rest-planner/layover-daylight/internal/infrastructure/logger"
	"github.com/rest-planner/layover-daylight/internal/infrastructure/retry"
)

// SourceEmbedded selects the built-in dataset. An empty source does the same.
const SourceEmbedded = "embedded"

// DefaultFetchTimeout bounds each HTTP attempt when loading a remote dataset.
const DefaultFetchTimeout = 30 * time.Second

// maxDatasetBytes caps a downloaded dataset (the full OurAirports export is ~12 MB).
const maxDatasetBytes = 64 << 20

// Format is the encoding of a dataset.
type Format string

// Supported dataset formats.
const (
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// LoaderConfig contains configuration options for the Loader.
type LoaderConfig struct {
	// FetchTimeout bounds each HTTP attempt
	FetchTimeout time.Duration

	// Retry controls retries of remote fetches
	Retry retry.Config

	// HTTPClient overrides the client used for remote datasets
	HTTPClient *http.Client

	// Logger receives load and retry events
	Logger *logger.Logger
}

// Loader builds a Directory from the embedded table, a local file, or a URL.
type Loader struct {
	client *http.Client
	retry  retry.Config
	log    *logger.Logger
}

// NewLoader creates a Loader. If config is nil, defaults are used.
func NewLoader(config *LoaderConfig) *Loader {
	cfg := LoaderConfig{
		FetchTimeout: DefaultFetchTimeout,
		Retry:        retry.FetchConfig,
	}
	if config != nil {
		if config.FetchTimeout > 0 {
			cfg.FetchTimeout = config.FetchTimeout
		}
		if config.Retry.MaxAttempts > 0 {
			cfg.Retry = config.Retry
		}
		cfg.HTTPClient = config.HTTPClient
		cfg.Logger = config.Logger
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.FetchTimeout}
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Loader{
		client: client,
		retry:  cfg.Retry,
		log:    log.WithComponent("airports"),
	}
}

// Load reads source and indexes it. source is "", "embedded", a file path, or an
// http(s) URL. The format comes from the file extension, then the content type,
// and defaults to CSV for URLs.
func (l *Loader) Load(ctx context.Context, source string) (*Directory, error) {
	source = strings.TrimSpace(source)
	start := time.Now()

	var (
		airports []domain.Airport
		err      error
	)
	switch {
	case source == "" || strings.EqualFold(source, SourceEmbedded):
		source = SourceEmbedded
		airports, err = Embedded()
	case isURL(source):
		airports, err = l.fetch(ctx, source)
	default:
		airports, err = readFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load airports from %s: %w", source, err)
	}

	dir, err := NewDirectory(airports)
	if err != nil {
		return nil, fmt.Errorf("failed to index airports from %s: %w", source, err)
	}

	l.log.Info().
		Str("source", source).
		Int("airports", dir.Len()).
		Int("duplicates", dir.Duplicates()).
		Dur("duration", time.Since(start)).
		Msg("Airport directory loaded")

	return dir, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]domain.Airport, error) {
	cfg := l.retry.WithOnRetry(func(attempt int, err error) {
		l.log.Warn().Err(err).Int("attempt", attempt).Str("url", url).Msg("Airport dataset fetch failed, retrying")
	})

	return retry.DoWithResult(ctx, func() ([]domain.Airport, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, retry.NewPermanent(err)
		}
		req.Header.Set("Accept", "text/csv, application/yaml, text/yaml, */*")

		resp, err := l.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			statusErr := fmt.Errorf("unexpected status %s", resp.Status)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
				return nil, retry.NewPermanent(statusErr)
			}
			return nil, statusErr
		}

		body := io.LimitReader(resp.Body, maxDatasetBytes)
		airports, err := parse(body, formatOf(url, resp.Header.Get("Content-Type")))
		if err != nil {
			return nil, retry.NewPermanent(err)
		}
		return airports, nil
	}, cfg)
}

func readFile(path string) ([]domain.Airport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parse(f, formatOf(path, ""))
}

func parse(r io.Reader, format Format) ([]domain.Airport, error) {
	switch format {
	case FormatYAML:
		return ParseYAML(r)
	case FormatCSV:
		return ParseCSV(r)
	default:
		return nil, errors.New("unsupported dataset format")
	}
}

// formatOf picks a format from the path extension, then the content type.
func formatOf(path, contentType string) Format {
	clean := strings.ToLower(path)
	if i := strings.IndexAny(clean, "?#"); i >= 0 {
		clean = clean[:i]
	}
	switch filepath.Ext(clean) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".csv":
		return FormatCSV
	}
	if strings.Contains(strings.ToLower(contentType), "yaml") {
		return FormatYAML
	}
	return FormatCSV
}

func isURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Version is the skylog release.
const Version = "0.3.0"

// Config holds all skylog configuration.
type Config struct {
	Source   SourceConfig
	Output   OutputConfig
	LogLevel string

	// loadErrs holds env values Load could not parse. Validate reports them.
	loadErrs []error
}

// SourceConfig controls where log files are found and how they are decoded.
type SourceConfig struct {
	LogDir      string
	DocRoot     string
	Pattern     string
	Charset     string
	MaxLineSize int
	Workers     int
}

// OutputConfig holds report destination settings.
type OutputConfig struct {
	Format  string // "table", "json" or "file"
	Path    string
	Pretty  bool
	MaxSize int64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	docRoot := os.Getenv("SKYLOG_DOC_ROOT")
	logDir := os.Getenv("SKYLOG_LOG_DIR")
	if logDir == "" && docRoot != "" {
		logDir = filepath.Join(docRoot, "Logs")
	}

	var errs []error
	cfg := Config{
		Source: SourceConfig{
			LogDir:      logDir,
			DocRoot:     docRoot,
			Pattern:     getenv("SKYLOG_FILE_PATTERN", "*.log"),
			Charset:     getenv("SKYLOG_CHARSET", "utf-8"),
			MaxLineSize: int(getenvSize("SKYLOG_MAX_LINE_SIZE", 1<<20, &errs)),
			Workers:     getenvInt("SKYLOG_WORKERS", 4),
		},
		Output: OutputConfig{
			Format:  getenv("SKYLOG_OUTPUT", "table"),
			Path:    os.Getenv("SKYLOG_OUTPUT_PATH"),
			Pretty:  getenvBool("SKYLOG_OUTPUT_PRETTY", false),
			MaxSize: getenvSize("SKYLOG_OUTPUT_MAX_SIZE", 0, &errs),
		},
		LogLevel: getenv("SKYLOG_LOG_LEVEL", "info"),
	}
	cfg.loadErrs = errs
	return cfg
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	errs := append([]error(nil), c.loadErrs...)

	if c.Source.Pattern == "" {
		errs = append(errs, errors.New("SKYLOG_FILE_PATTERN must not be empty"))
	} else if _, err := filepath.Match(c.Source.Pattern, ""); err != nil {
		errs = append(errs, fmt.Errorf("SKYLOG_FILE_PATTERN %q: %w", c.Source.Pattern, err))
	}
	if c.Source.MaxLineSize <= 0 {
		errs = append(errs, fmt.Errorf("SKYLOG_MAX_LINE_SIZE must be positive, got %d", c.Source.MaxLineSize))
	}
	if c.Source.Workers < 1 {
		errs = append(errs, fmt.Errorf("SKYLOG_WORKERS must be at least 1, got %d", c.Source.Workers))
	}

	switch c.Output.Format {
	case "table", "json":
	case "file":
		if c.Output.Path == "" {
			errs = append(errs, errors.New("SKYLOG_OUTPUT_PATH is required when SKYLOG_OUTPUT=file"))
		}
	default:
		errs = append(errs, fmt.Errorf("SKYLOG_OUTPUT must be table, json or file, got %q", c.Output.Format))
	}
	if c.Output.MaxSize < 0 {
		errs = append(errs, fmt.Errorf("SKYLOG_OUTPUT_MAX_SIZE must not be negative, got %d", c.Output.MaxSize))
	}

	return errors.Join(errs...)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// getenvSize parses a byte count with an optional KiB/MiB/GiB (or K/M/G)
// suffix. An unparseable value yields fallback and is appended to errs.
func getenvSize(key string, fallback int64, errs *[]error) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := parseSize(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s %q: %w", key, v, err))
		return fallback
	}
	return n
}

func parseSize(s string) (int64, error) {
	upper := strings.ToUpper(s)
	mult := int64(1)
	for _, suf := range []struct {
		text string
		mult int64
	}{
		{"KIB", 1 << 10}, {"MIB", 1 << 20}, {"GIB", 1 << 30},
		{"K", 1 << 10}, {"M", 1 << 20}, {"G", 1 << 30},
	} {
		if strings.HasSuffix(upper, suf.text) {
			mult = suf.mult
			upper = strings.TrimSpace(strings.TrimSuffix(upper, suf.text))
			break
		}
	}
	n, err := strconv.ParseInt(upper, 10, 64)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt64/mult || n < math.MinInt64/mult {
		return 0, fmt.Errorf("size %s overflows int64", s)
	}
	return n * mult, nil
}

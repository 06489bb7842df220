package bench

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/namoa/heuristic"
	"github.com/katalvlaran/namoa/namoa"
)

// EngineAll expands to every heuristic engine.
const EngineAll = "all"

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Config is the benchmark configuration, loadable from YAML.
type Config struct {
	// RunName labels reports; a UUID is always attached as well.
	RunName string `yaml:"run_name"`

	// Engines lists heuristic names: blind, ideal, bounded or all.
	Engines []string `yaml:"engines" validate:"required,min=1,dive,oneof=blind ideal bounded all"`

	// Variant selects the search strategy.
	Variant string `yaml:"variant" validate:"required,oneof=split single single-forward"`

	// Criteria is the number of cost components per arc.
	Criteria int `yaml:"criteria" validate:"min=1,max=16"`

	Grid   GridConfig   `yaml:"grid"`
	DIMACS DIMACSConfig `yaml:"dimacs"`

	// QueryLimit caps queries per instance; 0 runs all.
	QueryLimit int `yaml:"query_limit" validate:"min=0"`

	// Parallelism bounds concurrently running instances.
	Parallelism int `yaml:"parallelism" validate:"min=1,max=256"`

	// StopOnMismatch aborts an instance at its first wrong answer.
	StopOnMismatch bool `yaml:"stop_on_mismatch"`

	// ConsistencyCheck verifies every heuristic before searching.
	ConsistencyCheck bool `yaml:"consistency_check"`

	// Report is a TSV output path; empty disables it.
	Report string `yaml:"report"`

	// MetricsFile receives the prometheus text exposition after the run.
	MetricsFile string `yaml:"metrics_file"`

	Log LogConfig `yaml:"log"`
}

// GridConfig points at grid benchmark files.
type GridConfig struct {
	// Instances are grid files, optionally gzip-compressed.
	Instances []string `yaml:"instances" validate:"dive,required"`

	// Queries is the shared queries file.
	Queries string `yaml:"queries"`

	// Solutions holds one solutions file per instance, or none.
	Solutions []string `yaml:"solutions" validate:"dive,required"`
}

// DIMACSConfig points at one DIMACS9 map.
type DIMACSConfig struct {
	Dist    string `yaml:"dist"`
	Time    string `yaml:"time"`
	Queries string `yaml:"queries"`
}

// LogConfig selects slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

var validate = validator.New()

// DefaultConfig returns a two-criteria split search with every engine.
func DefaultConfig() Config {
	return Config{
		Engines:     []string{EngineAll},
		Variant:     namoa.VariantSplit,
		Criteria:    2,
		Parallelism: 1,
		Log:         LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads YAML from path over DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("bench: read config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML over DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints and cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if n := len(c.Grid.Solutions); n > 0 && n != len(c.Grid.Instances) {
		return fmt.Errorf("%w: %d solution files for %d grid instances", ErrInvalidConfig, n, len(c.Grid.Instances))
	}
	for _, e := range c.EngineNames() {
		if e == heuristic.NameBounded && c.Criteria != 2 {
			return fmt.Errorf("%w: engine %q needs 2 criteria, got %d", ErrInvalidConfig, e, c.Criteria)
		}
	}

	return nil
}

// EngineNames expands "all" and drops repeats, keeping first-seen order.
func (c Config) EngineNames() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(n string) {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, e := range c.Engines {
		if strings.EqualFold(e, EngineAll) {
			for _, n := range heuristic.Names() {
				add(n)
			}
			continue
		}
		add(strings.ToLower(e))
	}

	return out
}

// NewLogger builds the slog logger described by lc, writing to w.
func NewLogger(lc LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch lc.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	ho := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, ho))
	}

	return slog.New(slog.NewTextHandler(w, ho))
}

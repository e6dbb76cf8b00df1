package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application. It is read-only
// once Load returns.
type Config struct {
	Path      string            `toml:"-"`
	DB        DB                `toml:"db"`
	Solutions Solutions         `toml:"solutions"`
	UI        UI                `toml:"ui"`
	Worker    Worker            `toml:"worker"`
	Logging   Logging           `toml:"logging"`
	Flags     map[string]string `toml:"-"`
	Args      []string          `toml:"-"`
}

type DB struct {
	Path string `toml:"path"`
}

type Solutions struct {
	Dir string `toml:"dir"`
	// Language is a snippet language slug. When set, scaffolding skips the
	// language popup.
	Language string `toml:"language"`
}

type UI struct {
	TickMS int    `toml:"tick_ms"`
	Topic  string `toml:"topic"`
}

type Worker struct {
	Concurrency int `toml:"concurrency"`
	QueueSize   int `toml:"queue_size"`
}

type Logging struct {
	File  string `toml:"file"`
	Trace bool   `toml:"trace"`
}

const (
	appDirName     = "leetcode_tui"
	configFileName = "config.toml"
	dbFileName     = "leetcode.db"

	defaultTickMS      = 100
	defaultConcurrency = 2
	defaultQueueSize   = 64
)

const (
	envConfig       = "LEETCODE_TUI_CONFIG"
	envDBPath       = "LEETCODE_TUI_DB"
	envSolutionsDir = "LEETCODE_TUI_SOLUTIONS_DIR"
	envLanguage     = "LEETCODE_TUI_LANGUAGE"
	envTickMS       = "LEETCODE_TUI_TICK_MS"
	envTopic        = "LEETCODE_TUI_TOPIC"
	envConcurrency  = "LEETCODE_TUI_CONCURRENCY"
	envQueueSize    = "LEETCODE_TUI_QUEUE_SIZE"
	envLogFile      = "LEETCODE_TUI_LOG_FILE"
	envTrace        = "LEETCODE_TUI_TRACE"
)

// Overrides holds the command line flags bound by BindFlags. Only flags the
// user actually set take precedence over file and environment values.
type Overrides struct {
	fs           *pflag.FlagSet
	ConfigPath   string
	DBPath       string
	SolutionsDir string
	Language     string
	Topic        string
	LogFile      string
	Trace        bool
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *pflag.FlagSet) *Overrides {
	o := &Overrides{fs: fs}
	fs.StringVar(&o.ConfigPath, "config", "", "path to config.toml")
	fs.StringVar(&o.DBPath, "db", "", "path to the question database")
	fs.StringVar(&o.SolutionsDir, "solutions-dir", "", "directory solution files are written to")
	fs.StringVarP(&o.Language, "language", "l", "", "default solution language slug (skips the language popup)")
	fs.StringVar(&o.Topic, "topic", "", "topic slug to open on startup")
	fs.StringVar(&o.LogFile, "log-file", "", "path to the log file")
	fs.BoolVar(&o.Trace, "trace", false, "enable verbose JSON trace logging")
	return o
}

func (o *Overrides) changed(name string) bool {
	return o != nil && o.fs != nil && o.fs.Changed(name)
}

// Default returns the built-in configuration rooted at dir.
func Default(dir string) Config {
	return Config{
		Path:      filepath.Join(dir, configFileName),
		DB:        DB{Path: filepath.Join(dir, dbFileName)},
		Solutions: Solutions{Dir: filepath.Join(dir, "solutions")},
		UI:        UI{TickMS: defaultTickMS},
		Worker:    Worker{Concurrency: defaultConcurrency, QueueSize: defaultQueueSize},
	}
}

// Load resolves configuration: defaults, then the TOML file, then the
// environment, then flags.
func Load(o *Overrides, environ []string) (Config, error) {
	env := parseEnv(environ)
	cfg := Default(configDir(env))

	explicit := false
	if v := envOrDefault(env, envConfig, ""); v != "" {
		cfg.Path, explicit = v, true
	}
	if o.changed("config") {
		cfg.Path, explicit = o.ConfigPath, true
	}
	if err := loadFile(&cfg, explicit); err != nil {
		return Config{}, err
	}

	cfg.DB.Path = envOrDefault(env, envDBPath, cfg.DB.Path)
	cfg.Solutions.Dir = envOrDefault(env, envSolutionsDir, cfg.Solutions.Dir)
	cfg.Solutions.Language = envOrDefault(env, envLanguage, cfg.Solutions.Language)
	cfg.UI.TickMS = envOrInt(env, envTickMS, cfg.UI.TickMS)
	cfg.UI.Topic = envOrDefault(env, envTopic, cfg.UI.Topic)
	cfg.Worker.Concurrency = envOrInt(env, envConcurrency, cfg.Worker.Concurrency)
	cfg.Worker.QueueSize = envOrInt(env, envQueueSize, cfg.Worker.QueueSize)
	cfg.Logging.File = envOrDefault(env, envLogFile, cfg.Logging.File)
	cfg.Logging.Trace = envOrBool(env, envTrace, cfg.Logging.Trace)

	if o.changed("db") {
		cfg.DB.Path = o.DBPath
	}
	if o.changed("solutions-dir") {
		cfg.Solutions.Dir = o.SolutionsDir
	}
	if o.changed("language") {
		cfg.Solutions.Language = o.Language
	}
	if o.changed("topic") {
		cfg.UI.Topic = o.Topic
	}
	if o.changed("log-file") {
		cfg.Logging.File = o.LogFile
	}
	if o.changed("trace") {
		cfg.Logging.Trace = o.Trace
	}

	cfg.Flags = map[string]string{
		"config":       cfg.Path,
		"db":           cfg.DB.Path,
		"solutionsDir": cfg.Solutions.Dir,
		"language":     cfg.Solutions.Language,
		"topic":        cfg.UI.Topic,
		"tickMs":       strconv.Itoa(cfg.UI.TickMS),
		"concurrency":  strconv.Itoa(cfg.Worker.Concurrency),
		"queueSize":    strconv.Itoa(cfg.Worker.QueueSize),
		"logFile":      cfg.Logging.File,
		"trace":        strconv.FormatBool(cfg.Logging.Trace),
	}
	if o != nil && o.fs != nil {
		cfg.Args = append([]string(nil), o.fs.Args()...)
	}
	return cfg, nil
}

// LoadArgs parses args with a private flag set and resolves configuration.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("leetcode-tui", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	o := BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return Load(o, environ)
}

func loadFile(cfg *Config, explicit bool) error {
	md, err := toml.DecodeFile(cfg.Path, cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", cfg.Path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("config %s: unknown keys %s", cfg.Path, strings.Join(keys, ", "))
	}
	return nil
}

func configDir(env map[string]string) string {
	if dir := envOrDefault(env, "XDG_CONFIG_HOME", ""); dir != "" {
		return filepath.Join(dir, appDirName)
	}
	if home := envOrDefault(env, "HOME", ""); home != "" {
		return filepath.Join(home, ".config", appDirName)
	}
	return appDirName
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && v != "" {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.UI.TickMS <= 0 {
		return fmt.Errorf("tick_ms must be > 0 (got %d)", cfg.UI.TickMS)
	}
	if cfg.Worker.Concurrency <= 0 {
		return fmt.Errorf("worker concurrency must be > 0 (got %d)", cfg.Worker.Concurrency)
	}
	if cfg.Worker.QueueSize <= 0 {
		return fmt.Errorf("worker queue_size must be > 0 (got %d)", cfg.Worker.QueueSize)
	}
	if strings.TrimSpace(cfg.DB.Path) == "" {
		return errors.New("db path must be set")
	}
	if strings.TrimSpace(cfg.Solutions.Dir) == "" {
		return errors.New("solutions dir must be set")
	}
	return nil
}

// EnsureDirs creates the directories the database and solutions live in.
func EnsureDirs(cfg Config) error {
	for _, dir := range []string{filepath.Dir(cfg.DB.Path), cfg.Solutions.Dir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

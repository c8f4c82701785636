package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grovetools/widgets/config"
	"github.com/grovetools/widgets/util/pathutil"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	override   *Config
	overrideMu sync.RWMutex
)

// NewLogger returns the logger for a component, creating it on first use.
// Configuration comes from the "logging" section of the nearest widgets.yml
// unless Configure has been called.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	entry := Build(component, loadConfig(), os.Stderr)
	loggers[component] = entry
	return entry
}

// Configure replaces the configuration used for loggers created afterwards.
// Cached loggers are dropped and their log files closed.
func Configure(cfg Config) {
	overrideMu.Lock()
	override = &cfg
	overrideMu.Unlock()

	Shutdown()
}

// Shutdown closes the log files of every cached logger and empties the
// cache.
func Shutdown() {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	for _, entry := range loggers {
		closeSinks(entry.Logger)
	}
	loggers = make(map[string]*logrus.Entry)
}

// ConfigFrom decodes the logging extension of a loaded widgets config.
func ConfigFrom(cfg *config.Config) (Config, error) {
	var logCfg Config
	if cfg == nil {
		return logCfg, nil
	}
	if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
		return logCfg, err
	}
	return logCfg, nil
}

func loadConfig() Config {
	overrideMu.RLock()
	defer overrideMu.RUnlock()
	if override != nil {
		return *override
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return Config{}
	}
	logCfg, err := ConfigFrom(cfg)
	if err != nil {
		logrus.Warnf("Failed to parse 'logging' config: %v", err)
	}
	return logCfg
}

// Build constructs a logger for component from logCfg. stderr receives
// structured output when the stderr mode allows it.
func Build(component string, logCfg Config, stderr io.Writer) *logrus.Entry {
	logger := logrus.New()

	levelStr := "info"
	if env := os.Getenv("WIDGETS_LOG_LEVEL"); env != "" {
		levelStr = env
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if os.Getenv("WIDGETS_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	logger.SetFormatter(formatterFor(logCfg.Format))

	if logCfg.File.Enabled {
		path := logCfg.File.Path
		if path == "" {
			path = defaultLogPath(component)
		}
		if file, err := openLogFile(path); err != nil {
			logger.Warnf("Failed to open log file %s: %v", path, err)
		} else {
			var formatter logrus.Formatter = &TextFormatter{Config: logCfg.Format}
			if logCfg.File.Format == "json" {
				formatter = &logrus.JSONFormatter{}
			}
			logger.AddHook(&fileHook{out: file, formatter: formatter})
		}
	}

	if shouldLogToStderr(logCfg.Format.StructuredToStderr, level, stderr) {
		logger.SetOutput(stderr)
	} else {
		logger.SetOutput(io.Discard)
	}

	return logger.WithField("component", component)
}

func formatterFor(cfg FormatConfig) logrus.Formatter {
	switch cfg.Preset {
	case "json":
		return &logrus.JSONFormatter{}
	case "simple":
		return &TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}}
	default:
		return &TextFormatter{Config: cfg}
	}
}

// shouldLogToStderr applies the stderr mode. In "auto" mode structured logs
// are shown only at debug level or when stderr is not a terminal, so that
// interactive sessions stay clean.
func shouldLogToStderr(mode string, level logrus.Level, stderr io.Writer) bool {
	if stderr == nil {
		return false
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if level >= logrus.DebugLevel {
		return true
	}
	f, ok := stderr.(*os.File)
	if !ok {
		return true
	}
	interactive := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	return !interactive
}

func defaultLogPath(component string) string {
	base, err := os.Getwd()
	if err != nil {
		if base, err = os.UserHomeDir(); err != nil {
			return ""
		}
	}
	date := time.Now().Format("2006-01-02")
	return filepath.Join(base, ".widgets", "logs", fmt.Sprintf("%s-%s.log", component, date))
}

func openLogFile(path string) (*os.File, error) {
	path, err := pathutil.Expand(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, fmt.Errorf("no log file path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grovetools/widgets/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerCachesPerComponent(t *testing.T) {
	Configure(Config{Format: FormatConfig{StructuredToStderr: "never"}})
	t.Cleanup(func() {
		overrideMu.Lock()
		override = nil
		overrideMu.Unlock()
	})

	a := NewLogger("form")
	b := NewLogger("form")
	c := NewLogger("sidebar")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
	assert.Equal(t, "form", a.Data["component"])
	assert.Equal(t, "sidebar", c.Data["component"])
}

func TestBuildLevel(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		level string
		want  logrus.Level
	}{
		{name: "default", want: logrus.InfoLevel},
		{name: "config", level: "warn", want: logrus.WarnLevel},
		{name: "env wins", env: "debug", level: "warn", want: logrus.DebugLevel},
		{name: "invalid falls back", level: "loud", want: logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WIDGETS_LOG_LEVEL", tt.env)
			entry := Build("test", Config{Level: tt.level}, &bytes.Buffer{})
			assert.Equal(t, tt.want, entry.Logger.GetLevel())
		})
	}
}

func TestBuildCallerFromEnv(t *testing.T) {
	t.Setenv("WIDGETS_LOG_CALLER", "true")
	entry := Build("test", Config{}, &bytes.Buffer{})
	assert.True(t, entry.Logger.ReportCaller)
}

func TestBuildStderrModes(t *testing.T) {
	t.Setenv("WIDGETS_LOG_LEVEL", "")

	tests := []struct {
		mode  string
		level string
		want  bool
	}{
		{mode: "always", want: true},
		{mode: "never", level: "debug", want: false},
		// A buffer is not a terminal, so auto mode writes.
		{mode: "auto", want: true},
		{mode: "", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			var buf bytes.Buffer
			entry := Build("test", Config{
				Level:  tt.level,
				Format: FormatConfig{StructuredToStderr: tt.mode},
			}, &buf)
			entry.Info("hello")
			assert.Equal(t, tt.want, strings.Contains(buf.String(), "hello"))
		})
	}
}

func TestBuildJSONPreset(t *testing.T) {
	t.Setenv("WIDGETS_LOG_LEVEL", "")

	var buf bytes.Buffer
	entry := Build("form", Config{Format: FormatConfig{Preset: "json", StructuredToStderr: "always"}}, &buf)
	entry.WithField("attempt", "abc").Info("submitted")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "submitted", line["msg"])
	assert.Equal(t, "form", line["component"])
	assert.Equal(t, "abc", line["attempt"])
}

func TestBuildFileSink(t *testing.T) {
	t.Setenv("WIDGETS_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "nested", "widgets.log")
	entry := Build("sidebar", Config{
		File:   FileSinkConfig{Enabled: true, Path: path, Format: "json"},
		Format: FormatConfig{StructuredToStderr: "never"},
	}, &bytes.Buffer{})
	entry.Info("toggled")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &line))
	assert.Equal(t, "toggled", line["msg"])
	assert.Equal(t, "sidebar", line["component"])
}

func TestConfigureClosesFileSinks(t *testing.T) {
	t.Setenv("WIDGETS_LOG_LEVEL", "")
	t.Cleanup(func() {
		Shutdown()
		overrideMu.Lock()
		override = nil
		overrideMu.Unlock()
	})

	path := filepath.Join(t.TempDir(), "form.log")
	Configure(Config{
		File:   FileSinkConfig{Enabled: true, Path: path},
		Format: FormatConfig{StructuredToStderr: "never"},
	})
	old := NewLogger("form")
	old.Info("before")

	var file *os.File
	for _, hook := range old.Logger.Hooks[logrus.InfoLevel] {
		if fh, ok := hook.(*fileHook); ok {
			file = fh.out.(*os.File)
		}
	}
	require.NotNil(t, file)

	Configure(Config{Level: "debug", Format: FormatConfig{StructuredToStderr: "never"}})

	_, err := file.Write([]byte("x"))
	assert.ErrorIs(t, err, os.ErrClosed)
	old.Info("after close")

	fresh := NewLogger("form")
	assert.NotSame(t, old, fresh)
	assert.Equal(t, logrus.DebugLevel, fresh.Logger.GetLevel())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "before")
	assert.NotContains(t, string(data), "after close")
}

func TestBuildNoFileUnlessEnabled(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	Build("quiet", Config{Format: FormatConfig{StructuredToStderr: "never"}}, &bytes.Buffer{}).Info("x")

	_, err = os.Stat(filepath.Join(dir, ".widgets"))
	assert.True(t, os.IsNotExist(err))
}

func TestConfigFrom(t *testing.T) {
	cfg, err := config.LoadFromBytes([]byte(`
logging:
  level: debug
  report_caller: true
  file:
    enabled: true
    path: /tmp/w.log
  format:
    preset: simple
`), config.FormatYAML)
	require.NoError(t, err)

	logCfg, err := ConfigFrom(cfg)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Level:        "debug",
		ReportCaller: true,
		File:         FileSinkConfig{Enabled: true, Path: "/tmp/w.log"},
		Format:       FormatConfig{Preset: "simple"},
	}, logCfg)

	empty, err := ConfigFrom(nil)
	require.NoError(t, err)
	assert.Equal(t, Config{}, empty)
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name    string
		config  FormatConfig
		entry   *logrus.Entry
		want    []string
		notWant []string
	}{
		{
			name:   "default format",
			config: FormatConfig{},
			entry: &logrus.Entry{
				Level:   logrus.InfoLevel,
				Message: "test message",
				Data: logrus.Fields{
					"component": "test-component",
					"key1":      "value1",
				},
			},
			want: []string{"[INFO]", "test-component", "test message", "key1=value1"},
		},
		{
			name:   "simple format",
			config: FormatConfig{DisableTimestamp: true, DisableComponent: true},
			entry: &logrus.Entry{
				Level:   logrus.WarnLevel,
				Message: "careful",
				Data:    logrus.Fields{"component": "hidden"},
			},
			want:    []string{"[WARN] careful"},
			notWant: []string{"hidden"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &TextFormatter{Config: tt.config}
			out, err := f.Format(tt.entry)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, string(out), w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, string(out), nw)
			}
		})
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{DisableTimestamp: true, DisableComponent: true}}
	out, err := f.Format(&logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "m",
		Data:    logrus.Fields{"b": 2, "a": 1, "c": 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "[INFO] m a=1 b=2 c=3\n", string(out))
}

func TestPrettyLogger(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrettyLogger().WithWriter(&buf)

	p.Check("email", false, "Please enter a valid email address")
	p.Check("subject", true, "")
	p.Field("attempt", "42")

	out := buf.String()
	assert.Contains(t, out, "email")
	assert.Contains(t, out, "Please enter a valid email address")
	assert.Contains(t, out, "subject")
	assert.Contains(t, out, "attempt")
	assert.Contains(t, out, "42")
}

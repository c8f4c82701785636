package cmd

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/grovetools/widgets/cli"
	"github.com/grovetools/widgets/config"
	"github.com/grovetools/widgets/logging"
	"github.com/grovetools/widgets/tui"
	"github.com/grovetools/widgets/tui/theme"
)

const watchDebounce = 150 * time.Millisecond

// buildFunc creates the widget model for a configuration.
type buildFunc func(cfg *config.Config) (tea.Model, error)

type closer interface {
	Close()
}

// configReloadedMsg carries the result of reloading a watched config file.
type configReloadedMsg struct {
	cfg *config.Config
	err error
}

// reloadModel hosts a widget model and rebuilds it when the watched
// configuration changes. The last window size is replayed to the new model.
type reloadModel struct {
	build  buildFunc
	inner  tea.Model
	size   *tea.WindowSizeMsg
	logger *logrus.Entry
}

func newReloadModel(build buildFunc, inner tea.Model, logger *logrus.Entry) *reloadModel {
	return &reloadModel{build: build, inner: inner, logger: logger}
}

func (m *reloadModel) Init() tea.Cmd {
	return m.inner.Init()
}

func (m *reloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case configReloadedMsg:
		return m, m.reload(msg)
	case tea.WindowSizeMsg:
		size := msg
		m.size = &size
	}

	var cmd tea.Cmd
	m.inner, cmd = m.inner.Update(msg)
	return m, cmd
}

func (m *reloadModel) View() string {
	return m.inner.View()
}

func (m *reloadModel) reload(msg configReloadedMsg) tea.Cmd {
	if msg.err != nil || msg.cfg == nil {
		return nil
	}
	next, err := m.build(msg.cfg)
	if err != nil {
		m.logger.WithError(err).Warn("Keeping previous widget after failed rebuild")
		return nil
	}
	m.Close()
	m.inner = next
	m.logger.Info("Configuration reloaded")

	cmds := []tea.Cmd{next.Init()}
	if m.size != nil {
		size := *m.size
		cmds = append(cmds, func() tea.Msg { return size })
	}
	return tea.Batch(cmds...)
}

// Close releases the hosted model.
func (m *reloadModel) Close() {
	if c, ok := m.inner.(closer); ok {
		c.Close()
	}
}

// applyConfig pushes the sections that live outside the widget models.
func applyConfig(cfg *config.Config) error {
	logCfg, err := logging.ConfigFrom(cfg)
	if err != nil {
		return err
	}
	logging.Configure(logCfg)
	theme.UseIcons(cfg.TUI.Icons)
	return nil
}

// applyingConfig wraps build so that every rebuild first applies the
// logging and icon sections of the new configuration.
func applyingConfig(build buildFunc) buildFunc {
	return func(cfg *config.Config) (tea.Model, error) {
		if err := applyConfig(cfg); err != nil {
			return nil, err
		}
		return build(cfg)
	}
}

// runProgram loads the configuration, runs the widget built by build and,
// with --watch, rebuilds it whenever the config file changes.
func runProgram(cmd *cobra.Command, build buildFunc, mouse tea.ProgramOption) error {
	cfg, path, err := cli.LoadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyConfig(cfg); err != nil {
		return err
	}
	logger := cli.GetLogger(cmd)
	tui.InitializeTUI()

	model, err := build(cfg)
	if err != nil {
		return err
	}
	root := newReloadModel(applyingConfig(build), model, logger)
	defer root.Close()
	defer logging.Shutdown()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.TUI.Mouse == nil || *cfg.TUI.Mouse {
		opts = append(opts, mouse)
	}
	p := tea.NewProgram(root, opts...)

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		if path == "" {
			logger.Warn("No config file found, --watch has nothing to watch")
		} else {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				err := config.Watch(ctx, path, watchDebounce, logger, func(c *config.Config, err error) {
					p.Send(configReloadedMsg{cfg: c, err: err})
				})
				if err != nil {
					logger.WithError(err).Warn("Config watcher stopped")
				}
			}()
		}
	}

	_, err = p.Run()
	return err
}


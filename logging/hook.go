package logging

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// fileHook writes every entry to out with its own formatter, independent of
// the logger's main output.
type fileHook struct {
	mu        sync.Mutex
	out       io.Writer
	formatter logrus.Formatter
	closed    bool
}

func (h *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fileHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	_, err = h.out.Write(line)
	return err
}

// Close closes the sink. Entries fired afterwards are dropped.
func (h *fileHook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	if c, ok := h.out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// closeSinks closes every file hook attached to logger.
func closeSinks(logger *logrus.Logger) {
	seen := make(map[*fileHook]bool)
	for _, hooks := range logger.Hooks {
		for _, hook := range hooks {
			if fh, ok := hook.(*fileHook); ok && !seen[fh] {
				seen[fh] = true
				_ = fh.Close()
			}
		}
	}
}

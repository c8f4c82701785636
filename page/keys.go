package page

import "strings"

// KeyEvent is a keyboard event as seen by a controller, independent of the
// surface that produced it.
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Meta  bool
	Shift bool
}

// Accelerator reports whether e is Ctrl or Cmd (Meta) combined with key.
// Keys compare case-insensitively.
func (e KeyEvent) Accelerator(key string) bool {
	return (e.Ctrl || e.Meta) && strings.EqualFold(e.Key, key)
}

// Is reports whether e is key without Ctrl or Meta held.
func (e KeyEvent) Is(key string) bool {
	return !e.Ctrl && !e.Meta && strings.EqualFold(e.Key, key)
}

// Package share hands a finished run to the outside world. It tries a native
// share target first, then the terminal clipboard over OSC 52, and finally
// writes the message to a file the player can copy by hand.
package share

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/charmbracelet/log"
)

// ProjectURL is appended to every shared message.
const ProjectURL = "https://github.com/vovakirdan/pedal-arcade"

// DefaultFallbackPath is where the message lands when nothing else worked.
const DefaultFallbackPath = "~/.arcade/share.txt"

// ErrNoTarget is returned when every share method failed or was unavailable.
var ErrNoTarget = errors.New("share: no share target available")

// Message is what gets shared.
type Message struct {
	Title string
	Text  string
	URL   string
}

// String joins the text and URL the way they are pasted.
func (m Message) String() string {
	if m.URL == "" {
		return m.Text
	}
	return m.Text + " " + m.URL
}

// Native is a platform share sheet. Terminals have none, so it is usually nil.
type Native interface {
	Share(ctx context.Context, msg Message) error
}

// Method reports how a message was delivered.
type Method int

const (
	MethodNone Method = iota
	MethodNative
	MethodClipboard
	MethodFile
)

// String returns a short label for status lines.
func (m Method) String() string {
	switch m {
	case MethodNative:
		return "shared"
	case MethodClipboard:
		return "copied to clipboard"
	case MethodFile:
		return "saved to file"
	default:
		return "not shared"
	}
}

// Sharer runs the fallback chain. The zero value writes only to the file.
type Sharer struct {
	// Native share target, tried first when set.
	Native Native
	// Clipboard receives the OSC 52 sequence, normally the session output.
	Clipboard io.Writer
	// Tmux wraps the sequence for tmux passthrough.
	Tmux bool
	// FallbackPath overrides DefaultFallbackPath.
	FallbackPath string
}

// New creates a Sharer that copies through out. Tmux passthrough is enabled
// when the process runs inside tmux.
func New(out io.Writer) *Sharer {
	return &Sharer{
		Clipboard: out,
		Tmux:      os.Getenv("TMUX") != "",
	}
}

// Share delivers msg through the first method that works. Each failure is
// logged and the next method is tried.
func (s *Sharer) Share(ctx context.Context, msg Message) (Method, error) {
	if s.Native != nil {
		err := s.Native.Share(ctx, msg)
		if err == nil {
			return MethodNative, nil
		}
		log.Warn("share: native share failed", "err", err)
	}

	if s.Clipboard != nil {
		err := s.copy(msg.String())
		if err == nil {
			return MethodClipboard, nil
		}
		log.Warn("share: clipboard copy failed", "err", err)
	}

	path, err := s.writeFile(msg.String())
	if err == nil {
		log.Info("share: message saved", "path", path)
		return MethodFile, nil
	}
	log.Warn("share: cannot write fallback file", "path", path, "err", err)

	return MethodNone, fmt.Errorf("%w: %w", ErrNoTarget, err)
}

func (s *Sharer) copy(text string) error {
	seq := osc52.New(text)
	if s.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(s.Clipboard); err != nil {
		return fmt.Errorf("share: write osc52 sequence: %w", err)
	}
	return nil
}

func (s *Sharer) writeFile(text string) (string, error) {
	path := s.FallbackPath
	if path == "" {
		path = DefaultFallbackPath
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path, fmt.Errorf("share: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, fmt.Errorf("share: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
		return path, fmt.Errorf("share: cannot write file: %w", err)
	}
	return path, nil
}

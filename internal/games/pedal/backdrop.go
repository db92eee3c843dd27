package pedal

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync/atomic"
)

//go:embed art/mountains.txt
var mountainsArt string

// Backdrop is a mountain ridge profile: for each art column, the ridge height
// as a fraction of the horizon height (0 = flat, 1 = touching the sky top).
type Backdrop struct {
	Ridge []float64
}

// ParseBackdrop reads ASCII art where any non-space rune is rock. The topmost
// rock row of each column sets that column's ridge height.
func ParseBackdrop(art string) (Backdrop, error) {
	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	if len(lines) == 0 {
		return Backdrop{}, fmt.Errorf("pedal: empty backdrop art")
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	if width == 0 {
		return Backdrop{}, fmt.Errorf("pedal: empty backdrop art")
	}

	rows := len(lines)
	ridge := make([]float64, width)
	for y, l := range lines {
		for x, r := range []rune(l) {
			if r == ' ' || ridge[x] > 0 {
				continue
			}
			ridge[x] = float64(rows-y) / float64(rows)
		}
	}
	if slices.Max(ridge) == 0 {
		return Backdrop{}, fmt.Errorf("pedal: backdrop art has no ridge")
	}
	return Backdrop{Ridge: ridge}, nil
}

// BackdropLoader loads the backdrop in the background. The loader goroutine is
// the only writer; the renderer reads whatever is there, or nil.
type BackdropLoader struct {
	ready atomic.Pointer[Backdrop]
	err   atomic.Pointer[error]
	done  chan struct{}
}

// NewBackdropLoader starts loading from path, or from the built-in art when
// path is empty.
func NewBackdropLoader(path string) *BackdropLoader {
	l := &BackdropLoader{done: make(chan struct{})}
	go l.load(path)
	return l
}

func (l *BackdropLoader) load(path string) {
	defer close(l.done)

	art := mountainsArt
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			err = fmt.Errorf("pedal: cannot read backdrop %s: %w", path, err)
			l.err.Store(&err)
			return
		}
		art = string(data)
	}

	b, err := ParseBackdrop(art)
	if err != nil {
		l.err.Store(&err)
		return
	}
	l.ready.Store(&b)
}

// Backdrop returns the loaded backdrop, or nil while loading or after failure.
func (l *BackdropLoader) Backdrop() *Backdrop {
	if l == nil {
		return nil
	}
	return l.ready.Load()
}

// Wait blocks until loading finishes and returns the load error, if any.
func (l *BackdropLoader) Wait() error {
	<-l.done
	if e := l.err.Load(); e != nil {
		return *e
	}
	return nil
}

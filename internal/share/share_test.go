package share

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeNative struct {
	err   error
	calls int
}

func (f *fakeNative) Share(_ context.Context, _ Message) error {
	f.calls++
	return f.err
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

var msg = Message{
	Title: "RetroPedal",
	Text:  "I got 42 pedals in RetroPedal! Can you beat me?",
	URL:   ProjectURL,
}

func TestMessageString(t *testing.T) {
	if got := msg.String(); got != msg.Text+" "+ProjectURL {
		t.Errorf("String() = %q", got)
	}
	if got := (Message{Text: "hi"}).String(); got != "hi" {
		t.Errorf("String() without URL = %q", got)
	}
}

func TestNativeFirst(t *testing.T) {
	native := &fakeNative{}
	var clip bytes.Buffer
	s := &Sharer{Native: native, Clipboard: &clip, FallbackPath: filepath.Join(t.TempDir(), "share.txt")}

	m, err := s.Share(context.Background(), msg)
	if err != nil {
		t.Fatalf("Share() failed: %v", err)
	}
	if m != MethodNative {
		t.Errorf("method = %s, expected native", m)
	}
	if clip.Len() != 0 {
		t.Error("clipboard should not be touched after native share")
	}
}

func TestClipboardAfterNativeFailure(t *testing.T) {
	native := &fakeNative{err: errors.New("cancelled")}
	var clip bytes.Buffer
	s := &Sharer{Native: native, Clipboard: &clip}

	m, err := s.Share(context.Background(), msg)
	if err != nil {
		t.Fatalf("Share() failed: %v", err)
	}
	if m != MethodClipboard || native.calls != 1 {
		t.Fatalf("method = %s after %d native calls", m, native.calls)
	}

	out := clip.String()
	if !strings.HasPrefix(out, "\x1b]52;c;") {
		t.Fatalf("expected an OSC 52 sequence, got %q", out)
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(msg.String()))
	if !strings.Contains(out, encoded) {
		t.Error("sequence should carry the base64 message")
	}
}

func TestTmuxPassthrough(t *testing.T) {
	var clip bytes.Buffer
	s := &Sharer{Clipboard: &clip, Tmux: true}

	if _, err := s.Share(context.Background(), msg); err != nil {
		t.Fatalf("Share() failed: %v", err)
	}
	if !strings.HasPrefix(clip.String(), "\x1bPtmux;") {
		t.Errorf("expected tmux passthrough, got %q", clip.String())
	}
}

func TestFileFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "share.txt")
	s := &Sharer{Clipboard: brokenWriter{}, FallbackPath: path}

	m, err := s.Share(context.Background(), msg)
	if err != nil {
		t.Fatalf("Share() failed: %v", err)
	}
	if m != MethodFile {
		t.Errorf("method = %s, expected file", m)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != msg.String()+"\n" {
		t.Errorf("file = %q", data)
	}
}

func TestFileFallbackHomeDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var s Sharer
	if _, err := s.Share(context.Background(), msg); err != nil {
		t.Fatalf("Share() failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, ".arcade", "share.txt")); err != nil {
		t.Errorf("expected default share file: %v", err)
	}
}

func TestEverythingFails(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	s := &Sharer{
		Native:       &fakeNative{err: errors.New("nope")},
		Clipboard:    brokenWriter{},
		FallbackPath: filepath.Join(blocker, "share.txt"),
	}

	m, err := s.Share(context.Background(), msg)
	if m != MethodNone {
		t.Errorf("method = %s, expected none", m)
	}
	if !errors.Is(err, ErrNoTarget) {
		t.Errorf("expected ErrNoTarget, got %v", err)
	}
}

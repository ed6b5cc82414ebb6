package notify

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/paintbucket/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
	iconExisted bool
}

func capture(t *testing.T, err error) *[]sent {
	t.Helper()
	var got []sent
	original := send
	send = func(title, body string, opts platform.Options) error {
		existed := false
		if opts.IconPath != "" {
			_, statErr := os.Stat(opts.IconPath)
			existed = statErr == nil
		}
		got = append(got, sent{title: title, body: body, opts: opts, iconExisted: existed})
		return err
	}
	t.Cleanup(func() { send = original })
	return &got
}

func TestDisabledEventsAreSilent(t *testing.T) {
	got := capture(t, nil)
	n := New(DefaultPreferences())
	n.Save("out.png")
	n.Copy("out.png")
	n.Fill("region", nil)
	var nilNotifier *Notifier
	nilNotifier.Save("out.png")
	if len(*got) != 0 {
		t.Fatalf("expected no notifications, got %+v", *got)
	}
}

func TestSaveUsesAbsolutePath(t *testing.T) {
	got := capture(t, nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	n := New(DefaultPreferences())
	n.Enable(EventSave, true)
	n.Save(path)
	if len(*got) != 1 {
		t.Fatalf("expected one notification, got %d", len(*got))
	}
	msg := (*got)[0]
	if msg.title != "Paintbucket" {
		t.Errorf("unexpected title %q", msg.title)
	}
	if msg.body != "Saved "+path {
		t.Errorf("unexpected body %q", msg.body)
	}
	if msg.opts.IconPath != path {
		t.Errorf("expected icon %q, got %q", path, msg.opts.IconPath)
	}
}

func TestFillAttachesInlineThumbnail(t *testing.T) {
	got := capture(t, errors.New("no bus"))
	n := New(DefaultPreferences())
	n.Enable(EventFill, true)
	n.Fill("12 pixels", image.NewRGBA(image.Rect(0, 0, 300, 150)))
	if len(*got) != 1 {
		t.Fatalf("expected one notification, got %d", len(*got))
	}
	msg := (*got)[0]
	if msg.body != "Filled 12 pixels" {
		t.Errorf("unexpected body %q", msg.body)
	}
	if !msg.opts.Transient {
		t.Errorf("expected fill notification to be transient")
	}
	if msg.opts.IconPath != "" {
		t.Errorf("fill should not reference a file icon, got %q", msg.opts.IconPath)
	}
	if msg.opts.Image == nil || msg.opts.Image.Bounds() != image.Rect(0, 0, 128, 64) {
		t.Fatalf("expected 128x64 thumbnail, got %v", msg.opts.Image)
	}
}

func TestLoadPreferencesFromEnv(t *testing.T) {
	t.Setenv("PAINTBUCKET_NOTIFY_TITLE", "Art")
	t.Setenv("PAINTBUCKET_NOTIFY_COPY_TEXT", "Clipboard has %s")
	got := capture(t, nil)
	n := New(LoadPreferences())
	n.Enable(EventCopy, true)
	n.Copy("")
	if len(*got) != 1 {
		t.Fatalf("expected one notification, got %d", len(*got))
	}
	if (*got)[0].title != "Art" || (*got)[0].body != "Clipboard has image" {
		t.Fatalf("unexpected notification %+v", (*got)[0])
	}
}

func TestThumbnailBoundsLongestSide(t *testing.T) {
	tests := []struct {
		in   image.Rectangle
		want image.Rectangle
	}{
		{image.Rect(0, 0, 64, 32), image.Rect(0, 0, 64, 32)},
		{image.Rect(0, 0, 512, 256), image.Rect(0, 0, 128, 64)},
		{image.Rect(0, 0, 100, 1000), image.Rect(0, 0, 12, 128)},
		{image.Rect(0, 0, 2000, 1), image.Rect(0, 0, 128, 1)},
	}
	for _, tt := range tests {
		got := thumbnail(image.NewRGBA(tt.in)).Bounds()
		if got != tt.want {
			t.Errorf("thumbnail(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

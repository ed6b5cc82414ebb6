// Package notify posts desktop notifications after paintbucket writes or
// copies an image.
package notify

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/example/paintbucket/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	EventFill Event = "fill"
	EventSave Event = "save"
	EventCopy Event = "copy"
)

const (
	defaultTitle = "Paintbucket"
	titleEnv     = "PAINTBUCKET_NOTIFY_TITLE"
	// previewSize bounds the longest side of a fill preview icon.
	previewSize = 128
)

var events = []struct {
	event    Event
	env      string
	template string
}{
	{EventFill, "PAINTBUCKET_NOTIFY_FILL_TEXT", "Filled %s"},
	{EventSave, "PAINTBUCKET_NOTIFY_SAVE_TEXT", "Saved %s"},
	{EventCopy, "PAINTBUCKET_NOTIFY_COPY_TEXT", "Copied %s to clipboard"},
}

// Preferences holds the notification title and a body template per event.
// Templates take the event detail as their single %s argument.
type Preferences struct {
	Title     string
	Templates map[Event]string
}

// DefaultPreferences returns the built in title and templates.
func DefaultPreferences() Preferences {
	prefs := Preferences{Title: defaultTitle, Templates: make(map[Event]string, len(events))}
	for _, e := range events {
		prefs.Templates[e.event] = e.template
	}
	return prefs
}

// LoadPreferences applies PAINTBUCKET_NOTIFY_* overrides to the defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv(titleEnv)); v != "" {
		prefs.Title = v
	}
	for _, e := range events {
		if v := strings.TrimSpace(os.Getenv(e.env)); v != "" {
			prefs.Templates[e.event] = v
		}
	}
	return prefs
}

var send = platform.Notify

// Notifier sends notifications for the events that have been enabled. A nil
// Notifier is valid and sends nothing.
type Notifier struct {
	title     string
	templates map[Event]string
	enabled   map[Event]bool
}

func New(prefs Preferences) *Notifier {
	n := &Notifier{
		title:     prefs.Title,
		templates: make(map[Event]string, len(prefs.Templates)),
		enabled:   make(map[Event]bool),
	}
	for k, v := range prefs.Templates {
		n.templates[k] = v
	}
	return n
}

func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Fill reports a completed fill. When img is given a thumbnail of it is
// attached as the notification image.
func (n *Notifier) Fill(detail string, img image.Image) {
	if !n.on(EventFill) {
		return
	}
	opts := platform.Options{Transient: true}
	if img != nil && !img.Bounds().Empty() {
		opts.Image = thumbnail(img)
	}
	n.post(EventFill, detail, opts)
}

// Save reports a written file, using the file itself as the icon.
func (n *Notifier) Save(path string) {
	if !n.on(EventSave) {
		return
	}
	var opts platform.Options
	detail := strings.TrimSpace(path)
	if abs, err := filepath.Abs(detail); err == nil {
		detail = abs
		if _, err := os.Stat(abs); err == nil {
			opts.IconPath = abs
		}
	}
	n.post(EventSave, detail, opts)
}

func (n *Notifier) Copy(detail string) {
	if !n.on(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "image"
	}
	n.post(EventCopy, detail, platform.Options{})
}

func (n *Notifier) on(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) post(event Event, detail string, opts platform.Options) {
	tmpl := strings.TrimSpace(n.templates[event])
	if tmpl == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(tmpl, strings.TrimSpace(detail)))
	if err := send(n.title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

// thumbnail scales img down so its longest side is at most previewSize.
func thumbnail(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= previewSize && h <= previewSize {
		return img
	}
	if w >= h {
		h = max(1, h*previewSize/w)
		w = previewSize
	} else {
		w = max(1, w*previewSize/h)
		h = previewSize
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

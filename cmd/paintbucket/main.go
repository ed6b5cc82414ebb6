package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/example/paintbucket/internal/config"
	"github.com/example/paintbucket/internal/notify"
	"github.com/example/paintbucket/internal/paint"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs         *flag.FlagSet
	program    string
	notifier   *notify.Notifier
	config     *config.Config
	fillAlerts bool
	saveAlerts bool
	copyAlerts bool
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	cfg.ApplyPalette()
	if cfg.Width > 0 {
		paint.EnsureWidth(cfg.Width)
	}

	r := &root{
		fs:       flag.NewFlagSet("paintbucket", flag.ExitOnError),
		program:  "paintbucket",
		notifier: notify.New(prefs),
		config:   cfg,
	}
	r.fs.BoolVar(&r.fillAlerts, "notify-fill", cfg.Notify.Fill, "show a desktop notification after a fill")
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving an image")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventFill, r.fillAlerts)
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "fill":
		cmd, err = parseFillCmd(subArgs, r)
	case "draw":
		cmd, err = parseDrawCmd(subArgs, r)
	case "new":
		cmd, err = parseNewCmd(subArgs, r)
	case "preview":
		cmd, err = parsePreviewCmd(subArgs, r)
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r)
	case "widths":
		cmd, err = parseWidthsCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (r *root) drawColor(flagValue string) (color.RGBA, error) {
	// Precedence: CLI > Env > Config > Default
	spec := strings.TrimSpace(flagValue)
	if spec == "" {
		spec = strings.TrimSpace(os.Getenv("PAINTBUCKET_COLOR"))
	}
	if spec == "" && r != nil && r.config != nil {
		spec = r.config.Color
	}
	if spec == "" {
		return paint.PaletteColors()[paint.DefaultColorIndex()].Color, nil
	}
	return paint.ParseColor(spec)
}

func (r *root) backgroundColor(flagValue string) (color.RGBA, error) {
	spec := strings.TrimSpace(flagValue)
	if spec == "" {
		spec = strings.TrimSpace(os.Getenv("PAINTBUCKET_BACKGROUND"))
	}
	if spec == "" && r != nil && r.config != nil {
		spec = r.config.Background
	}
	if spec == "" {
		spec = "white"
	}
	return paint.ParseColor(spec)
}

func (r *root) brushWidth(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if r != nil && r.config != nil && r.config.Width > 0 {
		return r.config.Width
	}
	return paint.DefaultWidth()
}

func (r *root) saveDir() string {
	if r == nil || r.config == nil {
		return ""
	}
	return r.config.SaveDir
}

func (r *root) notifyFill(detail string, img image.Image) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Fill(detail, img)
}

func (r *root) notifySave(path string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Save(path)
}

func (r *root) notifyCopy(detail string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Copy(detail)
}

package main

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"text/template"
)

//go:embed templates/*.txt
var helpFS embed.FS

var (
	helpOnce sync.Once
	helpTmpl *template.Template
)

func parseHelpTemplates() {
	helpTmpl = template.Must(template.New("").Funcs(map[string]any{
		"flags": func(fs *flag.FlagSet) []flagInfo {
			result := []flagInfo{}
			if fs == nil {
				return result
			}
			fs.VisitAll(func(f *flag.Flag) {
				result = append(result, flagInfo{f.Name, f.DefValue, f.Usage})
			})
			return result
		},
	}).ParseFS(helpFS, "templates/*.txt"))
}

type flagInfo struct {
	Name     string
	DefValue string
	Usage    string
}

type HelpData interface {
	Program() string
	Template() string
	FlagSet() *flag.FlagSet
}

type UsageError struct {
	of HelpData
}

func (e *UsageError) Error() string {
	help, err := e.renderHelp()
	if err != nil {
		return err.Error()
	}
	return help
}

func (e *UsageError) renderHelp() (string, error) {
	helpOnce.Do(parseHelpTemplates)
	var buf bytes.Buffer
	if err := helpTmpl.ExecuteTemplate(&buf, e.of.Template(), e.of); err != nil {
		log.Printf("error rendering help template: %v", err)
		return "", err
	}
	return buf.String(), nil
}

// usageFunc adapts a command to flag.FlagSet.Usage.
func usageFunc(h HelpData) func() {
	return func() {
		fmt.Fprint(os.Stderr, (&UsageError{of: h}).Error())
	}
}

// program returns the command path used in help output, tolerating a nil root.
func program(r *root, name string) string {
	if r == nil || r.program == "" {
		return "paintbucket " + name
	}
	return r.program + " " + name
}

func (r *root) Template() string {
	return "root.txt"
}

func (f *fillCmd) Template() string {
	return "fill.txt"
}

func (d *drawCmd) Template() string {
	return "draw.txt"
}

func (n *newCmd) Template() string {
	return "new.txt"
}

func (p *previewCmd) Template() string {
	return "preview.txt"
}

func (c *colorsCmd) Template() string {
	return "colors.txt"
}

func (c *widthsCmd) Template() string {
	return "widths.txt"
}

func (c *configCmd) Template() string {
	return "config.txt"
}

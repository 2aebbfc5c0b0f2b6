package busq

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"

	"github.com/busq/busq/workspace"
)

func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		// Fresh workspace per test file. Files are listed in insertion
		// order, so the directives control the scan order the
		// operations see.
		ws := workspace.NewMemory()

		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "file":
				return handleFile(t, d, ws)
			case "resolve":
				return handleResolve(t, d, ws)
			case "find":
				return handleFind(t, d, ws)
			case "handlers":
				return handleHandlers(t, d, ws)
			case "handler-file":
				return handleHandlerFile(t, d, ws)
			case "events":
				return handleEvents(t, d, ws)
			case "callsites":
				return handleCallSites(t, d, ws)
			default:
				t.Fatalf("unknown command: %s", d.Cmd)
				return ""
			}
		})
	})
}

// handleFile writes a file into the workspace
func handleFile(t *testing.T, d *datadriven.TestData, ws *workspace.Memory) string {
	var name string
	d.ScanArgs(t, "name", &name)

	ws.WriteFile(name, []byte(d.Input))
	return "" // file command produces no output
}

// handleResolve runs Resolve() and formats the result
func handleResolve(t *testing.T, d *datadriven.TestData, ws *workspace.Memory) string {
	var opts ResolveOptions
	d.ScanArgs(t, "file", &opts.File)
	d.ScanArgs(t, "line", &opts.Line)

	resolved, err := Resolve(context.Background(), ws, opts)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	if resolved == nil {
		return "(no event)"
	}

	return fmt.Sprintf("%s (class %s, kind %s)", resolved.Event, resolved.Class, resolved.Kind)
}

// handleFind runs FindEntry() and formats the match
func handleFind(t *testing.T, d *datadriven.TestData, ws *workspace.Memory) string {
	var opts FindOptions
	d.ScanArgs(t, "event", &opts.Event)

	match, err := FindEntry(context.Background(), ws, opts)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	if match == nil {
		return "(not found)"
	}

	handlers := "(none)"
	if len(match.Handlers) > 0 {
		handlers = strings.Join(match.Handlers, ", ")
	}
	return fmt.Sprintf("%s:%d:%d\nhandlers: %s",
		match.File,
		match.Position.Line,
		match.Position.Column,
		handlers,
	)
}

// handleHandlers runs Handlers() and formats the locations
func handleHandlers(t *testing.T, d *datadriven.TestData, ws *workspace.Memory) string {
	var opts HandlersOptions
	d.ScanArgs(t, "event", &opts.Event)
	if d.HasArg("resolve") {
		opts.Resolve = true
	}

	locations, err := Handlers(context.Background(), ws, opts)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	if len(locations) == 0 {
		return "(no handlers)"
	}

	var lines []string
	for _, loc := range locations {
		line := loc.Handler
		if loc.File != "" {
			line += " -> " + loc.File
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// handleHandlerFile runs HandlerFile() and formats the path
func handleHandlerFile(t *testing.T, d *datadriven.TestData, ws *workspace.Memory) string {
	var opts HandlerFileOptions
	d.ScanArgs(t, "handler", &opts.Handler)

	file, err := HandlerFile(context.Background(), ws, opts)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	if file == "" {
		return "(no file)"
	}
	return file
}

// handleEvents runs Events() and formats the listing
func handleEvents(t *testing.T, d *datadriven.TestData, ws *workspace.Memory) string {
	var opts EventsOptions
	if d.HasArg("filter") {
		d.ScanArgs(t, "filter", &opts.Filter)
	}

	infos, err := Events(context.Background(), ws, opts)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	if len(infos) == 0 {
		return "(no events)"
	}

	var lines []string
	for _, info := range infos {
		line := info.Event
		if info.Handler != "" {
			line += " -> " + info.Handler
		}
		line += fmt.Sprintf(" (%s)", info.File)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// handleCallSites runs CallSites() and formats the sites
func handleCallSites(t *testing.T, d *datadriven.TestData, ws *workspace.Memory) string {
	opts := CallSitesOptions{
		Jobs: 1, // single-threaded for deterministic ordering
	}
	if d.HasArg("file") {
		d.ScanArgs(t, "file", &opts.File)
	}

	sites, err := CallSites(context.Background(), ws, opts)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	if len(sites) == 0 {
		return "(no call sites)"
	}

	var lines []string
	for _, site := range sites {
		lines = append(lines, fmt.Sprintf("%s:%d %s (class %s)",
			site.File, site.Line, site.Event, site.Class))
	}
	return strings.Join(lines, "\n")
}

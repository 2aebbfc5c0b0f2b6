// Package busq locates event-bus subscriptions in Ruby projects: it
// derives event names from broadcast call sites, finds the matching
// entries in YAML subscription config files, and resolves handler
// classes to their source files.
package busq

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/busq/busq/ruby"
	"github.com/busq/busq/types"
	"github.com/busq/busq/workspace"
)

// Resolve derives the event name broadcast at a call site. It returns
// nil when the line carries no broadcast token or has no enclosing
// class.
func Resolve(ctx context.Context, ws workspace.Workspace, opts ResolveOptions) (*types.ResolvedEvent, error) {
	if opts.File == "" {
		return nil, errors.New("file is required")
	}
	if opts.Line < 1 {
		return nil, errors.New("line must be 1-based")
	}
	logger := ensureLogger(opts.Logger)

	data, err := ws.ReadFile(ctx, opts.File)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", opts.File, err)
	}

	lines := splitLines(data)
	idx := opts.Line - 1
	if idx >= len(lines) {
		return nil, fmt.Errorf("%s has no line %d", opts.File, opts.Line)
	}

	kind, ok := ruby.KindOnLine(lines[idx])
	if !ok {
		logger.Debug("no broadcast token on line", "file", opts.File, "line", opts.Line)
		return nil, nil
	}
	class, ok := ruby.EnclosingClass(lines, idx)
	if !ok {
		logger.Debug("no enclosing class", "file", opts.File, "line", opts.Line)
		return nil, nil
	}

	return &types.ResolvedEvent{
		Event: ruby.EventNameFor(class, kind),
		Class: class,
		Kind:  kind,
		File:  opts.File,
		Line:  opts.Line,
	}, nil
}

// FindEntry returns the first subscription-config line containing the
// event name, scanning candidate files in workspace order. The first
// file with a hit ends the scan; nil means no file contains the event.
func FindEntry(ctx context.Context, ws workspace.Workspace, opts FindOptions) (*types.EntryMatch, error) {
	if opts.Event == "" {
		return nil, errors.New("event is required")
	}
	if opts.ConfigGlob == "" {
		opts.ConfigGlob = DefaultConfigGlob
	}
	if opts.Exclude == "" {
		opts.Exclude = DefaultExclude
	}
	if opts.MaxConfigFiles == 0 {
		opts.MaxConfigFiles = DefaultMaxConfigFiles
	}
	logger := ensureLogger(opts.Logger)

	paths, err := collectConfigs(ctx, ws, opts.ConfigGlob, opts.Exclude, opts.MaxConfigFiles)
	if err != nil {
		return nil, err
	}
	logger.Debug("scanning config files", "count", len(paths), "event", opts.Event)

	for _, path := range paths {
		data, err := ws.ReadFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if match := findFirstMatch(path, splitLines(data), opts.Event); match != nil {
			return match, nil
		}
	}
	return nil, nil
}

// Handlers returns the handlers registered for an event across all
// candidate config files, in workspace order. Repeated registrations
// are kept. Files that fail to parse contribute nothing. With
// opts.Resolve, each handler is also resolved to its source file.
func Handlers(ctx context.Context, ws workspace.Workspace, opts HandlersOptions) ([]types.HandlerLocation, error) {
	if opts.Event == "" {
		return nil, errors.New("event is required")
	}
	if opts.ConfigGlob == "" {
		opts.ConfigGlob = DefaultConfigGlob
	}
	if opts.Exclude == "" {
		opts.Exclude = DefaultExclude
	}
	if opts.MaxConfigFiles == 0 {
		opts.MaxConfigFiles = DefaultMaxConfigFiles
	}
	if opts.MaxHandlerFiles == 0 {
		opts.MaxHandlerFiles = DefaultMaxHandlerFiles
	}
	logger := ensureLogger(opts.Logger)

	paths, err := collectConfigs(ctx, ws, opts.ConfigGlob, opts.Exclude, opts.MaxConfigFiles)
	if err != nil {
		return nil, err
	}

	locations := []types.HandlerLocation{}
	for _, path := range paths {
		data, err := ws.ReadFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		entries, err := parseEntries(data)
		if err != nil {
			logger.Debug("skipping unparseable config", "file", path, "err", err)
			continue
		}
		for _, entry := range entries {
			if entry.EventName != opts.Event || entry.Handler == "" {
				continue
			}
			loc := types.HandlerLocation{Handler: entry.Handler}
			if opts.Resolve {
				file, err := HandlerFile(ctx, ws, HandlerFileOptions{
					Handler:       entry.Handler,
					Exclude:       opts.Exclude,
					MaxCandidates: opts.MaxHandlerFiles,
					Logger:        opts.Logger,
				})
				if err != nil {
					return nil, err
				}
				loc.File = file
			}
			locations = append(locations, loc)
		}
	}
	return locations, nil
}

// HandlerFile resolves a handler class identifier to its source file by
// naming convention: the conventional relative path must end the file
// path. The first candidate in workspace order wins; "" means no file
// matched.
func HandlerFile(ctx context.Context, ws workspace.Workspace, opts HandlerFileOptions) (string, error) {
	if opts.Handler == "" {
		return "", errors.New("handler is required")
	}
	if opts.Exclude == "" {
		opts.Exclude = DefaultExclude
	}
	if opts.MaxCandidates == 0 {
		opts.MaxCandidates = DefaultMaxHandlerFiles
	}
	logger := ensureLogger(opts.Logger)

	rel := ruby.HandlerRelPath(opts.Handler)
	paths, err := ws.ListFiles(ctx, "**/"+rel, opts.Exclude, opts.MaxCandidates)
	if err != nil {
		return "", fmt.Errorf("list handler files: %w", err)
	}
	logger.Debug("handler file candidates", "handler", opts.Handler, "count", len(paths))
	if len(paths) == 0 {
		return "", nil
	}
	return paths[0], nil
}

// Events lists every subscription entry across candidate config files.
// With opts.Filter, entries are fuzzy-ranked by event name; otherwise
// they are sorted by event, then file.
func Events(ctx context.Context, ws workspace.Workspace, opts EventsOptions) ([]types.EventInfo, error) {
	if opts.ConfigGlob == "" {
		opts.ConfigGlob = DefaultConfigGlob
	}
	if opts.Exclude == "" {
		opts.Exclude = DefaultExclude
	}
	if opts.MaxConfigFiles == 0 {
		opts.MaxConfigFiles = DefaultMaxConfigFiles
	}
	logger := ensureLogger(opts.Logger)

	paths, err := collectConfigs(ctx, ws, opts.ConfigGlob, opts.Exclude, opts.MaxConfigFiles)
	if err != nil {
		return nil, err
	}

	infos := []types.EventInfo{}
	for _, path := range paths {
		data, err := ws.ReadFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		entries, err := parseEntries(data)
		if err != nil {
			logger.Debug("skipping unparseable config", "file", path, "err", err)
			continue
		}
		for _, entry := range entries {
			if entry.EventName == "" {
				continue
			}
			infos = append(infos, types.EventInfo{
				Event:   entry.EventName,
				Handler: entry.Handler,
				File:    path,
			})
		}
	}

	if opts.Filter != "" {
		names := make([]string, len(infos))
		for i, info := range infos {
			names[i] = info.Event
		}
		matches := fuzzy.Find(opts.Filter, names)
		filtered := make([]types.EventInfo, len(matches))
		for i, m := range matches {
			filtered[i] = infos[m.Index]
		}
		return filtered, nil
	}

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Event != infos[j].Event {
			return infos[i].Event < infos[j].Event
		}
		return infos[i].File < infos[j].File
	})
	return infos, nil
}

// CallSites finds broadcast call sites. With opts.File it scans one
// file; otherwise it scans every Ruby source file in the workspace with
// a worker pool and sorts the results by file, then line.
func CallSites(ctx context.Context, ws workspace.Workspace, opts CallSitesOptions) ([]types.CallSite, error) {
	if opts.Exclude == "" {
		opts.Exclude = DefaultExclude
	}
	if opts.Jobs == 0 {
		opts.Jobs = runtime.NumCPU()
	}
	logger := ensureLogger(opts.Logger)

	var sites []types.CallSite
	if opts.File != "" {
		data, err := ws.ReadFile(ctx, opts.File)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", opts.File, err)
		}
		sites = ruby.CallSitesIn(opts.File, splitLines(data))
	} else {
		files, err := ws.ListFiles(ctx, "**/*"+ruby.Extension, opts.Exclude, opts.MaxFiles)
		if err != nil {
			return nil, fmt.Errorf("list source files: %w", err)
		}
		logger.Debug("scanning source files", "count", len(files))

		sites = runWorkers(ctx, ws, files, opts.Jobs, func(path string, data []byte) []types.CallSite {
			return ruby.CallSitesIn(path, splitLines(data))
		})

		sort.Slice(sites, func(i, j int) bool {
			if sites[i].File != sites[j].File {
				return sites[i].File < sites[j].File
			}
			return sites[i].Line < sites[j].Line
		})
	}

	if sites == nil {
		sites = []types.CallSite{}
	}
	return sites, nil
}

// ensureLogger returns a discard logger when l is nil.
func ensureLogger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l
}

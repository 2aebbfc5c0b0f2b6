package busq

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/busq/busq/types"
	"github.com/busq/busq/workspace"
)

// handlerWindow is how many lines after a textual event match are
// searched for handler entries before giving up.
const handlerWindow = 20

var (
	// entryBoundaryRe marks the start of the next subscription entry.
	entryBoundaryRe = regexp.MustCompile(`^\s*-\s+event_name:`)

	// handlerLineRe pulls the handler identifier out of a mapping line.
	handlerLineRe = regexp.MustCompile(`handler:\s*["']?([A-Za-z0-9_:]+)`)
)

// findFirstMatch returns the first line containing event as a raw
// substring, with the handler identifiers registered under it. The
// match is textual, not structural: the event name counts wherever it
// appears on a line.
func findFirstMatch(path string, lines []string, event string) *types.EntryMatch {
	for i, line := range lines {
		col := strings.Index(line, event)
		if col < 0 {
			continue
		}
		return &types.EntryMatch{
			Event:    event,
			File:     path,
			Position: types.Position{Line: i + 1, Column: col + 1},
			Handlers: collectHandlers(lines, i+1),
		}
	}
	return nil
}

// collectHandlers gathers handler identifiers from up to handlerWindow
// lines starting at from, stopping at the next entry boundary.
func collectHandlers(lines []string, from int) []string {
	var handlers []string
	for i := from; i < len(lines) && i < from+handlerWindow; i++ {
		if entryBoundaryRe.MatchString(lines[i]) {
			break
		}
		if m := handlerLineRe.FindStringSubmatch(lines[i]); m != nil {
			handlers = append(handlers, m[1])
		}
	}
	return handlers
}

// parseEntries unmarshals a subscription config document: a root-level
// sequence of mappings. Keys beyond event_name and handler are ignored.
func parseEntries(data []byte) ([]types.SubscriptionEntry, error) {
	var entries []types.SubscriptionEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// collectConfigs lists candidate subscription config files.
func collectConfigs(ctx context.Context, ws workspace.Workspace, glob, exclude string, max int) ([]string, error) {
	paths, err := ws.ListFiles(ctx, glob, exclude, max)
	if err != nil {
		return nil, fmt.Errorf("list config files: %w", err)
	}
	return paths, nil
}

// splitLines splits content into lines, tolerating very long lines.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}

// Package ruby knows the source conventions of event-bus Ruby projects:
// how class identifiers map to file paths, which lines broadcast bus
// events, and how the canonical event name is built from both.
package ruby

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/busq/busq/types"
)

// EventPrefix starts every derived event name.
const EventPrefix = "bus_event"

// Extension is the Ruby source file extension.
const Extension = ".rb"

// Broadcast tokens recognized on a call-site line. The workflow token
// is checked first: it is the more specific of the two.
const (
	tokenWorkflow = "workflow_event_success"
	tokenSuccess  = "broadcast_success"
)

var (
	classRe = regexp.MustCompile(`^\s*class\s+([A-Za-z0-9_:]+)`)
	camelRe = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// ClassToPath converts a class identifier to its conventional source
// path: namespaces become directories and CamelCase words become
// snake_case. "Vacacion::Create" becomes "vacacion/create".
//
// Uppercase runs get no special casing: "FooHTTP" becomes "foo_http"
// but "HTTPServer" becomes "httpserver", matching the emitting
// convention. The transform is a fixed point on its own output.
func ClassToPath(identifier string) string {
	segments := strings.Split(identifier, "::")
	for i, seg := range segments {
		segments[i] = strings.ToLower(camelRe.ReplaceAllString(seg, "${1}_${2}"))
	}
	return strings.Join(segments, "/")
}

// HandlerRelPath returns the conventional source path of a handler
// class, e.g. "Billing::OnPaid" lives in "billing/on_paid.rb".
func HandlerRelPath(identifier string) string {
	return ClassToPath(identifier) + Extension
}

// KindOnLine reports the broadcast kind of a call-site line, if any.
// Detection is by substring, so tokens inside comments or strings
// count too.
func KindOnLine(line string) (types.CallKind, bool) {
	switch {
	case strings.Contains(line, tokenWorkflow):
		return types.KindWorkflowSuccess, true
	case strings.Contains(line, tokenSuccess):
		return types.KindSuccess, true
	default:
		return "", false
	}
}

// EnclosingClass scans upward from idx (0-based, inclusive) for the
// nearest class declaration and returns its identifier. An idx past the
// last line scans from the end.
func EnclosingClass(lines []string, idx int) (string, bool) {
	if idx >= len(lines) {
		idx = len(lines) - 1
	}
	for i := idx; i >= 0; i-- {
		if m := classRe.FindStringSubmatch(lines[i]); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// EventNameFor builds the canonical event name a class broadcasts.
func EventNameFor(class string, kind types.CallKind) string {
	return fmt.Sprintf("%s.%s.%s", EventPrefix, ClassToPath(class), kind)
}

// CallSitesIn returns every broadcast call site in a file, with event
// names derived from each site's nearest enclosing class. Sites with no
// enclosing class are dropped.
func CallSitesIn(path string, lines []string) []types.CallSite {
	var sites []types.CallSite
	for i, line := range lines {
		kind, ok := KindOnLine(line)
		if !ok {
			continue
		}
		class, ok := EnclosingClass(lines, i)
		if !ok {
			continue
		}
		sites = append(sites, types.CallSite{
			File:  path,
			Line:  i + 1,
			Kind:  kind,
			Class: class,
			Event: EventNameFor(class, kind),
		})
	}
	return sites
}

package busq

import "log/slog"

// Defaults applied by the operations when option fields are zero.
const (
	// DefaultConfigGlob locates subscription config files.
	DefaultConfigGlob = "**/config/event_bus_subscriptions.yml"

	// DefaultExclude keeps dependency trees out of every scan.
	DefaultExclude = "**/node_modules/**"

	// DefaultMaxConfigFiles caps how many config files one lookup reads.
	DefaultMaxConfigFiles = 200

	// DefaultMaxHandlerFiles caps source candidates when resolving a
	// handler to a file.
	DefaultMaxHandlerFiles = 10
)

// ResolveOptions configures the Resolve function.
type ResolveOptions struct {
	// File is the source file to inspect, relative to the workspace
	// root (required).
	File string

	// Line is the 1-based line of the broadcast call site (required).
	Line int

	// Logger receives debug logs. If nil, logs are discarded.
	Logger *slog.Logger
}

// FindOptions configures the FindEntry function.
type FindOptions struct {
	// Event is the event name to look for (required).
	Event string

	// ConfigGlob locates subscription config files.
	// If empty, DefaultConfigGlob is used.
	ConfigGlob string

	// Exclude is a glob of paths every scan skips.
	// If empty, DefaultExclude is used.
	Exclude string

	// MaxConfigFiles caps how many config files are scanned.
	// If 0, DefaultMaxConfigFiles is used.
	MaxConfigFiles int

	// Logger receives debug logs. If nil, logs are discarded.
	Logger *slog.Logger
}

// HandlersOptions configures the Handlers function.
type HandlersOptions struct {
	// Event is the event name to look for (required).
	Event string

	// Resolve resolves each handler identifier to its source file.
	Resolve bool

	// ConfigGlob locates subscription config files.
	// If empty, DefaultConfigGlob is used.
	ConfigGlob string

	// Exclude is a glob of paths every scan skips.
	// If empty, DefaultExclude is used.
	Exclude string

	// MaxConfigFiles caps how many config files are scanned.
	// If 0, DefaultMaxConfigFiles is used.
	MaxConfigFiles int

	// MaxHandlerFiles caps source candidates per handler.
	// If 0, DefaultMaxHandlerFiles is used.
	MaxHandlerFiles int

	// Logger receives debug logs. If nil, logs are discarded.
	Logger *slog.Logger
}

// HandlerFileOptions configures the HandlerFile function.
type HandlerFileOptions struct {
	// Handler is the handler class identifier (required).
	Handler string

	// Exclude is a glob of paths every scan skips.
	// If empty, DefaultExclude is used.
	Exclude string

	// MaxCandidates caps how many matching files are considered.
	// If 0, DefaultMaxHandlerFiles is used.
	MaxCandidates int

	// Logger receives debug logs. If nil, logs are discarded.
	Logger *slog.Logger
}

// EventsOptions configures the Events function.
type EventsOptions struct {
	// Filter fuzzy-matches event names. Empty lists everything.
	Filter string

	// ConfigGlob locates subscription config files.
	// If empty, DefaultConfigGlob is used.
	ConfigGlob string

	// Exclude is a glob of paths every scan skips.
	// If empty, DefaultExclude is used.
	Exclude string

	// MaxConfigFiles caps how many config files are scanned.
	// If 0, DefaultMaxConfigFiles is used.
	MaxConfigFiles int

	// Logger receives debug logs. If nil, logs are discarded.
	Logger *slog.Logger
}

// CallSitesOptions configures the CallSites function.
type CallSitesOptions struct {
	// File restricts the scan to a single source file.
	// If empty, every Ruby file in the workspace is scanned.
	File string

	// Exclude is a glob of paths every scan skips.
	// If empty, DefaultExclude is used.
	Exclude string

	// MaxFiles caps how many source files are scanned.
	// If 0, there is no cap.
	MaxFiles int

	// Jobs is the number of parallel workers.
	// If 0, defaults to number of CPUs.
	Jobs int

	// Logger receives debug logs. If nil, logs are discarded.
	Logger *slog.Logger
}

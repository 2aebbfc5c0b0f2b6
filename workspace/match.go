package workspace

import (
	stdpath "path"
	"path/filepath"
	"strings"
)

// matchGlob matches a slash-separated relative path against a glob
// pattern. "**" crosses directory boundaries; everything else is
// path.Match syntax. Segment boundaries are respected, so
// "**/config/x.yml" does not match "myconfig/x.yml".
func matchGlob(pattern, filePath string) bool {
	pattern = filepath.ToSlash(pattern)
	filePath = filepath.ToSlash(filePath)

	if strings.Contains(pattern, "**") {
		parts := strings.Split(pattern, "**")

		// Pattern like "**/vendor/**": any path with the middle
		// segment(s).
		if len(parts) == 3 && parts[0] == "" && parts[2] == "" {
			middle := strings.Trim(parts[1], "/")
			return strings.Contains("/"+filePath+"/", "/"+middle+"/")
		}

		if len(parts) == 2 {
			prefix := strings.TrimSuffix(parts[0], "/")
			suffix := strings.TrimPrefix(parts[1], "/")

			// Pattern like "**/suffix": the trailing segments must
			// match.
			if prefix == "" && suffix != "" {
				return matchTail(suffix, filePath)
			}
			// Pattern like "prefix/**": the path must live under
			// prefix.
			if suffix == "" && prefix != "" {
				return filePath == prefix || strings.HasPrefix(filePath, prefix+"/")
			}
			// Pattern like "prefix/**/suffix".
			if prefix != "" && suffix != "" {
				under := filePath == prefix || strings.HasPrefix(filePath, prefix+"/")
				return under && matchTail(suffix, filePath)
			}
			return true
		}
	}

	// Plain patterns match the base name first ("*.yml"), then the
	// whole path ("config/*.yml"). path.Match is used because paths
	// are already slash-normalized.
	base := filePath[strings.LastIndex(filePath, "/")+1:]
	if ok, _ := stdpath.Match(pattern, base); ok {
		return true
	}
	ok, _ := stdpath.Match(pattern, filePath)
	return ok
}

// matchTail reports whether the trailing segments of filePath match the
// suffix pattern, segment for segment.
func matchTail(suffix, filePath string) bool {
	sufSegs := strings.Split(suffix, "/")
	pathSegs := strings.Split(filePath, "/")
	if len(pathSegs) < len(sufSegs) {
		return false
	}
	tail := strings.Join(pathSegs[len(pathSegs)-len(sufSegs):], "/")
	ok, err := stdpath.Match(suffix, tail)
	return ok && err == nil
}

package domain

import "strings"

// Extension returns the extension component of a file name, including the
// leading dot. Leading dots are not treated as separators, so ".bashrc" has
// no extension while "archive.tar.gz" has ".gz".
func Extension(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return ""
	}
	if strings.Trim(name[:idx], ".") == "" {
		return ""
	}
	return name[idx:]
}

// MatchesExtension reports whether name's extension equals ext exactly.
func MatchesExtension(name, ext string) bool {
	return Extension(name) == ext
}

// ExtensionFilter selects the files a watch session tracks.
//
// The zero value is unset and matches no name at all. A filter built from ""
// matches names without an extension.
type ExtensionFilter struct {
	ext string
	set bool
}

// NewExtensionFilter returns a filter matching names whose extension is ext.
func NewExtensionFilter(ext string) ExtensionFilter {
	return ExtensionFilter{ext: ext, set: true}
}

// IsSet reports whether an extension was configured.
func (f ExtensionFilter) IsSet() bool {
	return f.set
}

// Value returns the configured extension, or "" when unset.
func (f ExtensionFilter) Value() string {
	return f.ext
}

// Matches reports whether name passes the filter.
func (f ExtensionFilter) Matches(name string) bool {
	return f.set && MatchesExtension(name, f.ext)
}

func (f ExtensionFilter) String() string {
	if !f.set {
		return "<unset>"
	}
	return f.ext
}

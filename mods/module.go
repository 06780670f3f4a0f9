package mods

// ModuleFileName is the name of the manifest file identifying a module root.
const ModuleFileName = "sable-mod.toml"

// SableModule represents a module -- specifically, the module configuration
// loaded from its manifest file.
type SableModule struct {
	// Name is the name of the module
	Name string

	// Version is the module's declared version string
	Version string

	// ModuleRoot is the path to the root directory of the current module
	ModuleRoot string

	// SourceDirs is the list of directories, relative to the module root, that
	// are scanned for source files.  An empty list means the module root
	// itself.
	SourceDirs []string

	// LogLevel is the manifest-selected diagnostic verbosity.  Empty means the
	// command-line value wins.
	LogLevel string
}

// IsValidIdentifier returns whether or not a given string would be a valid
// identifier (module name, package name, etc.)
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}

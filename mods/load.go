package mods

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"sable/util"

	"github.com/pelletier/go-toml"
)

// tomlModuleFile represents the module file as it is encoded in TOML
type tomlModuleFile struct {
	Module *tomlModule `toml:"module"`
}

// tomlModule represents a Sable module as it is encoded in TOML
type tomlModule struct {
	Name       string   `toml:"name"`
	Version    string   `toml:"version"`
	SourceDirs []string `toml:"source-dirs,omitempty"`
	LogLevel   string   `toml:"log-level,omitempty"`
}

// logLevelNames is the set of log level strings a manifest may select.
var logLevelNames = []string{"silent", "error", "warn", "verbose"}

// LoadModule loads and validates a module manifest.  `path` is the path to
// the module directory.  It returns the deserialized module and an error
// value.
func LoadModule(path string) (*SableModule, error) {
	buff, err := os.ReadFile(filepath.Join(path, ModuleFileName))
	if err != nil {
		return nil, err
	}

	tmf := &tomlModuleFile{}
	if err := toml.Unmarshal(buff, tmf); err != nil {
		return nil, err
	}

	mod := &SableModule{
		// module root is the directory enclosing the module file
		ModuleRoot: path,
	}

	if err := validateModule(mod, tmf.Module); err != nil {
		return nil, err
	}

	mod.Name = tmf.Module.Name
	mod.Version = tmf.Module.Version
	mod.SourceDirs = tmf.Module.SourceDirs
	mod.LogLevel = tmf.Module.LogLevel

	return mod, nil
}

// validateModule checks that the top level module contents are valid
func validateModule(mod *SableModule, tmod *tomlModule) error {
	if tmod == nil {
		return fmt.Errorf("manifest at %s has no [module] table", mod.ModuleRoot)
	}

	if tmod.Name == "" {
		return fmt.Errorf("missing module name for module at %s", mod.ModuleRoot)
	}

	if !IsValidIdentifier(tmod.Name) {
		return errors.New("module name must be a valid identifier")
	}

	if tmod.LogLevel != "" && !util.Contains(logLevelNames, tmod.LogLevel) {
		return fmt.Errorf("`%s` is not a valid log level", tmod.LogLevel)
	}

	for _, dir := range tmod.SourceDirs {
		if filepath.IsAbs(dir) {
			return fmt.Errorf("source directory `%s` must be relative to the module root", dir)
		}
	}

	return nil
}

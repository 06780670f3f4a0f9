package cmd

import (
	"os"
	"path/filepath"

	"sable/check"
	"sable/mods"
	"sable/report"

	"github.com/ComedicChimera/olive"
)

// logLevels maps command-line log level strings to reporter log levels.
var logLevels = map[string]int{
	"silent":  report.LogLevelSilent,
	"error":   report.LogLevelError,
	"warn":    report.LogLevelWarn,
	"verbose": report.LogLevelVerbose,
}

// Execute runs the main `sablec` application
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("sablec", "sablec is a tool for checking Sable projects", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	checkCmd := cli.AddSubcommand("check", "check a module and report errors", true)
	checkCmd.AddPrimaryArg("module-path", "the path to the module to check", true)

	modCmd := cli.AddSubcommand("mod", "manage modules", true)
	modInitCmd := modCmd.AddSubcommand("init", "initialize a module", true)
	modInitCmd.AddPrimaryArg("module-name", "the name of the new module", true)

	cli.AddSubcommand("version", "print the Sable version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.PrintErrorMessage("CLI Usage Error", err)
		os.Exit(1)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "check":
		execCheckCommand(subResult, result.Arguments["loglevel"].(string))
	case "mod":
		execModCommand(subResult)
	case "version":
		report.PrintInfoMessage("Sable Version", mods.SableVersion)
	}
}

// execCheckCommand executes the check subcommand and handles all errors
func execCheckCommand(result *olive.ArgParseResult, loglevel string) {
	// extract CLI data
	moduleRelPath, _ := result.PrimaryArg()

	modulePath, err := filepath.Abs(moduleRelPath)
	if err != nil {
		report.PrintErrorMessage("Path Error", err)
		os.Exit(1)
	}

	// attempt to load the module manifest
	mod, err := mods.LoadModule(modulePath)
	if err != nil {
		report.PrintErrorMessage("Module Load Error", err)
		os.Exit(1)
	}

	// the manifest log level wins over the command-line default
	if mod.LogLevel != "" {
		loglevel = mod.LogLevel
	}

	report.InitReporter(logLevels[loglevel])

	// run analysis over the module.  Source loading feeds the checker the
	// module's top-level statements; until a frontend lands the statement list
	// is empty and `check` validates the manifest and configuration only.
	c := check.NewChecker(mod)
	if _, ok := c.Check(nil); !ok {
		os.Exit(1)
	}

	report.PrintInfoMessage("Checked", mod.Name)
}

// execModCommand executes the `mod` subcommand and its subcommands.  It
// handles all errors related to this command
func execModCommand(result *olive.ArgParseResult) {
	subcmdName, subResult, _ := result.Subcommand()

	workDir, err := os.Getwd()
	if err != nil {
		report.PrintErrorMessage("Path Error", err)
		os.Exit(1)
	}

	switch subcmdName {
	case "init":
		modNameValue, _ := subResult.PrimaryArg()
		if err := mods.InitModule(modNameValue, workDir); err != nil {
			report.PrintErrorMessage("Module Init Error", err)
			os.Exit(1)
		}
	}
}

package report

import (
	"fmt"
	"os"
	"sync"
)

// reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during compilation.  The reporter respects the set log
// level and is synchronized: its methods can be safely called from multiple
// goroutines.
type reporter struct {
	// The mutex used to synchronize different report calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The number of errors reported so far.
	errorCount int

	// The number of warnings reported so far.
	warnCount int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// rep is the global reporter instance.
var rep = reporter{m: &sync.Mutex{}, logLevel: LogLevelVerbose}

// InitReporter initializes the global reporter with the given log level.
func InitReporter(logLevel int) {
	rep = reporter{m: &sync.Mutex{}, logLevel: logLevel}
}

// AnyErrors returns whether or not any errors have been reported.
func AnyErrors() bool {
	return rep.errorCount > 0
}

// ShouldProceed indicates whether there have been any errors that should cause
// compilation to stop at the current phase.
func ShouldProceed() bool {
	return rep.errorCount == 0
}

// ErrorCount returns the number of errors reported so far.
func ErrorCount() int {
	return rep.errorCount
}

// -----------------------------------------------------------------------------

// ReportError reports an error to the user.  Compile errors are displayed with
// their kind label and source span; all other errors are displayed plainly.
func ReportError(reprPath string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		if ce, ok := err.(*CompileError); ok {
			displayCompileError(reprPath, ce)
		} else {
			displayStdError(reprPath, err)
		}
	}
}

// ReportWarning reports a compile warning to the user.
func ReportWarning(reprPath string, span *TextSpan, msg string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.warnCount++

	if rep.logLevel > LogLevelError {
		displayWarning(reprPath, span, fmt.Sprintf(msg, args...))
	}
}

// ReportICE reports an internal compiler error.  These errors specifically
// result from a bug or unexpected condition occurring within the compiler:
// they are not intended to ever happen.  These errors are always displayed
// regardless of log level.
func ReportICE(msg string, args ...interface{}) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayICE(fmt.Sprintf(msg, args...))

	os.Exit(-1)
}

// ReportFatal reports a fatal error.  These are errors that should cause all
// compilation to stop immediately.  They are expected errors that generally
// result from invalid configuration of some form: a missing manifest, a bad
// command-line flag, etc.
func ReportFatal(msg string, args ...interface{}) {
	if rep.logLevel > LogLevelSilent {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayFatal(fmt.Sprintf(msg, args...))
	}

	os.Exit(1)
}

package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// PrintInfoMessage prints an informational message to the user.
func PrintInfoMessage(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}

// PrintErrorMessage prints a tagged error to the user outside the reporting
// pipeline.  This is for errors raised before the reporter is initialized,
// such as command-line usage errors.
func PrintErrorMessage(tag string, err error) {
	ErrorStyleBG.Print(tag)
	ErrorColorFG.Println(" " + err.Error())
}

// errKindLabels maps compile error kinds to their display labels.
var errKindLabels = map[int]string{
	ErrDefinition:           "Definition",
	ErrCircularDefinition:   "Definition",
	ErrUndefinedSymbol:      "Name",
	ErrTypeMismatch:         "Type",
	ErrImmutableTarget:      "Mutability",
	ErrUnsupportedConstruct: "Unsupported",
}

// displayCompileError displays a compile error with its kind label and source
// span.  The reprPath is the representative path of the erroneous unit: a
// module name or file path depending on what the caller knows.
func displayCompileError(reprPath string, ce *CompileError) {
	ErrorStyleBG.Print(errKindLabels[ce.Kind] + " Error")

	if ce.Span == nil {
		fmt.Printf(" %s: %s\n", reprPath, ce.Message)
	} else {
		fmt.Printf(" %s:%s: %s\n", reprPath, ce.Span, ce.Message)
	}
}

// displayWarning displays a compile warning.
func displayWarning(reprPath string, span *TextSpan, msg string) {
	WarnStyleBG.Print("Warning")

	if span == nil {
		fmt.Printf(" %s: %s\n", reprPath, msg)
	} else {
		fmt.Printf(" %s:%s: %s\n", reprPath, span, msg)
	}
}

// displayStdError displays a standard Go error.
func displayStdError(reprPath string, err error) {
	ErrorStyleBG.Print("Error")
	fmt.Printf(" %s: %s\n", reprPath, err)
}

// displayICE displays an internal compiler error message.
func displayICE(msg string) {
	ErrorStyleBG.Print("Internal Error")
	fmt.Printf(" %s\n", msg)
	fmt.Println("This error was not supposed to happen: please open an issue on the Sable repository")
}

// displayFatal displays a fatal error message.
func displayFatal(msg string) {
	ErrorStyleBG.Print("Fatal Error")
	fmt.Printf(" %s\n", msg)
}

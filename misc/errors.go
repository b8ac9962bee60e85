package misc

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
)

// Severity is the level an error is reported at by CheckError, from most to least severe.
type Severity int

const (
	Fatal Severity = iota
	Error
	Warning
	Info
	Debug
)

var severityNames = [...]string{
	Fatal:   "Fatal",
	Error:   "Error",
	Warning: "Warning",
	Info:    "Info",
	Debug:   "Debug",
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// Nothing is the request or reply of an rpc call that carries no data.
type Nothing struct{}

// CheckError reports err through logger at the given severity and tells the caller whether there was an error.
// Fatal, and any severity it does not know, does not return.
func CheckError(err error, logger bslogger.Logger, severity Severity) bool {
	if err == nil {
		return false
	}
	severity.report(logger, err.Error())
	return true
}

func (s Severity) report(logger bslogger.Logger, message string) {
	switch s {
	case Error:
		logger.Error(message)
	case Warning:
		logger.Warning(message)
	case Info:
		logger.Info(message)
	case Debug:
		logger.Debug(message)
	default:
		logger.Fatal(message)
	}
}

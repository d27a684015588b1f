package lencode

import (
	"fmt"
	"log"
	"os"
)

// Logger receives verbose diagnostics. *log.Logger satisfies it.
type Logger interface {
	Output(calldepth int, s string) error
}

func defaultLogger() Logger {
	return log.New(os.Stderr, "lencode: ", 0)
}

// logf does nothing, not even formatting, when l is nil.
func logf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

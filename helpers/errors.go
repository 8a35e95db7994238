package helpers

import (
	"fmt"
	"io"

	"github.com/kr/text"
)

// PrintError writes err to w as "error: <message>". With debug set the
// wrapped stack trace is printed below it.
func PrintError(w io.Writer, err error, debug bool) {
	if debug {
		stackTrace := fmt.Sprintf("%+v", err)
		_, _ = fmt.Fprintf(w, "%s %s\n%s\n", Failure("error:"), err, text.Indent(stackTrace, "\t"))
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", Failure("error:"), err)
}

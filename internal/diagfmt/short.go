package diagfmt

import (
	"fmt"
	"io"

	"wrought/internal/diag"
	"wrought/internal/source"
)

// Short печатает по одной строке на диагностику, без исходника:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode) {
	for _, d := range bag.Items() {
		fmt.Fprintln(w, ShortLine(d, fs, mode))
	}
}

// ShortLine formats d as a single line.
func ShortLine(d diag.Diagnostic, fs *source.FileSet, mode PathMode) string {
	start, _ := fs.Resolve(d.Primary)
	return fmt.Sprintf("%s:%d:%d: %s %s: %s",
		formatPath(fs, d.Primary.File, mode),
		start.Line, start.Col,
		d.Severity, d.Code.ID(), d.Message,
	)
}

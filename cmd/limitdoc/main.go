// Command limitdoc renders limit catalogs and command transcripts as
// documentation text. Input is read from stdin and output written to stdout.
package main

import "os"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}

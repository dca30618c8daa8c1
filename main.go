// dirscan walks a directory tree and reports per-file statistics:
// oversized files, duplicate filenames, and an extension histogram.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dirscan/internal/cli"
)

// version is set at build time.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

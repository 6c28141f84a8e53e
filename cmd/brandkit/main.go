// brandkit is the brand registry tool for the venture portfolio.
// Single binary, zero config — the tables are compiled in.
package main

import (
	"os"

	"github.com/holdco/brandkit/cmd/brandkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

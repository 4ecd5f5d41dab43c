// The main package for the newsscan executable.
package main

import (
	"github.com/EXinshate/news-scraper/cmd"
)

// main is the entry point of the application.
// It defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}

// Command getkit is the command line front end for the getkit utilities.
package main

import (
	"os"

	"github.com/roach88/getkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}

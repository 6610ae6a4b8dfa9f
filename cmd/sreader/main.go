// Command sreader reads a file (or standard input) and prints the
// canonical text of each top-level datum it contains, one per line. Each
// diagnostic is logged to standard error and reading goes on with the
// next top-level datum; the exit status is 1 if any diagnostic was
// reported. It exists to exercise
// the reader end-to-end; the flag-driven single-binary CLI and the
// os.Exit(doMain(...)) split follow cmd/wazero/wazero.go's shape.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dlthomas/sreader/datum"
	"github.com/dlthomas/sreader/reader"
	"github.com/dlthomas/sreader/source"
)

func main() {
	os.Exit(doMain(os.Args[1:], os.Stdout, os.Stderr))
}

func doMain(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sreader", flag.ContinueOnError)
	fs.SetOutput(stderr)
	comments := fs.Bool("comments", false, "preserve comments as Comment datums instead of eliding them")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.New(stderr, "sreader: ", 0)

	var buf []byte
	var id string
	switch fs.NArg() {
	case 0:
		id = "<stdin>"
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			logger.Printf("reading stdin: %v", err)
			return 1
		}
		buf = data
	case 1:
		id = fs.Arg(0)
		data, err := os.ReadFile(id)
		if err != nil {
			logger.Printf("reading %s: %v", id, err)
			return 1
		}
		buf = data
	default:
		fmt.Fprintln(stderr, "usage: sreader [-comments] [file]")
		return 2
	}

	src := source.New(id, buf)
	rd := reader.New(src, *comments)

	exit := 0
	for {
		d, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Printf("%s: %v", id, err)
			exit = 1
			continue
		}
		printDatum(stdout, d)
	}
	return exit
}

func printDatum(w io.Writer, d datum.Datum) {
	fmt.Fprintln(w, d.String())
}

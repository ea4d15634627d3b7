package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the filingkit command.
type cliFlags struct {
	output  string
	config  string
	list    bool
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses command-line flags and returns positional args.
// args must include the program name at index 0.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("filingkit", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file path")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.list, "list", "l", false, "list available documents")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

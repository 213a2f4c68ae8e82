package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the converter.
type cliFlags struct {
	input   string
	output  string
	css     string
	config  string
	policy  string
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses command-line arguments into cliFlags.
// args is the full argument vector, including the program name.
func parseFlags(args []string, errOut io.Writer) (*cliFlags, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("xhtml2html", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.StringVar(&flags.input, "input", "", "path to the input XHTML file")
	fs.StringVar(&flags.output, "output", "", "output HTML filename (must end in .html)")
	fs.StringVar(&flags.css, "css", "", "extra CSS file appended to the aggregated style block")
	fs.StringVar(&flags.config, "config", "", "path to a YAML config file")
	fs.StringVar(&flags.policy, "policy", "", "namespace policy: preserve-financial or strip-all")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose progress output")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return flags, nil
}

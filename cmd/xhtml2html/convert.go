package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	xhtml2html "github.com/alnah/go-xhtml2html"
	"github.com/alnah/go-xhtml2html/internal/config"
	"github.com/alnah/go-xhtml2html/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingInput      = errors.New("no input file specified (use --input)")
	ErrMissingOutput     = errors.New("no output file specified (use --output)")
	ErrInvalidOutputName = errors.New("output name must end with .html")
	ErrInputNotFound     = errors.New("input file not found")
	ErrReadInput         = errors.New("failed to read input file")
	ErrReadCSS           = errors.New("failed to read CSS file")
	ErrWriteOutput       = errors.New("failed to write output file")
)

// filePermissions for written HTML output: rw-r--r--.
const filePermissions = 0o644

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input xhtml2html.Input) (string, error)
}

// Compile-time interface implementation check.
var _ Converter = (*xhtml2html.Service)(nil)

// run validates arguments, reads the input, converts it and writes the
// output. All validation happens before any conversion work: the output
// name check and the input existence check never touch the output path.
func run(ctx context.Context, flags *cliFlags, env *Environment) error {
	if flags.input == "" {
		return ErrMissingInput
	}
	if flags.output == "" {
		return ErrMissingOutput
	}

	// Load configuration; CLI flags win over config values.
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	outputPath := resolveOutputPath(flags.output, cfg)
	if !strings.HasSuffix(strings.ToLower(outputPath), ".html") {
		return fmt.Errorf("%w: %q", ErrInvalidOutputName, outputPath)
	}

	if !fileutil.FileExists(flags.input) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, flags.input)
	}

	content, err := fileutil.ReadFileUTF8(flags.input)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	// Validation pass: the input must produce a usable tree before any
	// output is attempted.
	if _, err := xhtml2html.Parse(content); err != nil {
		return fmt.Errorf("validating %s: %w", flags.input, err)
	}

	policy, err := resolvePolicy(flags.policy, cfg)
	if err != nil {
		return err
	}

	extraCSS, err := resolveExtraCSS(flags.css, cfg)
	if err != nil {
		return err
	}

	opts := []xhtml2html.Option{xhtml2html.WithNamespacePolicy(policy)}
	tableCSS, err := resolveTableCSS(cfg)
	if err != nil {
		return err
	}
	if tableCSS != "" {
		opts = append(opts, xhtml2html.WithTableCSS(tableCSS))
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Converting %s to HTML (policy: %s)...\n", flags.input, policy)
	}

	svc := xhtml2html.New(opts...)
	htmlContent, err := svc.Convert(ctx, xhtml2html.Input{
		Document: content,
		CSS:      extraCSS,
	})
	if err != nil {
		return fmt.Errorf("converting %s: %w", flags.input, err)
	}

	if err := os.WriteFile(outputPath, []byte(htmlContent), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}
	return nil
}

// resolveOutputPath joins the configured default directory with relative
// output paths; absolute paths are used as given.
func resolveOutputPath(output string, cfg *config.Config) string {
	if cfg.Output.DefaultDir == "" || filepath.IsAbs(output) {
		return output
	}
	return filepath.Join(cfg.Output.DefaultDir, output)
}

// resolvePolicy picks the namespace policy: flag first, then config, then
// the library default.
func resolvePolicy(flagValue string, cfg *config.Config) (xhtml2html.NamespacePolicy, error) {
	name := flagValue
	if name == "" {
		name = cfg.Namespaces.Policy
	}
	if name == "" {
		return xhtml2html.PolicyPreserveFinancial, nil
	}
	return xhtml2html.ParsePolicy(name)
}

// resolveExtraCSS reads the extra stylesheet named by flag or config.
// Returns ("", nil) when neither is set.
func resolveExtraCSS(flagValue string, cfg *config.Config) (string, error) {
	path := flagValue
	if path == "" {
		path = cfg.CSS.Path
	}
	if path == "" {
		return "", nil
	}
	css, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI user
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(css), nil
}

// resolveTableCSS reads the table CSS override from config, if any.
func resolveTableCSS(cfg *config.Config) (string, error) {
	if cfg.Table.CSSPath == "" {
		return "", nil
	}
	css, err := os.ReadFile(cfg.Table.CSSPath) // #nosec G304 -- path comes from config
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(css), nil
}

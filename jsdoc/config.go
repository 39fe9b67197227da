package jsdoc

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Format is an output encoding for extracted comments.
type Format string

// Output formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// GetAllFormatStrings returns the names of all output formats.
func GetAllFormatStrings() []string {
	return []string{string(FormatJSON), string(FormatYAML)}
}

// ParseFormat parses an output format name, case-insensitively.
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if slices.Contains([]Format{FormatJSON, FormatYAML}, f) {
		return f, nil
	}

	return "", fmt.Errorf("%w: unknown format %q", ErrInvalidOption, format)
}

// Flags holds CLI flag names for extraction configuration, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	Raw       string
	MultiLine string
	Depth     string
	Output    string
	Format    string
	Indent    string
	Watch     string
}

// Config holds CLI flag values for extraction configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewParser] to create a [Parser].
type Config struct {
	Flags  Flags
	Output string
	Format string
	Depth  int
	// Indent is the number of spaces for JSON output. Negative means
	// "choose based on the output".
	Indent    int
	Raw       bool
	MultiLine bool
	Watch     bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Raw:       "raw",
		MultiLine: "multi-line",
		Depth:     "depth",
		Output:    "output",
		Format:    "format",
		Indent:    "indent",
		Watch:     "watch",
	}

	return &Config{Flags: f, Indent: -1, Format: string(FormatJSON)}
}

// RegisterFlags adds extraction flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&c.Raw, c.Flags.Raw, false,
		"keep descriptions as plain text instead of rendering Markdown to HTML")
	flags.BoolVar(&c.MultiLine, c.Flags.MultiLine, false,
		"let tag descriptions continue until the next tag")
	flags.IntVar(&c.Depth, c.Flags.Depth, 0,
		"levels of @detail includes to parse recursively")
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
	flags.StringVarP(&c.Format, c.Flags.Format, "f", string(FormatJSON),
		fmt.Sprintf("output format, one of: %s", GetAllFormatStrings()))
	flags.IntVar(&c.Indent, c.Flags.Indent, -1,
		"JSON indentation spaces (default 2 on a terminal, 0 otherwise)")
	flags.BoolVarP(&c.Watch, c.Flags.Watch, "w", false,
		"extract again whenever an input file is written")
}

// RegisterCompletions registers shell completions for extraction flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(GetAllFormatStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.Depth, c.Flags.Indent} {
		regErr := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if regErr != nil {
			return fmt.Errorf("registering %s completion: %w", flag, regErr)
		}
	}

	return nil
}

// NewParser creates a [Parser] from the flag values, followed by opts.
func (c *Config) NewParser(opts ...Option) (*Parser, error) {
	if c.Depth < 0 {
		return nil, fmt.Errorf("%w: %s must not be negative", ErrInvalidOption, c.Flags.Depth)
	}

	base := []Option{
		WithRaw(c.Raw),
		WithMultiLine(c.MultiLine),
		WithDepth(c.Depth),
	}

	return NewParser(append(base, opts...)...), nil
}

// OutputFormat returns the parsed value of the format flag.
func (c *Config) OutputFormat() (Format, error) {
	return ParseFormat(c.Format)
}

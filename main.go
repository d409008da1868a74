package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bytestream/emogrifier/parser"
)

var createOutput = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

type options struct {
	input  string
	output string
	debug  bool
	trace  bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "emogrifier-normalize",
		Short: "Add missing html, head and body elements to an HTML document",
		Long: `Reads HTML from --input (or stdin) and writes it back with exactly one
<html>, <head> and <body> element and at most one doctype. All other markup
is copied through unchanged.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, stdin, stdout, stderr)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "file to read (default stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "file to write (default stdout)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log tree construction")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "log every tokenizer step")
	return cmd
}

func run(opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := logrus.New()
	logger.SetOutput(stderr)
	switch {
	case opts.trace:
		logger.SetLevel(logrus.TraceLevel)
	case opts.debug:
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.WarnLevel)
	}

	in := stdin
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return errors.Wrapf(err, "opening %s", opts.input)
		}
		defer f.Close()
		in = f
	}

	config := parser.Config{Logger: logger}
	if opts.output == "" {
		return parser.NormalizeReader(in, stdout, config)
	}

	f, err := createOutput(opts.output)
	if err != nil {
		return errors.Wrapf(err, "creating %s", opts.output)
	}
	if err := parser.NormalizeReader(in, f, config); err != nil {
		f.Close()
		return err
	}
	// a failed close can leave the file truncated.
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", opts.output)
	}

	return nil
}

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		logrus.WithError(err).Error("normalize failed")
		os.Exit(1)
	}
}

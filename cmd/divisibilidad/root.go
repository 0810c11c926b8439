package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/npillmayer/blocks/helptext"
	"github.com/npillmayer/blocks/numtheory"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

const msgNotIntegers = "Error: los argumentos deben ser números enteros."

// errUsage signals a usage error which has already been reported to the user.
var errUsage = errors.New("usage error")

type options struct {
	direct  bool
	minimal bool
	format  string
	trace   string
	help    bool
	// helpConfig is used for printing help documents. If nil, it is derived
	// from the terminal.
	helpConfig *helptext.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "divisibilidad [-d|--directo] <divisor> <base> <coeficientes>",
		Short: "Calcula reglas de divisibilidad",
		Long: `Calcula las reglas de divisibilidad de un divisor en una base de numeración.
Use --ayuda para obtener la descripción completa.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	cmd.Flags().BoolVarP(&opts.direct, "directo", "d", false, "calcula las reglas")
	cmd.Flags().BoolVar(&opts.minimal, "minima", false, "muestra solo la regla mínima")
	cmd.Flags().StringVar(&opts.format, "formato", "texto", "formato de salida: texto|html")
	cmd.Flags().StringVar(&opts.trace, "traza", "error", "nivel de traza: error|info|debug")
	cmd.Flags().BoolVar(&opts.help, "ayuda", false, "muestra la ayuda")
	// -h and --help belong to cobra and end up in the help func
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		_ = printHelp(c.OutOrStdout(), helptext.Long, opts.helpConfig)
	})
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		color.New(color.FgRed).Fprintln(c.ErrOrStderr(), "Error:", err)
		_ = printHelp(c.ErrOrStderr(), helptext.Short, opts.helpConfig)
		return errUsage
	})
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	level, ok := traceLevels[opts.trace]
	if !ok {
		color.New(color.FgRed).Fprintf(stderr, "Error: nivel de traza desconocido: %q\n", opts.trace)
		return errUsage
	}
	gtrace.CoreTracer.SetTraceLevel(level)
	tracer().SetTraceLevel(level)
	report, ok := reports[opts.format]
	if !ok {
		color.New(color.FgRed).Fprintf(stderr, "Error: formato desconocido: %q\n", opts.format)
		return errUsage
	}
	if opts.help {
		return printHelp(stdout, helptext.Long, opts.helpConfig)
	}
	if len(args) == 0 {
		return printHelp(stdout, helptext.Short, opts.helpConfig)
	}
	if len(args) != 3 {
		tracer().Infof("expected 3 arguments, have %d", len(args))
		return printHelp(stdout, helptext.Short, opts.helpConfig)
	}
	var nums [3]int64
	for i, arg := range args {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			tracer().Infof("argument %q: %v", arg, err)
			color.New(color.FgRed).Fprintln(stderr, msgNotIntegers)
			_ = printHelp(stderr, helptext.Short, opts.helpConfig)
			return errUsage
		}
		nums[i] = n
	}
	divisor, base, count := nums[0], nums[1], nums[2]
	if !opts.direct || divisor <= 1 || base <= 1 || count <= 0 || count > maxCoefficients {
		tracer().Infof("not computing rules for %d|%d with %d coefficients", divisor, base, count)
		return printHelp(stdout, helptext.Long, opts.helpConfig)
	}
	rules, err := numtheory.DivisibilityRules(divisor, base, int(count))
	if errors.Is(err, numtheory.ErrArgument) {
		tracer().Infof("%v", err)
		return printHelp(stdout, helptext.Long, opts.helpConfig)
	} else if err != nil {
		color.New(color.FgRed).Fprintln(stderr, "Error:", err)
		return err
	}
	if opts.minimal {
		min, _ := numtheory.MinimalRule(rules)
		return report(stdout, divisor, base, []numtheory.Rule{min})
	}
	return report(stdout, divisor, base, rules.Items())
}

// maxCoefficients bounds the length of the rules; every coefficient
// contributes a digit of a 64-bit number.
const maxCoefficients = 64

var traceLevels = map[string]tracing.TraceLevel{
	"error": tracing.LevelError,
	"info":  tracing.LevelInfo,
	"debug": tracing.LevelDebug,
}

func printHelp(w io.Writer, load func() (helptext.Document, error), cfg *helptext.Config) error {
	doc, err := load()
	if err != nil {
		return fmt.Errorf("help text: %w", err)
	}
	return helptext.Print(w, doc, cfg)
}

// tracer writes to trace with key 'blocks'
func tracer() tracing.Trace {
	return tracing.Select("blocks")
}

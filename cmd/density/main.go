// Package main provides the density CLI: evaluate a kernel at given points.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/density/kernel"
)

const version = "v0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stdout)
		return 0
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "density %s\n", version)
		return 0
	case "eval":
		if err := eval(args[1:], stdout, stderr); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return 0
			}
			fmt.Fprintf(stderr, "density eval: %v\n", err)
			return 1
		}
		return 0
	default:
		fmt.Fprintf(stderr, "density: unknown command %q\n\n", args[0])
		usage(stderr)
		return 1
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "density - evaluate statistical density kernels")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  eval       Evaluate a kernel: density eval -kernel NAME [-mean M -sigma S -normalize] [--] X...")
	fmt.Fprintln(w, "")
	fmt.Fprint(w, "Kernels:")
	for _, k := range kernel.Kinds() {
		fmt.Fprintf(w, " %s", k)
	}
	fmt.Fprintln(w)
}

func eval(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("kernel", "gaussian", "Kernel to evaluate")
	mean := fs.Float64("mean", 0, "Gaussian mean")
	sigma := fs.Float64("sigma", 1, "Gaussian standard deviation")
	normalize := fs.Bool("normalize", false, "Divide the Gaussian by sigma*sqrt(2*pi)")
	flags, points := splitPoints(fs, args)
	if err := fs.Parse(flags); err != nil {
		return err
	}
	rest := fs.Args()
	points = append(rest[:len(rest):len(rest)], points...)

	kind, err := kernel.ParseKind(*name)
	if err != nil {
		return err
	}
	f := kind.Func()
	if kind == kernel.KindGaussian {
		f = kernel.GaussFunc(*mean, *sigma, *normalize)
	}

	if len(points) == 0 {
		return errors.New("no points given")
	}
	xs := make([]float64, len(points))
	for i, arg := range points {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
		xs[i] = x
	}

	for i, y := range kernel.ApplySlice(xs, f) {
		fmt.Fprintf(stdout, "%s\t%s\n", points[i], strconv.FormatFloat(y, 'g', -1, 64))
	}
	return nil
}

// splitPoints cuts args where the points begin: at "--", at the first
// non-flag argument, or at the first number such as "-0.5" that is not
// the value of a preceding flag.
func splitPoints(fs *flag.FlagSet, args []string) (flags, points []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args[:i], args[i+1:]
		}
		if _, err := strconv.ParseFloat(arg, 64); err == nil || !strings.HasPrefix(arg, "-") {
			return args[:i], args[i:]
		}
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := fs.Lookup(name); f != nil && !isBoolFlag(f) {
			i++
		}
	}
	return args, nil
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

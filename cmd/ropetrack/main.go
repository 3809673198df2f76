package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"ropetrack/internal/display"
	"ropetrack/internal/motion"
	"ropetrack/internal/rope"
)

// lengths is a comma separated list of chain lengths.
type lengths []int

func (l *lengths) String() string {
	parts := make([]string, len(*l))
	for i, n := range *l {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (l *lengths) Set(s string) error {
	var out lengths
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 1 {
			return fmt.Errorf("invalid chain length %q", f)
		}
		out = append(out, n)
	}
	*l = out
	return nil
}

// Summary is the result line printed for a chain of n segments.
func Summary(n, visited int) string {
	if n == 2 {
		return fmt.Sprintf("tail visited %d unique positions", visited)
	}
	return fmt.Sprintf("tail of %d-segmented rope visited %d unique positions", n, visited)
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()
	err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, &log)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("ropetrack")
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, log *zerolog.Logger) error {
	fs := flag.NewFlagSet("ropetrack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	ls := lengths{2, 10}
	fs.Var(&ls, "lengths", "comma separated chain lengths to simulate")
	trace := fs.Bool("trace", false, "draw the rope after every unit step")
	delay := fs.Duration("delay", 200*time.Millisecond, "pause between trace frames")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: ropetrack [flags] [motion file]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	l := log.Level(level)

	name, in := "stdin", stdin
	if fs.NArg() > 0 {
		name = fs.Arg(0)
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	commands, err := motion.Parse(name, in)
	if err != nil {
		return err
	}
	l.Debug().Str("input", name).Int("commands", len(commands)).Msg("parsed motions")

	results := make([]int, len(ls))
	g, ctx := errgroup.WithContext(ctx)
	if *trace {
		// frames from concurrent runs would interleave
		g.SetLimit(1)
	}
	for i, n := range ls {
		i, n := i, n
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			sim, err := rope.NewSimulator(n)
			if err != nil {
				return err
			}
			if *trace {
				sim.Observe(display.NewTracer(stderr, sim, *delay).Observe)
			}
			for _, cmd := range commands {
				if err := sim.Apply(cmd); err != nil {
					return err
				}
			}
			sim.Finish()
			if results[i], err = sim.Visited(); err != nil {
				return err
			}
			l.Debug().Int("segments", n).Int("steps", sim.Steps()).
				Dur("elapsed", time.Since(start)).Msg("simulation done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, n := range ls {
		fmt.Fprintln(stdout, Summary(n, results[i]))
	}
	return nil
}

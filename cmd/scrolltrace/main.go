package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ytget/profile-header/internal/animation"
	"github.com/ytget/profile-header/internal/coordinator"
	"github.com/ytget/profile-header/internal/model"
)

// options for one scripted scroll
type options struct {
	avatar   float64
	username float64
	buttons  float64
	divisor  float64
	viewport float64
	content  float64
	to       float64
	step     float64
	surface  string
	noSnap   bool
	follow   bool
	frames   bool
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute returns the process exit code. The trace goes to stdout, failures to stderr.
func execute(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}

	if err := run(opts, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("scrolltrace", flag.ContinueOnError)
	fs.Float64Var(&opts.avatar, "avatar", 80, "Avatar height including margins")
	fs.Float64Var(&opts.username, "username", 60, "Username block height")
	fs.Float64Var(&opts.buttons, "buttons", 40, "Action buttons row height")
	fs.Float64Var(&opts.divisor, "divisor", model.DefaultScaleDivisor, "Username scale divisor")
	fs.Float64Var(&opts.viewport, "viewport", 600, "Surface viewport height")
	fs.Float64Var(&opts.content, "content", 3000, "Surface content height")
	fs.Float64Var(&opts.to, "to", 150, "Offset the scroll comes to rest at")
	fs.Float64Var(&opts.step, "step", 10, "Offset change per scroll event")
	fs.StringVar(&opts.surface, "surface", string(model.SurfaceList), "Surface to scroll (info, list, grid)")
	fs.BoolVar(&opts.noSnap, "no-snap", false, "Disable snapping the header to a rest state")
	fs.BoolVar(&opts.follow, "follow", true, "Apply snap commands as the host would")
	fs.BoolVar(&opts.frames, "frames", false, "Print every target of each frame")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: scrolltrace [options]")
		fmt.Fprintln(fs.Output(), "\nReplays a scroll through the header coordinator and prints its outputs.")
		fs.PrintDefaults()
	}

	err := fs.Parse(args)
	return opts, err
}

// run scrolls from 0 to opts.to, settles, and follows any snap command
func run(opts options, out io.Writer) error {
	if opts.step <= 0 {
		return fmt.Errorf("step must be positive, got %v", opts.step)
	}

	sink := &printSink{out: out, frames: opts.frames}
	svc := coordinator.NewService(
		animation.NewEngine(animation.DefaultButtonCount),
		sink,
		coordinator.WithScheduler(coordinator.ImmediateScheduler{}),
		coordinator.WithSnap(!opts.noSnap),
	)

	for _, id := range model.DefaultSurfaces() {
		svc.RegisterSurface(id)
		if err := svc.UpdateSurfaceMetrics(id, opts.viewport, opts.content); err != nil {
			return err
		}
	}

	g := model.NewGeometry(opts.avatar, opts.username, opts.buttons)
	g.ScaleDivisor = opts.divisor
	if err := svc.OnGeometryChanged(g); err != nil {
		return err
	}
	fmt.Fprintf(out, "collapse distance %.2f\n", g.CollapseDistance())

	surface := model.SurfaceID(opts.surface)
	if err := svc.SetActiveSurface(surface); err != nil {
		return err
	}

	offset := 0.0
	for offset != opts.to {
		next := stepToward(offset, opts.to, opts.step)
		fmt.Fprintf(out, "scroll %.2f -> %.2f\n", offset, next)
		if err := svc.OnOffsetChanging(coordinator.ScrollNotification{
			Surface:       surface,
			CurrentOffset: offset,
			NextOffset:    next,
			FinalOffset:   opts.to,
		}); err != nil {
			return err
		}
		offset = next
	}

	fmt.Fprintf(out, "settle %.2f\n", offset)
	if err := svc.OnOffsetChanging(coordinator.ScrollNotification{
		Surface:       surface,
		CurrentOffset: offset,
		NextOffset:    offset,
		FinalOffset:   offset,
		IsInertial:    true,
	}); err != nil {
		return err
	}

	if opts.follow {
		for _, cmd := range sink.takeCommands() {
			fmt.Fprintf(out, "follow %s -> %.2f\n", cmd.Reason, cmd.Offset)
			if err := svc.OnOffsetChanging(coordinator.ScrollNotification{
				Surface:       cmd.Surface,
				CurrentOffset: cmd.Offset,
				NextOffset:    cmd.Offset,
				FinalOffset:   cmd.Offset,
			}); err != nil {
				return err
			}
		}
	}

	fmt.Fprintf(out, "header %s\n", svc.HeaderState())
	fmt.Fprintln(out, svc.DebugInfo())
	return nil
}

func stepToward(from, to, step float64) float64 {
	if from < to {
		if from+step > to {
			return to
		}
		return from + step
	}
	if from-step < to {
		return to
	}
	return from - step
}

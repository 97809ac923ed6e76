package main

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/pinchzoom"
)

var outputJSON = jsoniter.ConfigCompatibleWithStandardLibrary

type runOptions struct {
	width, height               float64
	contentWidth, contentHeight float64
	horizontal, vertical        bool
	dt                          float64
	maxFrames                   int
	output                      string
}

func newRunCmd(a *app) *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run <script.json>",
		Short: "Run a gesture script and print the recorded marks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != "text" && opts.output != "json" {
				return fmt.Errorf("unknown output format %q", opts.output)
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			return a.replay(cmd.OutOrStdout(), data, opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.width, "width", 640, "viewport width in pixels")
	f.Float64Var(&opts.height, "height", 480, "viewport height in pixels")
	f.Float64Var(&opts.contentWidth, "content-width", 640, "content width in pixels")
	f.Float64Var(&opts.contentHeight, "content-height", 480, "content height in pixels")
	f.BoolVar(&opts.horizontal, "horizontal", true, "allow horizontal scrolling")
	f.BoolVar(&opts.vertical, "vertical", true, "allow vertical scrolling")
	f.Float64Var(&opts.dt, "dt", 1.0/60, "frame duration in seconds")
	f.IntVar(&opts.maxFrames, "max-frames", 10000, "stop after this many frames")
	f.StringVarP(&opts.output, "output", "o", "text", "output format (text, json)")
	return cmd
}

// replay lays out a viewport with centered content, runs the script and
// writes the trace to w.
func (a *app) replay(w io.Writer, script []byte, opts runOptions) error {
	cfg, err := pinchzoom.LoadConfig(a.v)
	if err != nil {
		return err
	}
	runner, err := pinchzoom.LoadScript(script)
	if err != nil {
		return err
	}

	viewport := pinchzoom.NewRectTransform(opts.width, opts.height)
	viewport.Pivot = pinchzoom.Vec2{}
	content := pinchzoom.NewRectTransform(opts.contentWidth, opts.contentHeight)
	scroll := pinchzoom.NewScrollRect(viewport, content)
	scroll.SetAxes(opts.horizontal, opts.vertical)
	scroll.DeltaTime = opts.dt

	view := pinchzoom.NewPinchView(scroll, cfg, pinchzoom.WithLogger(a.log))
	view.Start()

	frames := runner.Run(view, float32(opts.dt), opts.maxFrames)
	if !runner.Done() {
		a.log.Warn("script did not finish", zap.Int("max_frames", opts.maxFrames))
	}
	a.log.Info("replay finished",
		zap.Int("frames", frames),
		zap.Int("marks", len(runner.Trace())),
		zap.Float64("scale", content.Scale.X),
	)
	return writeTrace(w, runner.Trace(), opts.output)
}

func writeTrace(w io.Writer, trace []pinchzoom.TraceEntry, format string) error {
	if format == "json" {
		enc := outputJSON.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(trace)
	}
	for _, e := range trace {
		_, err := fmt.Fprintf(w, "%-16s frame=%-5d scale=%.4f pivot=(%.4f, %.4f) pos=(%.2f, %.2f)\n",
			e.Label, e.Frame, e.Scale.X, e.Pivot.X, e.Pivot.Y, e.AnchoredPosition.X, e.AnchoredPosition.Y)
		if err != nil {
			return err
		}
	}
	return nil
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective zoom configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := pinchzoom.LoadConfig(a.v)
			if err != nil {
				return err
			}
			for _, w := range cfg.Warnings() {
				a.log.Warn("zoom config", zap.String("problem", w))
			}
			enc := outputJSON.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(cfg)
		},
	}
}

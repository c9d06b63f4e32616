package main

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvedt/edt"
	"github.com/katalvlaran/lvedt/morph"
	"github.com/katalvlaran/lvedt/raster"
)

// config holds the flags shared by every subcommand.
type config struct {
	in      string
	out     string
	format  string
	level   uint8
	invert  bool
	workers int
	verbose bool
}

func (c *config) register(fs *pflag.FlagSet) {
	fs.StringVarP(&c.in, "in", "i", "", "input mask image (png, jpeg, gif, bmp, tiff, webp)")
	fs.StringVarP(&c.out, "out", "o", "", "output image path")
	fs.StringVar(&c.format, "format", "", "output format: png, bmp or tiff (default: from --out extension)")
	fs.Uint8Var(&c.level, "level", raster.DefaultThresholdOptions().Level, "luminance at or above which a pixel is a feature")
	fs.BoolVar(&c.invert, "invert", false, "treat pixels below --level as features")
	fs.IntVarP(&c.workers, "workers", "w", 0, "goroutines per phase (0 = GOMAXPROCS)")
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "log debug output to stderr")
}

func (c *config) options() []edt.Option {
	if c.workers > 0 {
		return []edt.Option{edt.WithWorkers(c.workers)}
	}
	return nil
}

// outputFormat resolves --format, falling back to the --out extension.
func (c *config) outputFormat() string {
	if c.format != "" {
		return c.format
	}
	if ext := strings.TrimPrefix(filepath.Ext(c.out), "."); ext != "" {
		return ext
	}
	return "png"
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lvedt",
		Short:        "Exact Euclidean distance transforms of image masks",
		SilenceUsage: true,
	}
	root.AddCommand(newTransformCmd(), newBandsCmd())

	return root
}

func newTransformCmd() *cobra.Command {
	var (
		cfg     config
		maxDist float64
	)
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Render the distance to the nearest feature pixel as grayscale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := load(&cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			f.Transform(cfg.options()...)
			return save(&cfg, raster.Render(f, maxDist))
		},
	}
	cfg.register(cmd.Flags())
	cmd.Flags().Float64Var(&maxDist, "max", 0, "distance mapped to white (0 = field maximum)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func newBandsCmd() *cobra.Command {
	var (
		cfg   config
		width float64
	)
	cmd := &cobra.Command{
		Use:   "bands",
		Short: "Quantize the distance field into rings of fixed width",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := load(&cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			f.Transform(cfg.options()...)
			rings, err := morph.Bands(f, width)
			if err != nil {
				return err
			}
			return save(&cfg, raster.RenderLabels(rings))
		},
	}
	cfg.register(cmd.Flags())
	cmd.Flags().Float64Var(&width, "width", 8, "ring width in pixels")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

// load configures logging, decodes --in and thresholds it into a field.
func load(cfg *config, stderr io.Writer) (*edt.Field, error) {
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	edt.SetLogger(log)

	in, err := os.Open(cfg.in)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	img, format, err := raster.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.in, err)
	}
	f := raster.Threshold(img, raster.ThresholdOptions{Level: cfg.level, Invert: cfg.invert})
	log.Debug("mask loaded", "path", cfg.in, "format", format, "rows", f.Rows, "cols", f.Cols)
	if !f.HasFeature() {
		log.Warn("mask has no feature pixels; distances are meaningless", "path", cfg.in)
	}

	return f, nil
}

// save encodes img to --out in the resolved output format.
func save(cfg *config, img image.Image) error {
	out, err := os.Create(cfg.out)
	if err != nil {
		return err
	}
	if err := raster.Encode(out, img, cfg.outputFormat()); err != nil {
		_ = out.Close()
		_ = os.Remove(cfg.out)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	edt.Logger().Info("distance field written", "path", cfg.out, "format", cfg.outputFormat())

	return nil
}

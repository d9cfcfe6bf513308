// Command glowbit runs the stock GlowBit demos on real hardware, or on the
// console when no SPI port is present.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/glowbit-dev/glowbit"
	"github.com/glowbit-dev/glowbit/demo"
	"github.com/glowbit-dev/glowbit/internal/config"
	"github.com/glowbit-dev/glowbit/transport"
)

var (
	configPath string
	output     string
	spiDev     string
	colorOrder string
	brightness float64
	fps        int
	leds       int
	tileRows   int
	tileCols   int
	verbose    bool
)

func main() {
	root := &cobra.Command{
		Use:   "glowbit",
		Short: "Drive GlowBit LED displays",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = time.RFC3339
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to config.yaml")
	pf.StringVar(&output, "output", "", "output: spi | console | auto")
	pf.StringVar(&spiDev, "spi-dev", "", "SPI port name, empty picks the first")
	pf.StringVar(&colorOrder, "color", "", "LED color order (e.g. GRB, RGB)")
	pf.Float64Var(&brightness, "brightness", 0, "global brightness 0..1")
	pf.IntVar(&fps, "fps", 0, "target frames per second")
	pf.IntVar(&leds, "leds", 0, "LED count for 1D devices")
	pf.IntVar(&tileRows, "tile-rows", 0, "8x8 matrix tile rows")
	pf.IntVar(&tileCols, "tile-cols", 0, "8x8 matrix tile columns")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(matrixCmd(), stickCmd(), rainbowCmd(), textCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the optional YAML file with flag overrides; flags win.
func loadConfig() *config.Config {
	cfg := config.Default()
	if configPath != "" {
		c, err := config.Load(configPath)
		if err != nil {
			log.Warn().Err(err).Str("path", configPath).Msg("config load failed; proceeding with flags")
		} else {
			cfg = c
		}
	}
	if output != "" {
		cfg.Output = output
	}
	if spiDev != "" {
		cfg.SPI.Dev = spiDev
	}
	if colorOrder != "" {
		cfg.ColorOrder = colorOrder
	}
	if brightness > 0 {
		cfg.Brightness = brightness
	}
	if fps > 0 {
		cfg.FPS = fps
	}
	if leds > 0 {
		cfg.LEDs = leds
	}
	if tileRows > 0 {
		cfg.Matrix.TileRows = tileRows
	}
	if tileCols > 0 {
		cfg.Matrix.TileCols = tileCols
	}
	return cfg
}

func openSink(cfg *config.Config) transport.Sink {
	order, ok := transport.OrderByName(cfg.ColorOrder)
	if !ok {
		log.Warn().Str("order", cfg.ColorOrder).Msg("unknown color order, using GRB")
		order, _ = transport.OrderByName("GRB")
	}
	switch cfg.Output {
	case "console":
		return transport.NewConsole(order)
	case "spi":
		if err := transport.InitHost(); err != nil {
			log.Fatal().Err(err).Msg("periph host init failed")
		}
		nrz, err := transport.OpenNRZ(cfg.SPI.Dev)
		if err != nil {
			log.Fatal().Err(err).Msg("SPI open failed")
		}
		return nrz
	default:
		return transport.Detect(cfg.SPI.Dev, order)
	}
}

// signalContext cancels on SIGINT or SIGTERM so demos stop between frames.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func matrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Run the 8x8 matrix demo reel",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			ctx, cancel := signalContext()
			defer cancel()

			m, err := glowbit.NewMatrix8x8(glowbit.Matrix8x8Opts{
				TileRows:     cfg.Matrix.TileRows,
				TileCols:     cfg.Matrix.TileCols,
				Transport:    openSink(cfg),
				Brightness:   cfg.Brightness,
				RateLimitFPS: cfg.FPS,
				ColorOrder:   cfg.ColorOrder,
			})
			if err != nil {
				return err
			}
			defer m.Close()
			return demo.Matrix(ctx, m)
		},
	}
}

func stickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stick",
		Short: "Run the stick demos: pulses, graphs, slices",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			ctx, cancel := signalContext()
			defer cancel()

			d, err := glowbit.NewStick(glowbit.StickOpts{
				LEDs:         cfg.LEDs,
				Transport:    openSink(cfg),
				Brightness:   cfg.Brightness,
				RateLimitFPS: cfg.FPS,
				ColorOrder:   cfg.ColorOrder,
			})
			if err != nil {
				return err
			}
			defer d.Close()

			if err := demo.Pulses(ctx, d, 480); err != nil {
				return err
			}
			if err := demo.Graph(ctx, d, 3); err != nil {
				return err
			}
			return demo.Slices(ctx, d)
		},
	}
}

func rainbowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rainbow",
		Short: "Rotate the rainbow arc until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			ctx, cancel := signalContext()
			defer cancel()

			r, err := glowbit.NewRainbow(glowbit.RainbowOpts{
				LEDs:         cfg.LEDs,
				Transport:    openSink(cfg),
				Brightness:   cfg.Brightness,
				RateLimitFPS: cfg.FPS,
				ColorOrder:   cfg.ColorOrder,
			})
			if err != nil {
				return err
			}
			defer r.Close()
			return demo.RainbowLoop(ctx, r)
		},
	}
}

func textCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text [message]",
		Short: "Scroll a message across the matrix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := "GlowBit"
			if len(args) == 1 {
				msg = args[0]
			}
			cfg := loadConfig()
			ctx, cancel := signalContext()
			defer cancel()

			m, err := glowbit.NewMatrix8x8(glowbit.Matrix8x8Opts{
				TileRows:     cfg.Matrix.TileRows,
				TileCols:     cfg.Matrix.TileCols,
				Transport:    openSink(cfg),
				Brightness:   cfg.Brightness,
				RateLimitFPS: cfg.FPS,
				ColorOrder:   cfg.ColorOrder,
			})
			if err != nil {
				return err
			}
			defer m.Close()
			return demo.Text(ctx, m, msg)
		},
	}
	return cmd
}

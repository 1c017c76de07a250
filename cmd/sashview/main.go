// SPDX-License-Identifier: Unlicense OR MIT

// Command sashview inspects and exercises window semantics without
// a display, using the headless driver.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/olsgo/sash/app"
	"github.com/olsgo/sash/unit"
)

func main() {
	root := &cobra.Command{
		Use:           "sashview",
		Short:         "Inspect and exercise sash window semantics without a display",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(screensCmd(), clipboardCmd(), geomCmd(), demoCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sashview:", err)
		os.Exit(1)
	}
}

func screensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "screens",
		Short: "List the screens the driver reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.New(app.NewHeadless())
			for i, s := range a.Screens() {
				role := "secondary"
				if i == 0 {
					role = "primary"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d %-9s bounds=%v usable=%v scale=%g px=%v\n",
					i, role, s.Bounds, s.Usable, s.Scale, s.PxBounds())
			}
			return nil
		},
	}
}

func clipboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clipboard [text]",
		Short: "Read the driver clipboard, writing it first when text is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.New(app.NewHeadless())
			if len(args) == 1 {
				a.WriteClipboard(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.ReadClipboard())
			return nil
		},
	}
}

// geomRecord mirrors the window geometry store entries.
type geomRecord struct {
	X      int     `yaml:"x"`
	Y      int     `yaml:"y"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float32 `yaml:"scale"`
}

func geomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "geom <file>",
		Short: "Dump a window geometry store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var recs map[string]geomRecord
			if err := yaml.Unmarshal(data, &recs); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			names := maps.Keys(recs)
			slices.Sort(names)
			for _, name := range names {
				r := recs[name]
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %5d,%-5d %5dx%-5d @%gx\n",
					name, r.X, r.Y, r.Width, r.Height, r.Scale)
			}
			return nil
		},
	}
}

func demoCmd() *cobra.Command {
	var (
		frames   int
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a headless window for a number of frames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.New(app.NewHeadless(), app.WithTickInterval(interval))
			w, err := app.NewWindow(a,
				app.Title("sashview demo"),
				app.Size(unit.Dp(640), unit.Dp(480)),
			)
			if err != nil {
				return err
			}
			painted := 0
			w.SetHandlers(app.Handlers{
				Draw: func(now float64) {
					painted++
					if painted >= frames {
						w.Close()
					}
				},
			})
			w.Show()
			drawable := w.Surface().DrawableSize()
			scale := w.Scale()
			start := time.Now()
			if err := a.Run(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "painted %d frames in %v, drawable %dx%d at scale %g\n",
				painted, time.Since(start).Round(time.Millisecond), drawable.X, drawable.Y, scale)
			return nil
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 60, "frames to paint before closing")
	cmd.Flags().DurationVar(&interval, "interval", 16*time.Millisecond, "display tick interval")
	return cmd
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsvensson/pgfplot"
	"github.com/jsvensson/pgfplot/internal/color"
	"github.com/jsvensson/pgfplot/internal/config"
	"github.com/jsvensson/pgfplot/internal/cycle"
	"github.com/jsvensson/pgfplot/internal/format"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	flagSettings string
	flagVerbose  int
	flagOut      string
	flagFormat   string
	flagCheck    bool
	version      = "dev" // Injected at build time via ldflags
)

var log = commonlog.GetLogger("pgfplot.cli")

var rootCmd = &cobra.Command{
	Use:     "pgfplot",
	Short:   "Render PGFPlots figures from HCL figure scripts",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		commonlog.Configure(flagVerbose, nil)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render <script>",
	Short: "Write every figure of a script as a LaTeX document or PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var drawCmd = &cobra.Command{
	Use:   "draw <script>",
	Short: "Compile every figure of a script and open it in the viewer",
	Args:  cobra.ExactArgs(1),
	RunE:  runDraw,
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [files...]",
	Short: "Format figure scripts",
	Long:  "Format one or more figure scripts in-place. Prints the name of each file that was modified.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List the predefined cycle lists and colormaps",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "cycle lists: %s\n", strings.Join(cycle.Names(), ", "))
		fmt.Fprintf(out, "colormaps:   %s\n", strings.Join(color.ColormapNames(), ", "))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "path to a settings HCL file")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "log to stderr (repeat for more detail)")
	renderCmd.Flags().StringVar(&flagOut, "out", ".", "output directory")
	renderCmd.Flags().StringVar(&flagFormat, "format", "tex", "output format: tex or pdf")
	fmtCmd.Flags().BoolVarP(&flagCheck, "check", "c", false, "check if files are formatted (do not write changes)")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(palettesCmd)
	rootCmd.AddCommand(versionCmd)
}

func loadSession(script string) (*pgfplot.Session, []*pgfplot.Figure, error) {
	settings := config.Default()
	if flagSettings != "" {
		var err error
		if settings, err = config.Load(flagSettings); err != nil {
			return nil, nil, err
		}
	}

	s := pgfplot.NewSession(settings)
	figs, err := s.Load(script)
	if err != nil {
		return nil, nil, err
	}
	if len(figs) == 0 {
		return nil, nil, fmt.Errorf("%s defines no figures", script)
	}
	log.Infof("loaded %d figures from %s", len(figs), script)
	return s, figs, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	s, figs, err := loadSession(args[0])
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	for _, f := range figs {
		name := base + "." + flagFormat
		if len(figs) > 1 {
			name = fmt.Sprintf("%s_%d.%s", base, f.Index(), flagFormat)
		}
		path := filepath.Join(flagOut, name)

		s.Figure(f.Index())
		if err := s.Savefig(path); err != nil {
			return fmt.Errorf("rendering figure %d: %w", f.Index(), err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func runDraw(cmd *cobra.Command, args []string) error {
	s, figs, err := loadSession(args[0])
	if err != nil {
		return err
	}
	for _, f := range figs {
		s.Figure(f.Index())
		if err := s.Draw(); err != nil {
			return fmt.Errorf("drawing figure %d: %w", f.Index(), err)
		}
	}
	return nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	hasErrors := false
	needsFormatting := false

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		content := string(data)
		formatted, err := format.Format(content)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error formatting %s: %v\n", path, err)
			hasErrors = true
			continue
		}

		if formatted == content {
			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		needsFormatting = true

		if !flagCheck {
			if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
				hasErrors = true
			}
		}
	}

	if hasErrors || (flagCheck && needsFormatting) {
		os.Exit(1)
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

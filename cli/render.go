package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"conduit/diagram"
	"conduit/export"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format string
	output string
}

// newRenderCmd creates the render command, which routes every connector in
// a TOML scene file and writes the result in the chosen format.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: string(export.FormatASCII)}

	cmd := &cobra.Command{
		Use:   "render [scene.toml]",
		Short: "Route a scene file and render it",
		Args:  cobra.ExactArgs(1),
		Example: `  conduit render scene.toml
  conduit render scene.toml --format svg -o diagram.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: ascii, svg or json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or directory (default stdout)")

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts *renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	exporter, err := export.NewExporter(format)
	if err != nil {
		return err
	}

	scene, err := diagram.LoadScene(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded scene", "nodes", len(scene.Nodes), "connectors", len(scene.Connectors))

	started := time.Now()
	routed, err := scene.RouteAll()
	if err != nil {
		return err
	}
	logger.Info("routed scene",
		"connectors", len(routed),
		"elapsed", time.Since(started).Round(time.Millisecond))

	out, err := exporter.Export(scene, routed)
	if err != nil {
		return err
	}

	target := resolveOutput(opts.output, path, exporter)
	if target == "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(target, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	logger.Info("wrote output", "file", target, "format", format)
	fmt.Fprintln(cmd.OutOrStdout(), styleDim.Render(fmt.Sprintf("wrote %s", target)))
	return nil
}

// resolveOutput decides where the rendered scene goes. Empty means stdout.
// An output naming a directory gets a file name derived from the scene file
// plus the exporter's extension, so "render scene.toml -f svg -o out/"
// writes out/scene.svg.
func resolveOutput(output, scenePath string, exporter export.Exporter) string {
	if output == "" {
		return ""
	}
	isDir := strings.HasSuffix(output, string(os.PathSeparator))
	if !isDir {
		if info, err := os.Stat(output); err == nil && info.IsDir() {
			isDir = true
		}
	}
	if !isDir {
		return output
	}
	base := strings.TrimSuffix(filepath.Base(scenePath), filepath.Ext(scenePath))
	return filepath.Join(output, base+exporter.FileExtension())
}

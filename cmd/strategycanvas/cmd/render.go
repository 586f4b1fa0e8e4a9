package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/strategycanvas/internal/canvas"
	"github.com/dbmrq/strategycanvas/internal/config"
	"github.com/dbmrq/strategycanvas/internal/definition"
	apperrors "github.com/dbmrq/strategycanvas/internal/errors"
	"github.com/dbmrq/strategycanvas/internal/export"
	"github.com/dbmrq/strategycanvas/internal/report"
)

// summaryWidth is the wrap width of the --summary output.
const summaryWidth = 80

func newRenderCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "render",
		Short: "Export a canvas definition file as a PNG",
		Long: `Export a strategy canvas described in a YAML file, without the wizard.

The file lists the factors, the competitors (the first one is your company)
and a rating for every competitor on every factor. It must pass the same
checks as the wizard: at least 3 factors, at least 2 competitors and no
missing ratings.

Examples:
  strategycanvas render -f canvas.yaml
  strategycanvas render -f canvas.yaml -o exports --summary
  strategycanvas render -f canvas.yaml --watch`,
		RunE: runRender,
	}

	c.Flags().StringP("file", "f", "", "Canvas definition file")
	c.Flags().StringP("output", "o", "", "Output directory (overrides export.output_dir)")
	c.Flags().Bool("summary", false, "Print the data table and strongest factors after exporting")
	c.Flags().Bool("watch", false, "Export again whenever the file changes")
	_ = c.MarkFlagRequired("file")
	return c
}

func runRender(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	output, _ := cmd.Flags().GetString("output")
	summary, _ := cmd.Flags().GetBool("summary")
	watch, _ := cmd.Flags().GetBool("watch")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Export.OutputDir = output
	}
	defer setupLogging(cmd, cfg)()

	exp := newExporter(cfg)

	s, err := definition.Load(file)
	if err != nil {
		return err
	}
	if err := renderOnce(cmd, cfg, exp, s, summary); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	cmd.Printf("Watching %s for changes (Ctrl+C to stop)\n", file)
	return definition.Watch(cmd.Context(), file, definition.DefaultDebounce, func(s *canvas.State, err error) {
		if err == nil {
			err = renderOnce(cmd, cfg, exp, s, summary)
		}
		if err != nil {
			cmd.PrintErr(apperrors.FormatAny(err))
		}
	})
}

func renderOnce(cmd *cobra.Command, cfg *config.Config, exp *export.Exporter, s *canvas.State, summary bool) error {
	res, err := exp.Export(cmd.Context(), s)
	if err != nil {
		return err
	}
	cmd.Printf("Exported %s (%dx%d)\n", res.Path, res.Width, res.Height)

	if !summary {
		return nil
	}
	md := report.Markdown(s, cfg.Export.Title)
	out, err := report.Render(md, summaryWidth)
	if err != nil {
		// Unstyled Markdown is still readable.
		cmd.Println(md)
		return nil
	}
	cmd.Print(out)
	return nil
}

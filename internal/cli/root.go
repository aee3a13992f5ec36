package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/modernheim/dressroom/internal/export"
	"github.com/modernheim/dressroom/internal/model"
	"github.com/modernheim/dressroom/internal/project"
	"github.com/modernheim/dressroom/internal/session"
)

var (
	version = "dev"
	commit  = "none"
)

// SetVersion sets the version information displayed by --version,
// typically injected via ldflags at build time.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the dressroom CLI and returns an error if any command
// fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "dressroom",
		Short:        "Dressroom prices and plans modular wardrobe configurations",
		Long:         `Dressroom is the configuration engine behind the Modern Heim modular wardrobe builder: it validates item placement, lays out bay sequences in world space, and derives a priced bill of materials.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("dressroom %s (commit %s)\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newInitCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newBOMCmd())
	root.AddCommand(newLayoutCmd())
	root.AddCommand(newExportCmd())

	return root.ExecuteContext(context.Background())
}

// loadProject reads the project file and applies an optional TOML price
// override, returning a session ready for derivation.
func loadProject(ctx context.Context, path, pricesPath string) (*session.Session, error) {
	logger := loggerFromContext(ctx)

	p, err := project.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load project %s: %w", path, err)
	}
	logger.Debug("loaded project", "name", p.Name, "bays", len(p.Config.Bays))

	s := session.NewWithConfig(p.Config)
	if pricesPath != "" {
		prices, err := project.LoadPriceTable(pricesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load price list %s: %w", pricesPath, err)
		}
		s.SetPrices(prices)
		logger.Debug("applied price overrides", "file", pricesPath)
	}
	return s, nil
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [file]",
		Short: "Write a sample project file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(project.DefaultProjectDir(), "sample.json")
			if len(args) == 1 {
				path = args[0]
			}

			s := session.New()
			dims := s.Dimensions()
			first := s.AddBay(dims.BayWidth800, model.BayNormal)
			second := s.AddBay(dims.BayWidth800, model.BayNormal)
			s.AddBay(dims.BayWidthCorner, model.BayCorner)
			mirrorBay := s.AddBay(dims.BayWidth400, model.BayNormal)

			s.SetMode(session.ModeHanger)
			s.ToggleItem(first.ID, 4)
			s.SetMode(session.ModeDrawer)
			s.ToggleItem(second.ID, 0)
			s.SetMode(session.ModeMirror)
			s.ToggleItem(mirrorBay.ID, 0)

			p := project.Project{Name: "Sample Dressroom", Config: s.Config()}
			if err := project.Save(path, p); err != nil {
				return fmt.Errorf("failed to save project: %w", err)
			}
			loggerFromContext(cmd.Context()).Info("wrote sample project", "file", path)
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <project.json>",
		Short: "Print a project's configuration module by module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load project %s: %w", args[0], err)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderProject(p.Name, p.Config))
			return nil
		},
	}
}

func newBOMCmd() *cobra.Command {
	var pricesPath string

	cmd := &cobra.Command{
		Use:   "bom <project.json>",
		Short: "Print the priced bill of materials for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadProject(cmd.Context(), args[0], pricesPath)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderBOM(s.Config(), s.BOM()))
			return nil
		},
	}
	cmd.Flags().StringVar(&pricesPath, "prices", "", "TOML price list overriding the defaults")
	return cmd
}

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout <project.json>",
		Short: "Print the computed world-space layout for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadProject(cmd.Context(), args[0], "")
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderLayout(s.Layout()))
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a project as PDF quotation, Excel BOM, or DXF floor plan",
	}
	cmd.AddCommand(newExportPDFCmd())
	cmd.AddCommand(newExportXLSXCmd())
	cmd.AddCommand(newExportDXFCmd())
	return cmd
}

func newExportPDFCmd() *cobra.Command {
	var out, pricesPath string

	cmd := &cobra.Command{
		Use:   "pdf <project.json>",
		Short: "Write the quotation as an A4 PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadProject(cmd.Context(), args[0], pricesPath)
			if err != nil {
				return err
			}
			if err := export.ExportQuotation(out, s.Config(), s.BOM()); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("wrote quotation", "file", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "quotation.pdf", "output file")
	cmd.Flags().StringVar(&pricesPath, "prices", "", "TOML price list overriding the defaults")
	return cmd
}

func newExportXLSXCmd() *cobra.Command {
	var out, pricesPath string

	cmd := &cobra.Command{
		Use:   "xlsx <project.json>",
		Short: "Write the bill of materials as an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadProject(cmd.Context(), args[0], pricesPath)
			if err != nil {
				return err
			}
			if err := export.ExportWorkbook(out, s.Config(), s.BOM()); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("wrote workbook", "file", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "bom.xlsx", "output file")
	cmd.Flags().StringVar(&pricesPath, "prices", "", "TOML price list overriding the defaults")
	return cmd
}

func newExportDXFCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "dxf <project.json>",
		Short: "Write the top-view floor plan as DXF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadProject(cmd.Context(), args[0], "")
			if err != nil {
				return err
			}
			plan := s.Layout()
			if err := export.ExportFloorPlan(out, plan, s.Dimensions()); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("wrote floor plan", "file", out, "bays", len(plan.Placements))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "plan.dxf", "output file")
	return cmd
}

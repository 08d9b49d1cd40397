package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/theme"
)

func (a *app) newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "List, inspect and render theme palettes",
		Long: `List, inspect and render theme palettes.

Built-in themes: jtjs-light, jtjs-dark, jtjs-parchment. Additional themes are
loaded from --themes-file (a JSON object or array of objects with a "name" and
one hex colour per role).`,
	}

	cmd.PersistentFlags().String(flagTheme, "", "theme to select (env SHADE_THEME, default jtjs-dark)")

	cmd.AddCommand(
		a.newThemeListCmd(),
		a.newThemeShowCmd(),
		a.newThemeCSSCmd(),
		a.newThemeExportCmd(),
		a.newThemeValidateCmd(),
	)
	return cmd
}

func (a *app) newThemeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := a.newRegistry()
			if err != nil {
				return err
			}
			defer registry.Close()

			current := registry.Current().Name
			table := NewTable("NAME", "CURRENT", "BACKGROUND", "TEXT")
			for _, t := range registry.Themes() {
				marker := ""
				if t.Name == current {
					marker = "*"
				}
				table.AddRow(t.Name, marker, t.Get(theme.RoleBackground), t.Get(theme.RoleText))
			}

			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}
}

func (a *app) newThemeShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show a theme's colours and derived variants",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := a.newRegistry()
			if err != nil {
				return err
			}
			defer registry.Close()

			t, err := resolveTheme(registry, args)
			if err != nil {
				return err
			}

			table := NewTable("ROLE", "COLOUR", "DARKENED", "LIGHTENED")
			for _, role := range theme.AllRoles() {
				c := t.Get(role)
				if c == "" {
					continue
				}
				table.AddRow(string(role),
					swatchCell(c),
					swatchCell(registry.Darken(c)),
					swatchCell(registry.Lighten(c)),
				)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n", t.Name)
			fmt.Fprint(out, table.Render())
			return nil
		},
	}
}

func (a *app) newThemeCSSCmd() *cobra.Command {
	var outputPath string
	var all bool

	cmd := &cobra.Command{
		Use:   "css [name]",
		Short: "Render a theme as CSS custom properties",
		Long: `Render a theme as CSS custom properties, including -darkened and
-lightened variants of every colour.

Examples:
  shade theme css
  shade theme css jtjs-light --selector '.light' --output light.css
  shade theme css --all --prefix app`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := a.newRegistry()
			if err != nil {
				return err
			}
			defer registry.Close()

			var buf bytes.Buffer
			if all {
				err = a.renderAllCSS(&buf, registry)
			} else {
				err = a.renderThemeCSS(&buf, registry, args)
			}
			if err != nil {
				return err
			}

			return writeOutput(cmd, outputPath, buf.Bytes(), 0o644)
		},
	}

	cmd.Flags().String(flagSelector, theme.DefaultSelector, "CSS selector (env SHADE_CSS_SELECTOR)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&all, "all", false, `render every theme under [data-theme="<name>"]`)
	return cmd
}

// renderThemeCSS publishes a single theme into a CSS sink and renders it.
func (a *app) renderThemeCSS(w io.Writer, registry *theme.Registry, args []string) error {
	t, err := resolveTheme(registry, args)
	if err != nil {
		return err
	}

	sink := theme.NewCSSSink(a.config.Selector)
	sink.Comment = t.Name
	n := theme.Publish(theme.MultiSink{sink, theme.LogSink{Logger: a.logger.Named("css")}}, t, a.config.Prefix, a.config.Amount)
	a.logger.Debug("rendered theme", "theme", t.Name, "variables", n)

	_, err = sink.WriteTo(w)
	return err
}

// renderAllCSS renders every registered theme as its own attribute-selected block.
func (a *app) renderAllCSS(w io.Writer, registry *theme.Registry) error {
	for i, t := range registry.Themes() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		css, err := theme.RenderCSS(t, theme.CSSOptions{
			Selector: fmt.Sprintf("[data-theme=%q]", t.Name),
			Prefix:   a.config.Prefix,
			Amount:   a.config.Amount,
		})
		if err != nil {
			return err
		}
		if _, err := w.Write(css); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) newThemeExportCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export [name]...",
		Short: "Export themes as JSON",
		Long: `Export registered themes as a JSON array suitable for --themes-file.
With no names every registered theme is exported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := a.newRegistry()
			if err != nil {
				return err
			}
			defer registry.Close()

			themes := registry.Themes()
			if len(args) > 0 {
				themes = themes[:0]
				for _, name := range args {
					t, ok := registry.Get(name)
					if !ok {
						return fmt.Errorf("unknown theme %q", name)
					}
					themes = append(themes, t)
				}
			}

			if outputPath != "" {
				if err := theme.SaveFile(outputPath, themes); err != nil {
					return err
				}
				a.logger.Info("exported themes", "count", len(themes), "path", outputPath)
				return nil
			}

			data, err := json.MarshalIndent(themes, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to convert to JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func (a *app) newThemeValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Strictly validate a themes file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			themes, err := theme.LoadFile(args[0], true)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d valid theme(s)\n", args[0], len(themes))
			return nil
		},
	}
}

func resolveTheme(registry *theme.Registry, args []string) (theme.Theme, error) {
	if len(args) == 0 {
		return registry.Current(), nil
	}

	t, ok := registry.Get(args[0])
	if !ok {
		return theme.Theme{}, fmt.Errorf("unknown theme %q", args[0])
	}
	return t, nil
}

func swatchCell(hex string) string {
	if !colour.SupportsANSIColours() {
		return hex
	}
	return colour.Swatch(hex, 2) + " " + hex
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte, perm os.FileMode) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/alexshd/langtour"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var nameStyle = lipgloss.NewStyle().Bold(true).Width(12)

// runCmd runs the configured demos
func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the demos listed in the config (default: main)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigured(cmd)
		},
	}
}

// demoCmd runs demos by name
func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [name...]",
		Short: "Run one or more demos by name",
		Long: `Runs the named demos in order. Use "langtour list" to see the names.

Example:
  langtour demo sizes optional`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemos(cmd, args)
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, d := range a.registry.Demos() {
				fmt.Fprintf(out, "%s %s\n", nameStyle.Render(d.Name), d.Summary)
			}
			return nil
		},
	}
}

func (a *app) explainCmd() *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "explain [name]",
		Short: "Show the walkthrough notes for a demo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.registry.Lookup(args[0])
			if err != nil {
				return err
			}

			opts := []glamour.TermRendererOption{glamour.WithWordWrap(80)}
			if style == "auto" {
				opts = append(opts, glamour.WithAutoStyle())
			} else {
				opts = append(opts, glamour.WithStandardStyle(style))
			}
			renderer, err := glamour.NewTermRenderer(opts...)
			if err != nil {
				return fmt.Errorf("failed to create markdown renderer: %w", err)
			}

			rendered, err := renderer.Render(d.Notes)
			if err != nil {
				return fmt.Errorf("failed to render notes for %s: %w", d.Name, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}
	cmd.Flags().StringVar(&style, "style", "auto", "Glamour style: auto, dark, light, notty")
	return cmd
}

// sizeCmd matches a size name against both matchers
func (a *app) sizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size [small|medium|large]",
		Short: "Match a size with ToString and ToString2",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := langtour.ParseSize(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("size parsed", "input", args[0], "value", int(s))
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s %s\n", int(s), langtour.ToString(s), langtour.ToString2(s))
			return nil
		},
	}
}

func (a *app) initConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default config as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if err := langtour.DefaultConfig().Save(path); err != nil {
				return err
			}
			a.logger.Info("config written", "path", path)
			return nil
		},
	}
}

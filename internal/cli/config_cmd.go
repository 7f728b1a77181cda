package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"sitesearch/internal/config"
)

func newConfigCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the sitesearch configuration",
	}
	cmd.AddCommand(newConfigInitCmd(o))
	cmd.AddCommand(newConfigShowCmd(o))
	return cmd
}

func newConfigInitCmd(o *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write the default configuration to ./` + config.FileName + `, or to the file
given with --config.`,
		RunE: o.run(func(cmd *cobra.Command, args []string) error {
			path := o.cfgFile
			if path == "" {
				path = config.FileName
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !isNotExist(err) {
				return fmt.Errorf("check %s: %w", path, err)
			}

			if err := config.NewConfigServiceAt(path).Save(config.DefaultConfig()); err != nil {
				return err
			}
			NewPrinter(cmd.OutOrStdout()).Success("Wrote %s", path)
			return nil
		}),
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigShowCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: o.run(func(cmd *cobra.Command, args []string) error {
			cfg := o.cfg
			out := cmd.OutOrStdout()
			printer := NewPrinter(out)

			printer.Header("Current Configuration")
			printer.Info("Config file: %s", o.configSvc.Path())

			table := NewTable(out, []string{"Key", "Value"})
			table.AddRow("index", cfg.Index)
			table.AddRow("index (resolved)", cfg.IndexLocation())
			table.AddRow("base_url", cfg.BaseURL)
			table.AddRow("log_file", cfg.LogFile)
			table.AddRow("open_command", cfg.OpenCommand)
			table.AddRow("search.limit", strconv.Itoa(cfg.Search.Limit))
			table.AddRow("search.summary_limit", strconv.Itoa(cfg.Search.SummaryLimit))
			table.AddRow("search.focus_delay_ms", strconv.Itoa(cfg.Search.FocusDelayMS))
			table.AddRow("search.close_delay_ms", strconv.Itoa(cfg.Search.CloseDelayMS))
			table.AddRow("ui.show_dates", strconv.FormatBool(cfg.UISettings.ShowDates))
			table.AddRow("ui.start_open", strconv.FormatBool(cfg.UISettings.StartOpen))

			names := make([]string, 0, len(cfg.Sections))
			for name := range cfg.Sections {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				icon := cfg.Sections[name]
				table.AddRow("sections."+name, fmt.Sprintf("%s %s", icon.Glyph, icon.Class))
			}

			return table.Render()
		}),
	}
}

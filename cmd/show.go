package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/kilianp07/dayplanner/pkg/export"
)

var (
	showFormat string
	showOut    string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the configured plan",
	RunE:  runShow,
}

func init() {
	formats := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		formats[i] = string(f)
	}
	showCmd.Flags().StringVarP(&showFormat, "format", "f", string(export.FormatList), "output format: "+strings.Join(formats, ", "))
	showCmd.Flags().StringVarP(&showOut, "out", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	format := export.Format(strings.ToLower(showFormat))
	if showOut == "" {
		return export.Write(cmd.OutOrStdout(), format, svc.Entries())
	}
	if err := export.WriteFile(afero.NewOsFs(), showOut, format, svc.Entries()); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

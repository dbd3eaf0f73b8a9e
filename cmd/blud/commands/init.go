package commands

import (
	"fmt"

	"github.com/dyluth/blud/internal/printer"
	"github.com/dyluth/blud/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	forceInit bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default blud.yml",
	Long: `Write a blud.yml containing the default output settings, chart colours
and donation compatibility table.

The file is written to the --config path (blud.yml by default).

Use --force to overwrite an existing file.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing configuration file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if !forceInit {
		if err := scaffold.CheckExisting(configPath); err != nil {
			return printer.Error(
				"configuration already exists",
				err.Error(),
				[]string{"Overwrite it with the defaults:\n  blud init --force"},
			)
		}
	}

	if err := scaffold.Initialize(configPath, forceInit); err != nil {
		return printer.Error(
			"initialization failed",
			err.Error(),
			[]string{fmt.Sprintf("Check that %s is writable", configPath)},
		)
	}

	scaffold.PrintSuccess(configPath)

	return nil
}

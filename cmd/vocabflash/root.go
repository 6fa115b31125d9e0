package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(cc *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vocabflash",
		Short:         "Save vocabulary and study it as flashcards",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cc.dataFlag, "data", "", "Local data directory (overrides local.path)")
	rootCmd.PersistentFlags().BoolVarP(&cc.verbose, "verbose", "v", false, "Log store activity to stderr")

	rootCmd.AddCommand(newAddCommand(cc))
	rootCmd.AddCommand(newListCommand(cc))
	rootCmd.AddCommand(newDatesCommand(cc))
	rootCmd.AddCommand(newDeleteCommand(cc))
	rootCmd.AddCommand(newExportCommand(cc))
	rootCmd.AddCommand(newImportCommand(cc))
	rootCmd.AddCommand(newClearCommand(cc))
	rootCmd.AddCommand(newStudyCommand(cc))
	rootCmd.AddCommand(newTokenCommand())

	return rootCmd
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newExportCommand(cc *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all items as a JSON array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cc.openStore(cmd)
			if err != nil {
				return err
			}
			data, err := store.Export()
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (default stdout)")
	return cmd
}

func newImportCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Append items from a JSON array produced by export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			store, err := cc.openStore(cmd)
			if err != nil {
				return err
			}
			n, err := store.Import(data)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items\n", n)
			return nil
		},
	}
}

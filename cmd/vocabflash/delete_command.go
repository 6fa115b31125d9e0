package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newDeleteCommand(cc *commandContext) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete one word by ID, or every word saved on --date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 1) == (date != "") {
				return errors.New("give either an item ID or --date")
			}

			store, err := cc.openStore(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if date != "" {
				n, err := store.DeleteByDate(date)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Deleted %d items saved on %s\n", n, date)
				return nil
			}

			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Delete every item saved on this day (YYYY-MM-DD)")
	return cmd
}

func newClearCommand(cc *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cc.openStore(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !yes {
				items, err := store.All()
				if err != nil {
					return err
				}
				if !confirm(cmd.InOrStdin(), out, fmt.Sprintf("Delete all %d items?", len(items))) {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(out, "All vocabulary cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

func newListCommand(cc *commandContext) *cobra.Command {
	var date, from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show saved words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cc.openStore(cmd)
			if err != nil {
				return err
			}
			items, err := selectItems(store, date, from, to)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "No vocabulary saved.")
				return nil
			}

			rows := make([][]string, 0, len(items))
			for _, it := range items {
				rows = append(rows, []string{it.ID, it.Word, it.Meaning, it.SavedDate})
			}
			fmt.Fprintln(out, renderTable(out, []string{"ID", "Word", "Meaning", "Saved"}, rows, 3))
			fmt.Fprintf(out, "%d items\n", len(items))
			return nil
		},
	}

	addDateFlags(cmd, &date, &from, &to)
	return cmd
}

func newDatesCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dates",
		Short: "Show the days words were saved on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cc.openStore(cmd)
			if err != nil {
				return err
			}
			dates, err := store.SavedDates()
			if err != nil {
				return err
			}
			items, err := store.All()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(dates) == 0 {
				fmt.Fprintln(out, "No vocabulary saved.")
				return nil
			}

			counts := make(map[string]int, len(dates))
			for _, it := range items {
				counts[it.SavedDate]++
			}
			rows := make([][]string, 0, len(dates))
			for _, d := range dates {
				day := d
				if d == cc.today() {
					day = paint(out, d+" (today)", text.Bold)
				}
				rows = append(rows, []string{day, strconv.Itoa(counts[d])})
			}
			fmt.Fprintln(out, renderTable(out, []string{"Date", "Items"}, rows))
			return nil
		},
	}
}

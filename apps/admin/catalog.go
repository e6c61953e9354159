package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trezcool/synapse/core/course"
)

func (cli *commandLine) catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tLEVEL\tPRICE\tSYLLABUS")
			for _, c := range cli.courses.All() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d items\n", c.ID, c.Title, c.Level, price(c), len(c.Syllabus))
			}
			return w.Flush()
		},
	}
}

func price(c course.Course) string {
	if !c.IsPaid() {
		if c.Sponsor != nil {
			return "Free (" + c.Sponsor.Name + ")"
		}
		return "Free"
	}
	return fmt.Sprintf("$%.2f", *c.Price)
}

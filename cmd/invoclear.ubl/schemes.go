package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/invoclear/ubl/tax"
	"github.com/spf13/cobra"
)

type schemesOpts struct {
	*rootOpts
}

func schemes(o *rootOpts) *schemesOpts {
	return &schemesOpts{rootOpts: o}
}

func (s *schemesOpts) cmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the tax schemes supported by the clearance system",
		RunE:  s.runE,
	}
}

func (s *schemesOpts) runE(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, def := range tax.Schemes() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", def.Code, def.Name, def.Description)
	}
	return w.Flush()
}

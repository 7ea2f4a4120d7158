package main

import (
	"fmt"
	"io"
	"os"

	ubl "github.com/invoclear/ubl"
	"github.com/spf13/cobra"
)

type rootOpts struct{}

func root() *rootOpts {
	return new(rootOpts)
}

func (o *rootOpts) cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "invoclear.ubl",
		Short:         "Convert billing documents to and from clearance-ready UBL",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(convert(o).cmd())
	cmd.AddCommand(schemes(o).cmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the UBL version generated by this tool",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "UBL %s\n", ubl.Version)
		},
	}
}

func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) > 0 {
		return os.Open(args[0])
	}
	return io.NopCloser(cmd.InOrStdin()), nil
}

func (o *rootOpts) openOutput(cmd *cobra.Command, args []string) (io.WriteCloser, error) {
	if len(args) > 1 {
		return os.Create(args[1])
	}
	return nopWriteCloser{cmd.OutOrStdout()}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

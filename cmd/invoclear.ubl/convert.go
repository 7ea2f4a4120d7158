package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	ubl "github.com/invoclear/ubl"
	"github.com/invoclear/ubl/bill"
	"github.com/spf13/cobra"
)

type convertOpts struct {
	*rootOpts
	contextName string
}

func convert(o *rootOpts) *convertOpts {
	return &convertOpts{rootOpts: o}
}

func (c *convertOpts) cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <infile> [outfile]",
		Short: "Convert a billing JSON document into a clearance-ready UBL document and vice versa",
		RunE:  c.runE,
	}

	flags := cmd.Flags()
	flags.StringVar(&c.contextName, "context", "", "Clearance context for UBL conversion (standard, simplified)")

	return cmd
}

func (c *convertOpts) runE(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("expected one or two arguments, the command usage is `invoclear.ubl convert <infile> [outfile]`")
	}

	input, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer input.Close() // nolint:errcheck

	out, err := c.openOutput(cmd, args)
	if err != nil {
		return err
	}
	defer out.Close() // nolint:errcheck

	inData, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	// Check if input is JSON or XML
	isJSON := json.Valid(inData)

	var outputData []byte

	if isJSON {
		inv := new(bill.Invoice)
		if err := json.Unmarshal(inData, inv); err != nil {
			return fmt.Errorf("parsing input as billing invoice: %w", err)
		}
		opts, err := c.buildOptions()
		if err != nil {
			return err
		}
		doc, err := ubl.Convert(inv, opts...)
		if err != nil {
			return fmt.Errorf("building UBL document: %w", err)
		}

		outputData, err = ubl.Bytes(doc)
		if err != nil {
			return fmt.Errorf("generating UBL xml: %w", err)
		}
	} else {
		// Assume XML if not JSON

		doc, err := ubl.Parse(inData)
		if err != nil {
			return fmt.Errorf("parsing UBL document: %w", err)
		}

		inv, err := doc.Convert()
		if err != nil {
			return fmt.Errorf("building billing invoice: %w", err)
		}

		outputData, err = json.MarshalIndent(inv, "", "  ")
		if err != nil {
			return fmt.Errorf("generating JSON output: %w", err)
		}
	}

	if _, err = out.Write(outputData); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

func (c *convertOpts) buildOptions() ([]ubl.Option, error) {
	name := c.contextName
	if name == "" {
		name = os.Getenv("INVOCLEAR_CONTEXT")
	}
	if name == "" {
		return nil, nil
	}

	switch strings.ToLower(name) {
	case "standard", "clearance":
		return []ubl.Option{ubl.WithContext(ubl.ContextStandard)}, nil
	case "simplified", "reporting":
		return []ubl.Option{ubl.WithContext(ubl.ContextSimplified)}, nil
	default:
		return nil, fmt.Errorf("unknown context %q", name)
	}
}

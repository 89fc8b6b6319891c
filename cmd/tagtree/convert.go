package main

import (
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var in, out, to string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "convert a document between CBOR and JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := loadDocumentFrom(in)
			if err != nil {
				return err
			}
			toFormat := to
			if toFormat == "" {
				toFormat = flagFormat
			}
			if toFormat == "" {
				toFormat = "json"
			}
			data, err := encodeDocument(doc, toFormat)
			if err != nil {
				return err
			}
			return writeOutput(out, data, toFormat == "json")
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input file (default: stdin)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&to, "to", "", "target format: cbor or json (default: --format, else json)")
	return cmd
}

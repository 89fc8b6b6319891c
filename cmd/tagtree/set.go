package main

import (
	"github.com/spf13/cobra"

	"github.com/agentflare-ai/tagtree/json"
	"github.com/agentflare-ai/tagtree/pointer"
)

func newSetCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "set <pointer> <json-value>",
		Short: "upsert the value at a JSON Pointer path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocumentFrom(in)
			if err != nil {
				return err
			}
			newVal, err := json.Unmarshal([]byte(args[1]), json.DefaultFlags)
			if err != nil {
				return err
			}
			updated, err := pointer.Set(doc, args[0], newVal)
			if err != nil {
				return err
			}
			format := flagFormat
			if format == "" {
				format = resolveFormat(in)
			}
			data, err := encodeDocument(updated, format)
			if err != nil {
				return err
			}
			return writeOutput(out, data, format == "json")
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input file (default: stdin)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentflare-ai/tagtree/pointer"
)

func newGetCmd() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "get <pointer>",
		Short: "read the value at a JSON Pointer path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocumentFrom(in)
			if err != nil {
				return err
			}
			v := pointer.Get(doc, args[0])
			if !v.Valid() {
				return fmt.Errorf("tagtree: path %q not found", args[0])
			}
			data, err := encodeDocument(v, "json")
			if err != nil {
				return err
			}
			return writeOutput("", data, true)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input file (default: stdin)")
	return cmd
}

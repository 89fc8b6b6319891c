package main

import (
	"github.com/spf13/cobra"

	"github.com/agentflare-ai/tagtree/json"
	"github.com/agentflare-ai/tagtree/patch"
)

func newMergeCmd() *cobra.Command {
	var in, out, patchFile string
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "apply an RFC 7396 JSON Merge Patch to a document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := loadDocumentFrom(in)
			if err != nil {
				return err
			}
			patchBytes, err := readInput(patchFile)
			if err != nil {
				return err
			}
			mergeVal, err := json.Unmarshal(patchBytes, json.DefaultFlags)
			if err != nil {
				return err
			}
			result, err := patch.MergePatch(doc, mergeVal)
			if err != nil {
				return err
			}
			format := flagFormat
			if format == "" {
				format = resolveFormat(in)
			}
			data, err := encodeDocument(result, format)
			if err != nil {
				return err
			}
			return writeOutput(out, data, format == "json")
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input document (default: stdin)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&patchFile, "merge", "", "merge patch document file (required)")
	_ = cmd.MarkFlagRequired("merge")
	return cmd
}

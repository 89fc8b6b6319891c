package main

import (
	"github.com/spf13/cobra"

	"github.com/agentflare-ai/tagtree/patch"
)

func newPatchCmd() *cobra.Command {
	var in, out, patchFile string
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "apply an RFC 6902 JSON Patch operation list to a document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := loadDocumentFrom(in)
			if err != nil {
				return err
			}
			patchData, err := readInput(patchFile)
			if err != nil {
				return err
			}
			p, err := patch.Unmarshal(patchData)
			if err != nil {
				return err
			}
			result, err := patch.Apply(doc, p)
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
	cmd.Flags().StringVar(&patchFile, "patch", "", "JSON Patch operation list file (required)")
	_ = cmd.MarkFlagRequired("patch")
	return cmd
}

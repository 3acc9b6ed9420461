package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hoopvision/internal/appearance"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>...",
	Short: "Infer appearance attributes for headshot image files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		type fileResult struct {
			File string `json:"file"`
			appearance.Result
		}

		results := make([]fileResult, 0, len(args))
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			results = append(results, fileResult{File: path, Result: analyzer.Analyze(data)})
		}

		if analyzeJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FILE\tTONE\tHAIR\tFACIAL HAIR\tACCESSORY")
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%d\t%d (%s)\t%d (%s)\t%d (%s)\n",
				r.File, r.SkinTone,
				r.Hair, cat.Hair[r.Hair].Description,
				r.FacialHair, cat.FacialHair[r.FacialHair].Description,
				r.Accessory, cat.Accessories[r.Accessory].Description)
		}
		return w.Flush()
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit results as JSON instead of a table")
	rootCmd.AddCommand(analyzeCmd)
}

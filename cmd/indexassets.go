package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"hoopvision/internal/asset"
)

var (
	indexOut    string
	indexCols   int
	indexDedupe bool
)

var indexAssetsCmd = &cobra.Command{
	Use:   "index-assets <dir>",
	Short: "Index sprite sheets of catalog art into a per-cell feature JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ix := asset.NewIndexer().WithCols(indexCols).WithLogger(logger)
		index, err := ix.IndexDir(args[0])
		if err != nil {
			return err
		}

		if indexDedupe {
			for category, cells := range index {
				kept := asset.Dedupe(cells)
				// Renumber so the index stays gapless after dropping
				// duplicates.
				for i := range kept {
					kept[i].Index = i
				}
				index[category] = kept
			}
		}

		f, err := os.Create(indexOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", indexOut, err)
		}
		defer f.Close()
		if err := asset.WriteIndex(f, index); err != nil {
			return err
		}

		categories := make([]string, 0, len(index))
		for c := range index {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			fmt.Fprintf(os.Stderr, "%s: %d cells\n", c, len(index[c]))
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", indexOut)
		return nil
	},
}

func init() {
	indexAssetsCmd.Flags().StringVar(&indexOut, "out", "sprite_index.json", "output JSON path")
	indexAssetsCmd.Flags().IntVar(&indexCols, "cols", asset.DefaultCols, "grid columns per sheet row band")
	indexAssetsCmd.Flags().BoolVar(&indexDedupe, "dedupe", false, "drop perceptually duplicate cells and renumber")
	rootCmd.AddCommand(indexAssetsCmd)
}

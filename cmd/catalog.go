package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hoopvision/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the loaded style catalog and flag surprising shapes",
	RunE: func(cmd *cobra.Command, args []string) error {
		idx := cat.Index()

		fmt.Printf("total styles: %d (hair %d, facial hair %d, accessories %d)\n\n",
			cat.TotalStyles, len(cat.Hair), len(cat.FacialHair), len(cat.Accessories))

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		warnings := 0

		fmt.Fprintln(w, "HAIR VOLUME\tCOUNT")
		for _, v := range catalog.Volumes {
			n := len(idx.HairByVolume(v))
			fmt.Fprintf(w, "%s\t%d\n", v, n)
			warnings += warnEmpty(n, "hair styles", "volume", v.String())
		}
		fmt.Fprintln(w, "\nHAIR TEXTURE\tCOUNT")
		for _, t := range catalog.Textures {
			n := len(idx.HairByTexture(t))
			fmt.Fprintf(w, "%s\t%d\n", t, n)
			warnings += warnEmpty(n, "hair styles", "texture", t.String())
		}
		fmt.Fprintln(w, "\nHAIR LENGTH\tCOUNT")
		for _, l := range catalog.Lengths {
			fmt.Fprintf(w, "%s\t%d\n", l, len(idx.HairByLength(l)))
		}
		fmt.Fprintln(w, "\nFACIAL HAIR DENSITY\tCOUNT")
		for _, d := range catalog.Densities {
			n := len(idx.FacialHairByDensity(d))
			fmt.Fprintf(w, "%s\t%d\n", d, n)
			warnings += warnEmpty(n, "facial hair styles", "density", d.String())
		}
		fmt.Fprintln(w, "\nACCESSORY KIND\tCOUNT")
		for _, k := range catalog.AccessoryKinds {
			n := len(idx.AccessoriesByKind(k))
			fmt.Fprintf(w, "%s\t%d\n", k, n)
			warnings += warnEmpty(n, "accessories", "kind", k.String())
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if warnings == 0 {
			fmt.Println("\nevery bucket is populated")
		}
		return nil
	},
}

// warnEmpty reports an empty bucket to stderr. Empty buckets are legal, the
// matcher falls back past them, but they usually mean the catalog's
// descriptions miss the classification vocabulary.
func warnEmpty(n int, what, dim, bucket string) int {
	if n > 0 {
		return 0
	}
	fmt.Fprintf(os.Stderr, "warning: no %s classify as %s %q; the matcher will fall back\n", what, dim, bucket)
	return 1
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

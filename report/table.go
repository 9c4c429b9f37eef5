package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/linku/unime/core"
)

// WriteTable renders the ranked matches as an aligned text table.
func WriteTable(w io.Writer, matches []core.Match) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tUNIVERSITY\tPROGRAM\tACADEMIC\tCAMPUS\tSOCIAL\tTOTAL")
	for i, m := range matches {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.3f\t%.3f\t%.3f\t%.3f\n",
			i+1, m.Uni, m.Program, m.Academic, m.Campus, m.Social, m.Overall)
	}
	return tw.Flush()
}

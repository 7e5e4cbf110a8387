package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chazu/frost/pkg/trace"
)

// writePaths renders traced paths to w. Text format prints one
// point per line with a comment header per path; json format emits the
// path objects directly.
func writePaths(w io.Writer, paths []*trace.Path, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(paths)

	case "text":
		for i, p := range paths {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "# %s %s (%d points)\n", p.Name, p.Color, p.PointCount())
			for _, pt := range p.Points {
				fmt.Fprintf(w, "%g %g\n", pt.X, pt.Y)
			}
		}
		return nil

	default:
		return fmt.Errorf("unknown format %q, expected text or json", format)
	}
}

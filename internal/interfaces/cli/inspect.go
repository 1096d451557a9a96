package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/hexmean/internal/infrastructure/geoio"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect INPUT_FILE",
		Short: "Print a summary of a geometry dataset",
		Long: "Parses INPUT_FILE the same way aggregate does and prints its feature\n" +
			"count, geometry types, and attribute fields. Useful for understanding\n" +
			"why an input fails validation.",
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	cc, err := getCLIContext(cmd)
	if err != nil {
		return err
	}

	input := args[0]
	reader := geoio.NewReader(input, cc.cfg.PostGIS, cc.logger)

	ds, err := reader.Read(cmd.Context(), input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Source:         %s\n", input)
	fmt.Fprintf(out, "Features:       %d\n", len(ds.Features))
	fmt.Fprintf(out, "Geometry types: %s\n", joinOrNone(ds.GeometryTypes()))
	fmt.Fprintf(out, "Fields:         %s\n", joinOrNone(ds.FieldNames()))
	return nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

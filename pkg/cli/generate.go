package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/frost/pkg/log"
	"github.com/chazu/frost/pkg/scene"
	"github.com/chazu/frost/pkg/trace"
)

func newGenerateCmd() *cobra.Command {
	var (
		centroidStr string
		vertexStr   string
		level       int
		format      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one snowflake outline and print its points",
		RunE: func(cmd *cobra.Command, _ []string) error {
			centroid, err := parsePoint(centroidStr)
			if err != nil {
				return fmt.Errorf("--centroid: %w", err)
			}
			vertex, err := parsePoint(vertexStr)
			if err != nil {
				return fmt.Errorf("--vertex: %w", err)
			}

			s := scene.New()
			s.AddFlake(&scene.Flake{
				Name:     "snowflake",
				Centroid: centroid,
				Vertex:   vertex,
				Level:    level,
				Color:    s.Defaults.Color,
			})

			paths, err := trace.Trace(s)
			if err != nil {
				return err
			}
			log.Debugw("generated outline",
				"level", level,
				"points", paths[0].PointCount())

			return writePaths(cmd.OutOrStdout(), paths, format)
		},
	}

	cmd.Flags().StringVar(&centroidStr, "centroid", "0,0", "triangle centroid as X,Y")
	cmd.Flags().StringVar(&vertexStr, "vertex", "0,20", "one triangle vertex as X,Y")
	cmd.Flags().IntVar(&level, "level", scene.DefaultLevel, "recursion level")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	return cmd
}

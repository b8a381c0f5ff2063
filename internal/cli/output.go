package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"memgraph/dot"
	"memgraph/graph"
)

// resolveFormat picks the output format: an explicit --format wins, else the
// output file extension, else DOT text.
func resolveFormat(format, path string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".svg":
			return "svg", nil
		case ".png":
			return "png", nil
		default:
			return "dot", nil
		}
	}
	switch format {
	case "dot", "svg", "png":
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q (want dot, svg or png)", format)
	}
}

// writeGraph serializes the graph in the requested format. An empty path
// writes DOT text to stdout; rendered formats require a path.
func (c *CLI) writeGraph(ctx context.Context, g *graph.Graph, opts dot.Options, path, format string) error {
	dotText, err := dot.Marshal(g, opts)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "dot":
		data = []byte(dotText)
	case "svg":
		if data, err = dot.RenderSVG(ctx, dotText); err != nil {
			return err
		}
	case "png":
		if data, err = dot.RenderPNG(ctx, dotText); err != nil {
			return err
		}
	}

	if path == "" {
		if format != "dot" {
			return fmt.Errorf("--output is required for %s output", format)
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	c.Logger.Info("wrote graph", "path", path, "nodes", g.Len(), "edges", g.Edges())
	return nil
}

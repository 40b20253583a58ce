package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goarea/version"
)

var rootCmd = &cobra.Command{
	Use:   "goarea",
	Short: "A CLI tool for planar area measurement on 3D models",
	Long: `goarea measures planar polygons on 3D geometry. Given an ordered set of
3D points it computes the polygon's edges, perimeter, enclosed area, and a
planarity diagnostic. It also inspects STL models and generates camera
animation paths for splat viewers.`,
	Version: version.Full(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

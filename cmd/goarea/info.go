package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goarea/pkg/scene"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display information about an STL model",
	Long:  "Show dimensions, triangle count, surface area, and bounding box of an STL model.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	mesh, err := scene.LoadSTL(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading STL file: %v\n", err)
		os.Exit(1)
	}

	bbox := mesh.BoundingBox()
	size := bbox.Size()

	fmt.Println("STL Model Information")
	fmt.Println("=====================")
	if mesh.Name != "" {
		fmt.Printf("Name: %s\n", mesh.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", mesh.TriangleCount())
	fmt.Printf("  Surface Area: %.6f square units\n\n", mesh.SurfaceArea())

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: (%.6f, %.6f, %.6f)\n", bbox.Min.X, bbox.Min.Y, bbox.Min.Z)
	fmt.Printf("  Max: (%.6f, %.6f, %.6f)\n", bbox.Max.X, bbox.Max.Y, bbox.Max.Z)
	center := bbox.Center()
	fmt.Printf("  Center: (%.6f, %.6f, %.6f)\n\n", center.X, center.Y, center.Z)

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", size.X)
	fmt.Printf("  Depth (Y): %.6f units\n", size.Y)
	fmt.Printf("  Height (Z): %.6f units\n", size.Z)
	fmt.Printf("  Diagonal: %.6f units\n", bbox.Diagonal())
	fmt.Printf("  Volume: %.6f cubic units\n", bbox.Volume())
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goarea/pkg/geometry"
)

var (
	areaPointsFile string
	areaPoints     []string
	areaOpen       bool
)

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Compute the area and perimeter of a planar polygon",
	Long: `Compute edge lengths, perimeter, enclosed area, and a planarity
diagnostic for an ordered loop of 3D points. Points come from a JSON file
([[x,y,z], ...]) or from repeated --point flags, in placement order.`,
	RunE: runArea,
}

func init() {
	rootCmd.AddCommand(areaCmd)

	areaCmd.Flags().StringVar(&areaPointsFile, "points", "", "JSON file with an array of [x,y,z] points")
	areaCmd.Flags().StringArrayVar(&areaPoints, "point", nil, "point as x,y,z (repeatable)")
	areaCmd.Flags().BoolVar(&areaOpen, "open", false, "treat the points as an open polyline (no closing edge, no area)")
	areaCmd.MarkFlagsMutuallyExclusive("points", "point")
}

func runArea(cmd *cobra.Command, args []string) error {
	points, err := collectPoints()
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no points given; use --points or --point")
	}

	closed := !areaOpen
	edges := geometry.BuildEdges(points, closed)

	fmt.Println("Polygon Measurement")
	fmt.Println("===================")
	fmt.Printf("\nPoints: %d\n", len(points))
	for i, p := range points {
		fmt.Printf("  %d: (%.6f, %.6f, %.6f)\n", i+1, p.X, p.Y, p.Z)
	}

	fmt.Printf("\nEdges: %d\n", len(edges))
	for i, e := range edges {
		fmt.Printf("  %d: %.6f units\n", i+1, e.Length)
	}

	fmt.Printf("\nPerimeter: %.6f units\n", geometry.PolygonPerimeter(edges))

	if closed {
		if area, ok := geometry.PolygonArea(points, true); ok {
			fmt.Printf("Area: %.6f square units\n", area)
		} else {
			fmt.Println("Area: undefined (fewer than 3 distinct points)")
		}

		if fit, err := geometry.FitPlane(points); err == nil {
			fmt.Printf("Planarity RMS: %.6f units\n", fit.RMS)
		}
	}

	return nil
}

func collectPoints() ([]geometry.Vector3, error) {
	if areaPointsFile != "" {
		return readPointsFile(areaPointsFile)
	}

	points := make([]geometry.Vector3, 0, len(areaPoints))
	for _, s := range areaPoints {
		p, err := parsePoint(s)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func readPointsFile(path string) ([]geometry.Vector3, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read points file: %w", err)
	}

	var raw [][3]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse points file %s: %w", path, err)
	}

	points := make([]geometry.Vector3, len(raw))
	for i, c := range raw {
		points[i] = geometry.NewVector3(c[0], c[1], c[2])
	}
	return points, nil
}

func parsePoint(s string) (geometry.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geometry.Vector3{}, fmt.Errorf("invalid point %q: want x,y,z", s)
	}

	var coords [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid point %q: %w", s, err)
		}
		coords[i] = v
	}
	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goarea/pkg/camerapath"
	"github.com/philipparndt/goarea/pkg/scene"
)

var (
	cameraType       string
	cameraDirection  string
	cameraCenter     string
	cameraModel      string
	cameraRadius     float64
	cameraFrames     int
	cameraFPS        int
	cameraFocal      float64
	cameraSensor     float64
	cameraTarget     string
	cameraTargetDist float64
	cameraStartRad   float64
	cameraEndRad     float64
	cameraStartH     float64
	cameraEndH       float64
	cameraLoops      float64
	cameraPrecision  int
	cameraStep       int
	cameraBlender    bool
	cameraOutput     string
)

var cameraCmd = &cobra.Command{
	Use:   "camera",
	Short: "Generate a camera animation path as SuperSplat JSON",
	Long: `Generate a circular or spiral camera orbit and write it as a SuperSplat
camera animation JSON file. The orbit center can be given directly or taken
from an STL model's bounding box.`,
	RunE: runCamera,
}

func init() {
	rootCmd.AddCommand(cameraCmd)

	defaults := camerapath.DefaultParams()

	cameraCmd.Flags().StringVar(&cameraType, "type", string(defaults.Type), "path type: circular or spiral")
	cameraCmd.Flags().StringVar(&cameraDirection, "direction", string(defaults.Direction), "orbit direction: clockwise or counterclockwise")
	cameraCmd.Flags().StringVar(&cameraCenter, "center", "0,0,0", "orbit center as x,y,z")
	cameraCmd.Flags().StringVar(&cameraModel, "model", "", "STL model whose bounding box centers the orbit")
	cameraCmd.Flags().Float64Var(&cameraRadius, "radius", defaults.Radius, "orbit radius (circular)")
	cameraCmd.Flags().IntVar(&cameraFrames, "frames", defaults.Frames, "number of frames")
	cameraCmd.Flags().IntVar(&cameraFPS, "fps", defaults.FPS, "frame rate")
	cameraCmd.Flags().Float64Var(&cameraFocal, "focal-length", defaults.FocalLength, "focal length in mm")
	cameraCmd.Flags().Float64Var(&cameraSensor, "sensor-width", defaults.SensorWidth, "sensor width in mm")
	cameraCmd.Flags().StringVar(&cameraTarget, "target", "", "fixed look-at point as x,y,z")
	cameraCmd.Flags().Float64Var(&cameraTargetDist, "target-distance", 0, "look at a point this far along the view direction")
	cameraCmd.Flags().Float64Var(&cameraStartRad, "start-radius", defaults.StartRadius, "spiral start radius")
	cameraCmd.Flags().Float64Var(&cameraEndRad, "end-radius", defaults.EndRadius, "spiral end radius")
	cameraCmd.Flags().Float64Var(&cameraStartH, "start-height", defaults.StartHeight, "spiral start height")
	cameraCmd.Flags().Float64Var(&cameraEndH, "end-height", defaults.EndHeight, "spiral end height")
	cameraCmd.Flags().Float64Var(&cameraLoops, "loops", defaults.Loops, "spiral loop count")
	cameraCmd.Flags().IntVar(&cameraPrecision, "precision", defaults.Precision, "coordinate decimal places")
	cameraCmd.Flags().IntVar(&cameraStep, "keyframe-step", defaults.KeyframeStep, "keep every Nth frame as a keyframe")
	cameraCmd.Flags().BoolVar(&cameraBlender, "blender-coords", false, "keep Blender Z-up coordinates instead of SuperSplat Y-up")
	cameraCmd.Flags().StringVarP(&cameraOutput, "output", "o", "camera_animation.json", "output JSON file")

	cameraCmd.MarkFlagsMutuallyExclusive("center", "model")
	cameraCmd.MarkFlagsMutuallyExclusive("target", "target-distance")
}

func runCamera(cmd *cobra.Command, args []string) error {
	p := camerapath.DefaultParams()
	p.Type = camerapath.PathType(cameraType)
	p.Direction = camerapath.Direction(cameraDirection)
	p.Radius = cameraRadius
	p.Frames = cameraFrames
	p.FPS = cameraFPS
	p.FocalLength = cameraFocal
	p.SensorWidth = cameraSensor
	p.StartRadius = cameraStartRad
	p.EndRadius = cameraEndRad
	p.StartHeight = cameraStartH
	p.EndHeight = cameraEndH
	p.Loops = cameraLoops
	p.Precision = cameraPrecision
	p.KeyframeStep = cameraStep
	p.ConvertCoords = !cameraBlender

	if cameraModel != "" {
		mesh, err := scene.LoadSTL(cameraModel)
		if err != nil {
			return fmt.Errorf("failed to load model: %w", err)
		}
		bbox := mesh.BoundingBox()
		p.Center = bbox.Center()
		if !cmd.Flags().Changed("radius") {
			p.Radius = bbox.Diagonal()
		}
	} else {
		center, err := parsePoint(cameraCenter)
		if err != nil {
			return err
		}
		p.Center = center
	}

	if cameraTarget != "" {
		target, err := parsePoint(cameraTarget)
		if err != nil {
			return err
		}
		p.Target = &target
	}
	if cmd.Flags().Changed("target-distance") {
		p.TargetDistance = &cameraTargetDist
	}

	animation, err := camerapath.Generate(p)
	if err != nil {
		return err
	}
	if err := animation.Save(cameraOutput); err != nil {
		return err
	}

	fmt.Printf("Wrote %s: %d frames, %d keyframes at %d fps\n",
		cameraOutput, p.Frames, len(animation.Poses), p.FPS)
	return nil
}

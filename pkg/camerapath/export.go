package camerapath

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Pose is a single camera keyframe in the SuperSplat camera format
type Pose struct {
	Frame       int        `json:"frame"`
	Time        float64    `json:"time"`
	Position    [3]float64 `json:"position"`
	Target      [3]float64 `json:"target"`
	FocalLength float64    `json:"focal_length"`
	FOV         float64    `json:"fov"`
	Name        string     `json:"name"`
}

// Animation is the top-level SuperSplat-compatible camera document
type Animation struct {
	CameraName          string     `json:"camera_name"`
	FrameRate           int        `json:"frame_rate"`
	FrameStart          int        `json:"frame_start"`
	FrameEnd            int        `json:"frame_end"`
	FrameStep           int        `json:"frame_step"`
	CoordinateSystem    string     `json:"coordinate_system"`
	TotalFrames         int        `json:"total_frames"`
	KeyframesGenerated  int        `json:"keyframes_generated"`
	KeyframeStep        int        `json:"keyframe_step"`
	AnimationType       string     `json:"animation_type"`
	Direction           string     `json:"direction"`
	ExportTimestamp     string     `json:"export_timestamp"`
	CoordinatePrecision int        `json:"coordinate_precision"`
	Center              [3]float64 `json:"center"`
	Poses               []Pose     `json:"poses"`

	TargetDistance *float64    `json:"target_distance,omitempty"`
	Target         *[3]float64 `json:"target,omitempty"`

	Radius *float64 `json:"radius,omitempty"`

	SpiralLoops *float64 `json:"spiral_loops,omitempty"`
	StartRadius *float64 `json:"start_radius,omitempty"`
	EndRadius   *float64 `json:"end_radius,omitempty"`
	StartHeight *float64 `json:"start_height,omitempty"`
	EndHeight   *float64 `json:"end_height,omitempty"`

	Generator string `json:"generator"`
}

func newAnimation(p Params, poses []Pose) *Animation {
	coordSystem := "BLENDER"
	if p.ConvertCoords {
		coordSystem = "SUPERSPLAT"
	}

	anim := &Animation{
		CameraName:          "Generated_Camera",
		FrameRate:           p.FPS,
		FrameStart:          1,
		FrameEnd:            p.Frames,
		FrameStep:           1,
		CoordinateSystem:    coordSystem,
		TotalFrames:         p.Frames,
		KeyframesGenerated:  len(poses),
		KeyframeStep:        p.KeyframeStep,
		AnimationType:       string(p.Type),
		Direction:           string(p.Direction),
		ExportTimestamp:     time.Now().Format(time.RFC3339),
		CoordinatePrecision: p.Precision,
		Center:              [3]float64{p.Center.X, p.Center.Y, p.Center.Z},
		Poses:               poses,
		Generator:           "goarea camera path generator",
	}

	if p.TargetDistance != nil {
		anim.TargetDistance = p.TargetDistance
	} else if p.Target != nil {
		anim.Target = &[3]float64{p.Target.X, p.Target.Y, p.Target.Z}
	}

	switch p.Type {
	case Circular:
		anim.Radius = &p.Radius
	case Spiral:
		anim.SpiralLoops = &p.Loops
		anim.StartRadius = &p.StartRadius
		anim.EndRadius = &p.EndRadius
		anim.StartHeight = &p.StartHeight
		anim.EndHeight = &p.EndHeight
	}

	return anim
}

// Save writes the animation as indented JSON, creating parent directories
// as needed
func (a *Animation) Save(path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal camera animation: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

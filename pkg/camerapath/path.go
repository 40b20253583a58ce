// Package camerapath generates orbit camera animations for splat viewers in
// the SuperSplat JSON camera format, without requiring Blender.
package camerapath

import (
	"fmt"
	"math"

	"github.com/philipparndt/goarea/pkg/geometry"
)

// PathType selects the camera trajectory
type PathType string

const (
	Circular PathType = "circular"
	Spiral   PathType = "spiral"
)

// Direction selects the orbit direction
type Direction string

const (
	Clockwise        Direction = "clockwise"
	CounterClockwise Direction = "counterclockwise"
)

// Params describes a camera animation to generate. DefaultParams provides
// the conventional starting values.
type Params struct {
	Type      PathType
	Direction Direction
	Center    geometry.Vector3

	// Target aims all frames at a fixed point. TargetDistance instead aims
	// each frame at a point that far along the camera-to-center direction.
	// With neither set, the center is the target.
	Target         *geometry.Vector3
	TargetDistance *float64

	// Circular
	Radius float64

	// Spiral
	StartRadius float64
	EndRadius   float64
	StartHeight float64
	EndHeight   float64
	Loops       float64

	Frames      int
	FPS         int
	FocalLength float64 // millimeters
	SensorWidth float64 // millimeters

	// ConvertCoords maps Blender Z-up output to SuperSplat Y-up
	ConvertCoords bool
	Precision     int
	KeyframeStep  int
}

// DefaultParams returns the conventional generation parameters
func DefaultParams() Params {
	return Params{
		Type:         Circular,
		Direction:    Clockwise,
		Radius:       10.0,
		StartRadius:  5.0,
		EndRadius:    15.0,
		StartHeight:  0.0,
		EndHeight:    10.0,
		Loops:        2.0,
		Frames:       180,
		FPS:          24,
		FocalLength:  35.0,
		SensorWidth:  32.0,
		Precision:    6,
		KeyframeStep: 1,
	}
}

// FocalLengthToFOV converts a focal length to the horizontal field of view
// in degrees for the given sensor width
func FocalLengthToFOV(focalLength, sensorWidth float64) float64 {
	return 2 * math.Atan(sensorWidth/(2*focalLength)) * 180 / math.Pi
}

// circularPath places frames on a circle of constant height around center
func circularPath(center geometry.Vector3, radius float64, frames int, dir Direction) []geometry.Vector3 {
	mult := directionMultiplier(dir)
	positions := make([]geometry.Vector3, 0, frames)
	for frame := 0; frame < frames; frame++ {
		angle := 2 * math.Pi * float64(frame) / float64(frames) * mult
		positions = append(positions, geometry.NewVector3(
			center.X+radius*math.Cos(angle),
			center.Y+radius*math.Sin(angle),
			center.Z,
		))
	}
	return positions
}

// spiralPath interpolates radius and height over the requested loops
func spiralPath(p Params) []geometry.Vector3 {
	mult := directionMultiplier(p.Direction)
	positions := make([]geometry.Vector3, 0, p.Frames)
	for frame := 0; frame < p.Frames; frame++ {
		t := 0.0
		if p.Frames > 1 {
			t = float64(frame) / float64(p.Frames-1)
		}
		angle := 2 * math.Pi * p.Loops * t * mult
		radius := p.StartRadius + (p.EndRadius-p.StartRadius)*t
		height := p.StartHeight + (p.EndHeight-p.StartHeight)*t

		positions = append(positions, geometry.NewVector3(
			p.Center.X+radius*math.Cos(angle),
			p.Center.Y+radius*math.Sin(angle),
			p.Center.Z+height,
		))
	}
	return positions
}

func directionMultiplier(dir Direction) float64 {
	if dir == Clockwise {
		return -1
	}
	return 1
}

// targetAtDistance places the look-at target the given distance from the
// camera along the direction toward center
func targetAtDistance(position, center geometry.Vector3, distance float64) geometry.Vector3 {
	toCenter := center.Sub(position)
	if toCenter.Length() == 0 {
		return center
	}
	return position.Add(toCenter.Normalize().Mul(distance))
}

// toSuperSplat converts Blender Z-up coordinates to SuperSplat Y-up:
// X stays, Y becomes -Z, Z becomes Y
func toSuperSplat(v geometry.Vector3) geometry.Vector3 {
	return geometry.NewVector3(v.X, v.Z, -v.Y)
}

func roundTo(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}

// Generate computes the camera animation for the given parameters
func Generate(p Params) (*Animation, error) {
	if p.Frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", p.Frames)
	}
	if p.FPS <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", p.FPS)
	}
	if p.KeyframeStep <= 0 {
		p.KeyframeStep = 1
	}

	var positions []geometry.Vector3
	switch p.Type {
	case Circular:
		positions = circularPath(p.Center, p.Radius, p.Frames, p.Direction)
	case Spiral:
		positions = spiralPath(p)
	default:
		return nil, fmt.Errorf("unknown animation type: %q", p.Type)
	}

	targets := make([]geometry.Vector3, len(positions))
	switch {
	case p.TargetDistance != nil:
		for i, pos := range positions {
			targets[i] = targetAtDistance(pos, p.Center, *p.TargetDistance)
		}
	case p.Target != nil:
		for i := range targets {
			targets[i] = *p.Target
		}
	default:
		for i := range targets {
			targets[i] = p.Center
		}
	}

	if p.ConvertCoords {
		for i := range positions {
			positions[i] = toSuperSplat(positions[i])
			targets[i] = toSuperSplat(targets[i])
		}
	}

	fov := roundTo(FocalLengthToFOV(p.FocalLength, p.SensorWidth), 2)

	poses := make([]Pose, 0, p.Frames/p.KeyframeStep+1)
	for i := range positions {
		// Keyframes on the step interval, plus the final frame
		if i%p.KeyframeStep != 0 && i != len(positions)-1 {
			continue
		}
		frame := i + 1 // SuperSplat expects 1-based frame numbers
		poses = append(poses, Pose{
			Frame:       frame,
			Time:        float64(frame) / float64(p.FPS),
			Position:    roundedCoords(positions[i], p.Precision),
			Target:      roundedCoords(targets[i], p.Precision),
			FocalLength: p.FocalLength,
			FOV:         fov,
			Name:        fmt.Sprintf("camera_frame_%04d", frame),
		})
	}

	return newAnimation(p, poses), nil
}

func roundedCoords(v geometry.Vector3, precision int) [3]float64 {
	return [3]float64{
		roundTo(v.X, precision),
		roundTo(v.Y, precision),
		roundTo(v.Z, precision),
	}
}

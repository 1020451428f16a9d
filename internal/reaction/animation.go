package reaction

import "fmt"

// Frame is one keyframe range of an animation, mapped to a single image.
type Frame struct {
	FrameStart uint16
	FrameEnd   uint16
	ImageID    string
}

// Animation is an ordered sequence of frames.
type Animation []Frame

// Validate enforces frame_start < frame_end and strictly increasing,
// non-overlapping frame_start values.
func (a Animation) Validate() error {
	var previousStart *uint16
	for i, frame := range a {
		if frame.ImageID == "" {
			return fmt.Errorf("animation frame %d: image id must not be empty", i)
		}
		if frame.FrameStart >= frame.FrameEnd {
			return fmt.Errorf("animation frame %d: frame_start (%d) must be less than frame_end (%d)", i, frame.FrameStart, frame.FrameEnd)
		}
		if previousStart != nil && frame.FrameStart <= *previousStart {
			return fmt.Errorf("animation frame %d: frame_start (%d) must strictly increase from the previous frame's (%d)", i, frame.FrameStart, *previousStart)
		}
		start := frame.FrameStart
		previousStart = &start
	}
	return nil
}

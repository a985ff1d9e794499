// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	"strconv"

	"github.com/danielhkuo/spinwheel/models"
)

// Segment is one visual slice of the wheel. Filler segments pad the wheel
// to a pleasing density; they carry a zero-weight, zero-quota prize and are
// tagged so they can never reach the selector's pool.
type Segment struct {
	Prize  models.Prize
	Filler bool
}

// BuildSegments lays out the wheel: all catalog prizes in their given
// order, followed by fillerCount filler slices. The prize order must match
// between client and server or the animation lands on the wrong slice.
func BuildSegments(prizes []models.Prize, fillerCount int, fillerName, fillerColor string) []Segment {
	segments := make([]Segment, 0, len(prizes)+fillerCount)
	for _, p := range prizes {
		segments = append(segments, Segment{Prize: p})
	}
	for i := 0; i < fillerCount; i++ {
		segments = append(segments, Segment{
			Prize: models.Prize{
				ID:    "filler-" + strconv.Itoa(i),
				Name:  fillerName,
				Color: fillerColor,
			},
			Filler: true,
		})
	}
	return segments
}

// SegmentIndex returns the slice index a spin should land on for prizeID,
// or -1 if the prize is not on the wheel.
func SegmentIndex(segments []Segment, prizeID string) int {
	for i, s := range segments {
		if !s.Filler && s.Prize.ID == prizeID {
			return i
		}
	}
	return -1
}

// Package pitch provides pitch sources: things that report, for a frame
// timestamp, the frequency the player is singing or that nobody is.
package pitch

import (
	"time"

	"github.com/vovakirdan/buzzy-bird/internal/core"
)

// Source yields the last-known pitch reading at a frame timestamp. Sample
// must not block.
type Source interface {
	Sample(now time.Duration) core.Pitch
}

// Fixed always reports the same reading.
type Fixed struct {
	Reading core.Pitch
}

// Constant returns a source that always sings hz.
func Constant(hz float64) Fixed {
	return Fixed{Reading: core.Hz(hz)}
}

// Silence returns a source that never detects a pitch.
func Silence() Fixed {
	return Fixed{}
}

// Sample implements Source.
func (f Fixed) Sample(time.Duration) core.Pitch {
	return f.Reading
}

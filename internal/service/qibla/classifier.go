package qibla

import (
	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
)

// Classify turns a target bearing and the current heading into a turn hint.
// AngleDegrees is the clockwise offset from heading to target, in [0,360).
// The tolerance comparison is strict: an angle exactly at the tolerance does
// not count as aligned.
func (c *CalculatorImpl) Classify(targetBearing, heading, toleranceDegrees float64) models.RelativeDirection {
	angle := normalize360(targetBearing - heading)

	if angle < toleranceDegrees || angle > 360-toleranceDegrees {
		return models.RelativeDirection{
			Aligned:      true,
			Turn:         models.TurnNone,
			AngleDegrees: angle,
		}
	}

	if angle <= 180 {
		return models.RelativeDirection{
			Turn:             models.TurnRight,
			AngleDegrees:     angle,
			MagnitudeDegrees: angle,
		}
	}

	return models.RelativeDirection{
		Turn:             models.TurnLeft,
		AngleDegrees:     angle,
		MagnitudeDegrees: 360 - angle,
	}
}

package parameter

import "time"

// Pointer interaction
const (
	// PointerRadius is the interaction radius in surface pixels, also the grid cell size
	PointerRadius = 100.0

	// PointerIdleTimeout clears the moving flag and velocity after the last sample
	PointerIdleTimeout = 100 * time.Millisecond

	// PointerMovingGain scales the radial push while the pointer is moving
	PointerMovingGain = 2.0

	// PointerStaticGain scales the radial push while the pointer is idle
	PointerStaticGain = 0.5

	// PointerVelocityBias is the fraction of pointer velocity added as drag force
	PointerVelocityBias = 0.2

	// PointerCrowdSize is the neighbour count above which force is divided down
	PointerCrowdSize = 20.0

	// PointerDirectionEpsilon is the distance below which the push direction is undefined
	PointerDirectionEpsilon = 1e-6
)

// Package explore draws exploration events from a zone's weighted table.
package explore

import (
	"math"

	"github.com/FredLuc12/MiniRPG/internal/engine"
	"github.com/FredLuc12/MiniRPG/internal/game"
)

// weightResolution is how many pool slots one unit of weight is worth.
const weightResolution = 10

// Pool expands the zone's event table into a flat draw pool. Each tag is
// repeated round(weight*10) times, so weights need not sum to one and tags
// with a weight below 0.05 never come up.
func Pool(zone game.Zone) []game.EventTag {
	var pool []game.EventTag
	for _, ev := range zone.Events {
		n := int(math.Round(ev.Weight * weightResolution))
		for i := 0; i < n; i++ {
			pool = append(pool, ev.Tag)
		}
	}
	return pool
}

// SampleEvent makes one uniform draw from the zone's pool. An empty pool
// yields EventNothing without touching the rng.
func SampleEvent(zone game.Zone, rng engine.RNG) game.EventTag {
	pool := Pool(zone)
	if len(pool) == 0 {
		return game.EventNothing
	}
	return pool[rng.Intn(len(pool))]
}

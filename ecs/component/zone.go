package component

import "github.com/milk9111/trilho/track"

// Zone is the immutable definition a zone entity was created from.
var ZoneComponent = NewComponent[track.Zone]()

// ZoneState is engine-owned runtime state for one zone. Only the tick writes
// it.
type ZoneState struct {
	Active bool
	// Changed is set on the tick Active flipped.
	Changed bool
	// Alpha is the last alpha applied to the zone's content.
	Alpha float64
}

var ZoneStateComponent = NewComponent[ZoneState]()

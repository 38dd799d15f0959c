package component

// Placement is the world coordinate computed for a zone's content.
type Placement struct {
	WorldX float64
	Valid  bool
}

var PlacementComponent = NewComponent[Placement]()

package component

import "github.com/milk9111/trilho/track"

// Content binds a zone to the handle its fades drive.
type Content struct {
	Key    string
	Handle track.Content
}

var ContentComponent = NewComponent[Content]()

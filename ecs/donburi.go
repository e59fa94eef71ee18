package ecs

import (
	"github.com/phanxgames/cairn"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventType carries cairn scene events into a Donburi world.
//
// A Scene forwards two kinds of event to its EntityStore: EventMarkerAdded,
// once per attached marker for each of the marker and annotation roots that
// contain it, and every collection change (point clouds, shapefiles,
// measurements, profiles, volumes, clip volumes, camera animations, image
// sets, geopackages). Visibility and description changes stay on the
// markers' own dispatchers and are not forwarded.
//
// Unlike the scene's own listeners, delivery here is queued: subscribers run
// when the system calls EventType.ProcessEvents.
var EventType = events.NewEventType[cairn.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore returns an EntityStore that publishes every forwarded scene
// event to EventType in world.
func NewDonburiStore(world donburi.World) cairn.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event cairn.Event) {
	EventType.Publish(s.world, event)
}

// SubscribeTypes subscribes fn to the queued scene events whose Type is one
// of types. With no types, fn receives every event.
func SubscribeTypes(world donburi.World, fn func(donburi.World, cairn.Event), types ...cairn.EventType) {
	if len(types) == 0 {
		EventType.Subscribe(world, fn)
		return
	}
	EventType.Subscribe(world, func(w donburi.World, e cairn.Event) {
		for _, t := range types {
			if e.Type == t {
				fn(w, e)
				return
			}
		}
	})
}

// Package ecs provides ECS adapters for interlinked.
package ecs

import (
	"github.com/willcook415/interlinked"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RegistryEventType is the Donburi event type for registry events.
// Subscribe to this in your ECS systems to receive station placement,
// deletion, and selection-change events.
var RegistryEventType = events.NewEventType[interlinked.RegistryEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Registry
// events are published to RegistryEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) interlinked.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event interlinked.RegistryEvent) {
	RegistryEventType.Publish(s.world, event)
}

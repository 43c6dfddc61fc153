package components

import (
	"homeclean-booking/internal/realtime"
	"homeclean-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		NewHub,
		func(h *realtime.Hub) commands.Notifier {
			return h
		},
	),
)

func NewHub(lc fx.Lifecycle) *realtime.Hub {
	hub := realtime.NewHub()
	lc.Append(fx.Hook{
		OnStart: hub.Start,
		OnStop:  hub.Stop,
	})
	return hub
}

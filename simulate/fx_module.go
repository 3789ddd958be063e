package simulate

import "go.uber.org/fx"

// FXModule provides the production RandomSource and Worker.
var FXModule = fx.Module("simulate",
	fx.Provide(
		NewRandomSource,
		fx.Annotate(
			NewTimerWorker,
			fx.As(new(Worker)),
		),
	),
)

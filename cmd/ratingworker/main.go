// Command ratingworker consumes review.changed push deliveries and rewrites
// each tour's rating statistics from its reviews.
package main

import (
	"context"
	"log/slog"
	"os"

	"tourbook/config"
	"tourbook/internal/delivery"
	"tourbook/internal/delivery/worker"
	"tourbook/internal/delivery/worker/handler"
	logs "tourbook/internal/infra/log"
	"tourbook/internal/infra/persistence/mongodb"
	"tourbook/internal/infra/pubsub"
	"tourbook/internal/usecase/impl"
	"tourbook/internal/util"

	"go.uber.org/fx"
)

type runParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(app()).Run()
}

func app() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			mongodb.New,
			util.NewValidator,
			// the worker consumes review events and must never emit its own
			pubsub.NewNoopPublisher,
		),
		fx.Provide(
			mongodb.NewTourRepository,
			mongodb.NewReviewRepository,
			mongodb.NewUserRepository,
			impl.NewReviewService,
			handler.NewPushHandler,
			fx.Annotate(worker.NewServer, fx.ResultTags(`group:"deliveries"`)),
		),
		fx.Invoke(run),
	)
}

// run starts every delivery once the graph is up. A delivery that dies
// takes the process down through the regular stop hooks.
func run(params runParams) {
	params.Append(fx.StartHook(func(ctx context.Context) {
		for _, d := range params.Deliveries {
			go func() {
				if err := d.Serve(context.WithoutCancel(ctx)); err != nil {
					params.Logger.Error("Delivery stopped", slog.Any("error", err))
					if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
						params.Logger.Error("Shutdown failed", slog.Any("error", shutdownErr))
						os.Exit(1)
					}
				}
			}()
		}
	}))
}

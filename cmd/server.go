package cmd

import (
	"context"
	"errors"
	"log"
	httpNet "net/http"
	"os"
	"os/signal"
	"syscall"

	"wealthflow/internal/delivery/http"
	"wealthflow/internal/repository"
	"wealthflow/internal/service"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// limiter sweep, sessions themselves expire in the cache
const janitorSchedule = "@every 10m"

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the WealthFlow web server",
	Run:   Start,
}

func Start(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx)
	if err != nil {
		log.Fatalf("Failed to create app dependency: %v", err)
	}

	repo, err := repository.NewRepository(ctx, appDep.cfg, appDep.log)
	if err != nil {
		log.Fatalf("Failed to create repository: %v", err)
	}

	services := service.NewService(
		appDep.cfg,
		appDep.log,
		repo,
		appDep.cache,
	)
	httpHandler := http.NewHttpAPIHandler(
		ctx,
		appDep.cfg,
		appDep.log,
		appDep.echo,
		appDep.validator,
		services,
		repo.ContentRepo,
	)

	if err := services.Janitor.Start(janitorSchedule); err != nil {
		log.Fatalf("Failed to start janitor: %v", err)
	}

	apiServer := NewHTTPServer(ctx, appDep, httpHandler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := apiServer.Start(); err != nil && !errors.Is(err, httpNet.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// Wait for shutdown signal or a failed listener
		<-gctx.Done()
		log.Println("Shutting down gracefully...")

		// closing the feed ends open quote streams so Shutdown does not wait on them
		services.MarketService.Close()
		services.Janitor.Stop()
		return apiServer.Stop()
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	if err := appDep.Close(); err != nil {
		log.Fatalf("Failed to close app dependency: %v", err)
	}
}

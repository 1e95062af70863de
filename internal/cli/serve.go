package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booking-service/internal/clients"
	intconfig "booking-service/internal/config"
	intdb "booking-service/internal/db"
	router "booking-service/internal/http"
	"booking-service/internal/repositories"
	"booking-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnv()
			if err != nil {
				return err
			}
			if addr != "" {
				env.AppAddr = addr
			}
			return serve(cmd.Context(), env)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides APP_ADDR)")
	return cmd
}

func serve(ctx context.Context, env intconfig.Env) error {
	switch {
	case env.GinMode != "":
		gin.SetMode(env.GinMode)
	case !env.IsDevelopment():
		gin.SetMode(gin.ReleaseMode)
	}

	log.Println("[BOOT] starting booking server")
	db, err := intconfig.ConnectDB(ctx, env)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := intdb.EnsureBookingTable(ctx, db, env.DBTable); err != nil {
		return err
	}

	repo := repositories.NewBookingRepository(db, env.DBTable)
	timeslots := clients.NewTimeslotClient(env.TimeslotServiceURL, env.TimeslotTimeout)
	svc := services.NewBookingService(repo, timeslots)

	r := router.NewRouter(env, router.Deps{
		Bookings: svc,
		Verifier: clients.NewAuthClient(env.AuthServiceURL, env.AuthTimeout),
		DB:       db,
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[BOOT] booking server running on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-quit:
	}

	log.Println("[BOOT] shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Println("[BOOT] server stopped")
	return nil
}

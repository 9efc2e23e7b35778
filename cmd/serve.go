package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"horactl/pkg/api"
	"horactl/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const defaultAddr = ":8080"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the parsed timetable over a read-only JSON API",
	Long: `Parse the timetable once and serve it under /api:

  GET /api/professors
  GET /api/professors/:name
  GET /api/professors/:name/now
  GET /api/rooms
  GET /api/entries
  GET /api/search?day=&date=&period=&professor=&room=`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			if cfg, err := config.LoadWithEnv(); err == nil && cfg.ListenAddress != "" {
				addr = cfg.ListenAddress
			} else {
				addr = defaultAddr
			}
		}

		sched, err := loadSchedule()
		if err != nil {
			return err
		}

		if !verboseFlag {
			gin.SetMode(gin.ReleaseMode)
		}
		srv := &http.Server{
			Addr:              addr,
			Handler:           api.NewServer(sched, nil).Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			errc <- srv.ListenAndServe()
		}()
		fmt.Printf("Serving %d professors on %s\n", len(sched.Index), addr)

		select {
		case err := <-errc:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Listen address (default \""+defaultAddr+"\", or HORACTL_ADDR)")
}

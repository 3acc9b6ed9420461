package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hoopvision/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the appearance engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := &http.Server{
			Addr:              serveAddr,
			Handler:           server.New(analyzer, cat, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			<-cmd.Context().Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("shutdown incomplete", zap.Error(err))
			}
		}()

		logger.Info("listening", zap.String("addr", serveAddr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

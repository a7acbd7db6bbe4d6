package cli

import (
	"github.com/spf13/cobra"

	"fedboard/internal/app"
	"fedboard/internal/logger"
	transport "fedboard/internal/transport/http"
)

func newServeCmd(a *app.App) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only query API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.Cfg.App.HTTPAddr
			}
			srv, err := transport.NewServer(transport.ServerConfig{
				Addr:     addr,
				Store:    a.Store,
				Registry: a.Registry,
				Config:   a.Cfg,
			})
			if err != nil {
				return err
			}
			logger.Infof("HTTP 服务监听 %s", addr)
			return srv.Start(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

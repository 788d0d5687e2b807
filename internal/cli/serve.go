package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/tagtrend/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analytics as an HTTP API",
	Long: `Serve loads the corpus once, builds the index and exposes the query
operations as JSON endpoints under /api/v1:

  GET /api/v1/top?year=2023&n=10
  GET /api/v1/stats?tag=hatsune_miku
  GET /api/v1/ship?char1=...&char2=...
  GET /api/v1/drivers?year=2023&tag=maid
  GET /api/v1/compare?char1=...&char2=...
  GET /healthz

Example:
  tagtrend serve --dataset metadata.jsonl.gz --addr :8090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Listening on %s\n", cfg.Server.Addr)
	return server.New(engine, cfg.Server).ListenAndServe(ctx)
}

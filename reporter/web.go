package reporter

import (
	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/CryptoStatsReporter/helpers"
	"gitlab.com/aoterocom/CryptoStatsReporter/server"
	"os"
)

type Web struct {
}

// Run serves the stats endpoint until the process is stopped.
func (w *Web) Run(c *cli.Context) error {
	exchangeService := selectExchangeService(c)

	statsHandler := server.NewStatsHandler(exchangeService)
	router := server.NewRouter(statsHandler)

	addr := os.Getenv("listenAddr")
	if addr == "" {
		addr = ":8080"
	}

	helpers.Logger.Infoln("🌐 Stats server listening on " + addr)
	return router.Run(addr)
}

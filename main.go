package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/CryptoStatsReporter/reporter"
	"os"
)

func main() {
	reportFlags := []cli.Flag{
		&cli.StringFlag{Name: "pairs", Usage: "comma separated pair list, e.g. BTCEUR,ETHEUR"},
		&cli.StringFlag{Name: "periods", Usage: "comma separated lookback lengths in days"},
		&cli.StringFlag{Name: "aggregate", Usage: "price aggregation: close, open, avg or ohlc4"},
		&cli.StringFlag{Name: "output", Usage: "path of the xlsx file to write"},
		&cli.BoolFlag{Name: "paper", Usage: "use the offline paper provider"},
	}

	app := &cli.App{
		Name:  "CryptoStatsReporter",
		Usage: "historical price-change statistics for crypto pairs",
		Commands: []*cli.Command{
			{
				Name:  "report",
				Usage: "compute a one-shot report",
				Flags: reportFlags,
				Action: func(c *cli.Context) error {
					r := reporter.Reporter{}
					return r.Run(c)
				},
			},
			{
				Name:  "serve",
				Usage: "serve the stats HTTP endpoint",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "paper", Usage: "use the offline paper provider"},
				},
				Action: func(c *cli.Context) error {
					w := reporter.Web{}
					return w.Run(c)
				},
			},
			{
				Name:  "schedule",
				Usage: "run the report on a timer",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "every", Usage: "interval between reports, e.g. 24h or 1d12h"},
				}, reportFlags...),
				Action: func(c *cli.Context) error {
					s := reporter.Scheduler{}
					return s.Run(c)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

package reporter

import (
	"fmt"
	"github.com/urfave/cli/v2"
	str2duration "github.com/xhit/go-str2duration/v2"
	"gitlab.com/aoterocom/CryptoStatsReporter/helpers"
	"os"
	"time"
)

type Scheduler struct {
}

// Run triggers a report on a fixed interval, e.g. "24h" or "1d12h".
func (s *Scheduler) Run(c *cli.Context) error {
	every := c.String("every")
	if every == "" {
		every = os.Getenv("scheduleEvery")
	}
	if every == "" {
		every = "24h"
	}

	tick, err := str2duration.ParseDuration(every)
	if err != nil {
		return fmt.Errorf("error: invalid schedule interval %q: %w", every, err)
	}

	helpers.Logger.Infoln(fmt.Sprintf("⏱ Report scheduled every %s", tick))

	reporter := &Reporter{}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		if err := reporter.Run(c); err != nil {
			helpers.Logger.Errorln(err.Error())
		}
		<-ticker.C
	}
}

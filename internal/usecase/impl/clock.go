package impl

import (
	"time"

	"marketplace/config"
	"marketplace/internal/util"
)

// clock stamps records with the configured local date and time.
type clock struct {
	loc *time.Location
	now func() time.Time
}

func newClock(cfg *config.Config) (clock, error) {
	name := ""
	if cfg != nil {
		name = cfg.Env.TimeZone
	}

	loc, err := util.LoadLocation(name)
	if err != nil {
		return clock{}, err
	}

	return clock{loc: loc, now: time.Now}, nil
}

// stamp returns the current date (YYYY-MM-DD) and time (HH:mm:ss).
func (c clock) stamp() (string, string) {
	return util.PublishStamp(c.now(), c.loc)
}

package configs

import (
	"fmt"
	"time"
)

// Campaign holds the business rules that vary per deployment.
type Campaign struct {
	// MonthlyLimit caps how many campaigns one advertiser may create per
	// calendar month.
	MonthlyLimit int `env:"MONTHLY_LIMIT" envDefault:"10"`
	// TimeZone decides when "today" and a calendar month begin.
	TimeZone string `env:"TIMEZONE" envDefault:"Asia/Seoul"`
}

// Location resolves TimeZone.
func (c Campaign) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("campaign time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

package validation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
)

// Application validates the influencer-controlled fields of an apply
// request. The visit date may not precede today; its upper bound depends
// on the campaign and is checked by the caller.
func Application(in domain.ApplicationInput, today time.Time) (motivation string, visit time.Time, err error) {
	f := Fields{}
	if in.CampaignID == uuid.Nil {
		f.Check("campaignId", errors.New("is required"))
	}
	f.Check("motivation", StringLength(in.Motivation, MinMotivation, MaxMotivation))
	visit, visitErr := ParseDate(in.VisitDate)
	f.Check("visitDate", visitErr)
	if visitErr == nil {
		f.Check("visitDate", NotBefore(visit, today))
	}
	if err = f.Err(); err != nil {
		return "", time.Time{}, err
	}
	return strings.TrimSpace(in.Motivation), visit, nil
}

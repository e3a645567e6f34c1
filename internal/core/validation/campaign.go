package validation

import (
	"strings"

	"campaign-hub/internal/core/domain"
)

// Length bounds for campaign and application text fields.
const (
	MaxTitle       = 100
	MaxDescription = 2000
	MaxMission     = 1000
	MaxBenefits    = 1000
	MaxLocation    = 255

	MinMotivation = 10
	MaxMotivation = 1000

	MaxTerminationReason = 500
)

// Campaign validates a create or update payload and returns the typed
// field set. Create and update share this single rule set.
func Campaign(in domain.CampaignInput) (domain.CampaignFields, error) {
	f := Fields{}
	f.Check("title", StringLength(in.Title, 1, MaxTitle))
	f.Check("description", StringLength(in.Description, 1, MaxDescription))
	f.Check("mission", StringLength(in.Mission, 1, MaxMission))
	f.Check("benefits", StringLength(in.Benefits, 1, MaxBenefits))
	f.Check("location", StringLength(in.Location, 1, MaxLocation))
	f.Check("recruitmentCount", RecruitmentCount(in.RecruitmentCount))

	start, startErr := ParseDate(in.StartDate)
	f.Check("startDate", startErr)
	end, endErr := ParseDate(in.EndDate)
	f.Check("endDate", endErr)
	if startErr == nil && endErr == nil {
		f.Check("endDate", DateOrder(start, end))
	}

	if err := f.Err(); err != nil {
		return domain.CampaignFields{}, err
	}
	return domain.CampaignFields{
		Title:            strings.TrimSpace(in.Title),
		Description:      strings.TrimSpace(in.Description),
		Mission:          strings.TrimSpace(in.Mission),
		Benefits:         strings.TrimSpace(in.Benefits),
		Location:         strings.TrimSpace(in.Location),
		RecruitmentCount: in.RecruitmentCount,
		StartDate:        start,
		EndDate:          end,
	}, nil
}

// TerminationReason validates the optional early-termination reason.
func TerminationReason(reason string) error {
	f := Fields{}
	f.Check("reason", StringLength(reason, 0, MaxTerminationReason))
	return f.Err()
}

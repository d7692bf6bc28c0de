package domain

// Maximum stored lengths for free-form attribution fields.
const (
	MaxSourceLen      = 100
	MaxSubsourceLen   = 100
	MaxCampaignTagLen = 100
	MaxReferrerLen    = 255
	MaxLandingPageLen = 255
	MaxUserAgentLen   = 255
)

// Attribution carries the free-form marketing fields attached to events and
// appended to outbound redirect URLs.
type Attribution struct {
	Source      string
	Subsource   string
	CampaignTag string
	Referrer    string
	LandingPage string
}

// Truncate bounds every field to its maximum stored length.
func (a Attribution) Truncate() Attribution {
	a.Source = truncate(a.Source, MaxSourceLen)
	a.Subsource = truncate(a.Subsource, MaxSubsourceLen)
	a.CampaignTag = truncate(a.CampaignTag, MaxCampaignTagLen)
	a.Referrer = truncate(a.Referrer, MaxReferrerLen)
	a.LandingPage = truncate(a.LandingPage, MaxLandingPageLen)
	return a
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

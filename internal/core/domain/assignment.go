package domain

// PropertyAssignment links a campaign to a property with per-property
// serving settings. VisibilityPercentage is always within [0,100]; caps are
// optional per-day ceilings counted in the property's local calendar day.
type PropertyAssignment struct {
	CampaignID           int64
	PropertyCode         string
	VisibilityPercentage int
	Active               bool
	DailyImpressionCap   *int
	DailyClickCap        *int
}

// ClampVisibility forces VisibilityPercentage into [0,100].
func (a *PropertyAssignment) ClampVisibility() {
	if a.VisibilityPercentage < 0 {
		a.VisibilityPercentage = 0
	}
	if a.VisibilityPercentage > 100 {
		a.VisibilityPercentage = 100
	}
}

package domain

// Property is a content property (site) campaigns are served on.
// FeaturedCampaignID is a weak reference: selection ignores it unless it
// resolves to an active, assigned campaign.
type Property struct {
	Code               string
	Name               string
	Domain             string
	PopupEnabled       bool
	PopupFrequency     string
	PopupPlacement     string
	FeaturedCampaignID *int64
}

package configs

// Ads holds serving behaviour knobs. ClickRevenueEstimate is the assumed
// revenue attributed to a click when the caller supplies none; it feeds the
// RPM ranking over time.
type Ads struct {
	ClickRevenueEstimate float64 `env:"CLICK_REVENUE_ESTIMATE" envDefault:"0.45"`
	// ProxyRequestsPerMinute throttles the public image proxy route.
	ProxyRequestsPerMinute int `env:"PROXY_RPM" envDefault:"120"`
}

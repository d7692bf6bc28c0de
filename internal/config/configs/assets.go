package configs

import "time"

// Assets configures the on-disk creative cache, the shared image proxy and
// the font sources used by the renderer. The proxy URL is tried before a
// direct fetch; leave it empty to always fetch directly. Font URLs are only
// hit once, when the font files are absent from FontDir.
type Assets struct {
	// CacheDir is where fetched creative bytes are stored, keyed by a hash
	// of the normalized source URL.
	CacheDir string `env:"CACHE_DIR" envDefault:".cache/images"`
	// FontDir is the local font asset directory.
	FontDir string `env:"FONT_DIR" envDefault:"assets/fonts"`
	// ProxyURL is a shared internal caching endpoint tried before direct
	// fetches. The target URL is appended as a u= query parameter.
	ProxyURL string `env:"PROXY_URL"`
	// FetchTimeout bounds each remote fetch attempt.
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"5s"`
	// FetchRetries is the number of attempts per fetch on 429/5xx.
	FetchRetries int `env:"FETCH_RETRIES" envDefault:"3"`
	// BoldFontURL and RegularFontURL are downloaded once when the preferred
	// typeface is missing from FontDir.
	BoldFontURL    string `env:"BOLD_FONT_URL" envDefault:"https://rsms.me/inter/font-files/Inter-Bold.otf"`
	RegularFontURL string `env:"REGULAR_FONT_URL" envDefault:"https://rsms.me/inter/font-files/Inter-Regular.otf"`
}

package imgcache

import "strings"

// NormalizeURL rewrites known problematic image-host URL patterns before
// fetching. Imgur page and gallery links are rewritten to the direct-file
// host, defaulting the extension to .jpg when absent (imgur serves the
// correct type regardless of the suffix).
func NormalizeURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}
	if strings.Contains(u, "imgur.com/") && !strings.HasPrefix(u, "https://i.imgur.com/") {
		_, tail, _ := strings.Cut(u, "imgur.com/")
		tail = strings.TrimPrefix(tail, "gallery/")
		if !hasImageExtension(tail) {
			tail = strings.TrimSuffix(tail, "/") + ".jpg"
		}
		u = "https://i.imgur.com/" + tail
	}
	return u
}

func hasImageExtension(path string) bool {
	tail := path
	if len(tail) > 5 {
		tail = tail[len(tail)-5:]
	}
	return strings.Contains(tail, ".")
}

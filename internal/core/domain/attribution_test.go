package domain

import (
	"strings"
	"testing"
)

func TestAttributionTruncate(t *testing.T) {
	a := Attribution{
		Source:      strings.Repeat("s", 500),
		Subsource:   "sendgrid",
		CampaignTag: strings.Repeat("t", 101),
		Referrer:    strings.Repeat("r", 256),
		LandingPage: strings.Repeat("l", 255),
	}
	got := a.Truncate()

	if len(got.Source) != MaxSourceLen {
		t.Fatalf("source length %d, want %d", len(got.Source), MaxSourceLen)
	}
	if got.Subsource != "sendgrid" {
		t.Fatalf("short field modified: %q", got.Subsource)
	}
	if len(got.CampaignTag) != MaxCampaignTagLen {
		t.Fatalf("campaign tag length %d, want %d", len(got.CampaignTag), MaxCampaignTagLen)
	}
	if len(got.Referrer) != MaxReferrerLen || len(got.LandingPage) != MaxLandingPageLen {
		t.Fatalf("url fields not bounded: %d, %d", len(got.Referrer), len(got.LandingPage))
	}
	// The receiver is a value; the original must be untouched.
	if len(a.Source) != 500 {
		t.Fatalf("original mutated")
	}
}

func TestClampVisibility(t *testing.T) {
	cases := []struct{ in, want int }{
		{-10, 0}, {0, 0}, {55, 55}, {100, 100}, {180, 100},
	}
	for _, c := range cases {
		a := PropertyAssignment{VisibilityPercentage: c.in}
		a.ClampVisibility()
		if a.VisibilityPercentage != c.want {
			t.Fatalf("clamp(%d) = %d, want %d", c.in, a.VisibilityPercentage, c.want)
		}
	}
}

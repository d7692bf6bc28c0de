package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"slices"
	"time"

	"popup-ads/internal/core/domain"
	"popup-ads/internal/core/port"
)

// Campaign caps are counted against the property's local calendar day in this
// fixed zone regardless of server zone. The fixed-offset fallback only
// matters on hosts with no tzdata at all.
var easternTime = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.FixedZone("EST", -5*60*60)
	}
	return loc
}()

// AdSelector implements port.AdSelector: pure decision logic over current
// store state. The visibility sampling draw is the only nondeterminism and
// enters through the Sampler port.
type AdSelector struct {
	store   port.CampaignStore
	sampler port.Sampler
	now     func() time.Time
}

// NewAdSelector creates a selector backed by the given store and sampler.
func NewAdSelector(store port.CampaignStore, sampler port.Sampler) *AdSelector {
	return &AdSelector{store: store, sampler: sampler, now: time.Now}
}

// Select returns the one campaign to display for a property. In interactive
// mode the first element of the ordered candidate list wins; in email-send
// mode the index is derived from the send identifier so repeated renders of
// one URL return one stable creative.
func (s *AdSelector) Select(ctx context.Context, propertyCode string, mode port.Mode, key string) (*domain.Campaign, error) {
	prop, err := s.store.Property(ctx, propertyCode)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, port.ErrInvalidProperty
	}

	candidates, err := s.eligible(ctx, prop, mode, key)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, port.ErrNoCampaign
	}

	orderCandidates(candidates, prop.FeaturedCampaignID)

	if mode == port.ModeEmailSend && key != "" {
		idx := stableIndex(key, len(candidates))
		return &candidates[idx].Campaign, nil
	}
	return &candidates[0].Campaign, nil
}

// Eligible returns the full ordered candidate list for interactive display,
// with caps and visibility sampling already applied.
func (s *AdSelector) Eligible(ctx context.Context, propertyCode, sessionID string) ([]port.Candidate, error) {
	prop, err := s.store.Property(ctx, propertyCode)
	if err != nil {
		return nil, err
	}
	if prop == nil {
		return nil, port.ErrInvalidProperty
	}
	candidates, err := s.eligible(ctx, prop, port.ModeInteractive, sessionID)
	if err != nil {
		return nil, err
	}
	orderCandidates(candidates, prop.FeaturedCampaignID)
	return candidates, nil
}

// eligible filters active candidates by daily caps (both modes) and by
// visibility sampling (interactive only; email-send keeps every assigned,
// capped-eligible campaign in rotation for determinism).
func (s *AdSelector) eligible(ctx context.Context, prop *domain.Property, mode port.Mode, key string) ([]port.Candidate, error) {
	candidates, err := s.store.ActiveCampaigns(ctx, prop.Code)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := dayWindow(s.now())

	kept := candidates[:0]
	for _, cand := range candidates {
		if cand.Assignment.DailyImpressionCap != nil || cand.Assignment.DailyClickCap != nil {
			counts, err := s.store.EventCounts(ctx, cand.Campaign.ID, prop.Code, dayStart, dayEnd)
			if err != nil {
				return nil, err
			}
			if cap := cand.Assignment.DailyImpressionCap; cap != nil && counts.Impressions >= int64(*cap) {
				continue
			}
			if cap := cand.Assignment.DailyClickCap; cap != nil && counts.Clicks >= int64(*cap) {
				continue
			}
		}
		if mode == port.ModeInteractive && cand.Assignment.VisibilityPercentage < 100 {
			if !s.sampler.Include(key, cand.Campaign.ID, prop.Code, cand.Assignment.VisibilityPercentage) {
				continue
			}
		}
		kept = append(kept, cand)
	}
	return kept, nil
}

// orderCandidates sorts featured first, then by descending RPM, ties broken
// by most-recently-created campaign.
func orderCandidates(candidates []port.Candidate, featuredID *int64) {
	slices.SortStableFunc(candidates, func(a, b port.Candidate) int {
		if featuredID != nil {
			af, bf := a.Campaign.ID == *featuredID, b.Campaign.ID == *featuredID
			if af != bf {
				if af {
					return -1
				}
				return 1
			}
		}
		if a.RPM != b.RPM {
			if a.RPM > b.RPM {
				return -1
			}
			return 1
		}
		if a.Campaign.CreatedAt.After(b.Campaign.CreatedAt) {
			return -1
		}
		if b.Campaign.CreatedAt.After(a.Campaign.CreatedAt) {
			return 1
		}
		return 0
	})
}

// stableIndex maps a send identifier onto a rotation index. The digest
// prefix is platform-independent, so the same key picks the same slot on
// every host.
func stableIndex(key string, n int) int {
	sum := sha256.Sum256([]byte(key))
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}

// dayWindow returns the current America/New_York calendar day as a
// half-open [start, end) interval.
func dayWindow(now time.Time) (time.Time, time.Time) {
	local := now.In(easternTime)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, easternTime)
	return start, start.AddDate(0, 0, 1)
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"popup-ads/internal/core/domain"
	"popup-ads/internal/core/port"
	"popup-ads/internal/core/port/mocks"
)

func candidate(id int64, rpm float64, visibility int) port.Candidate {
	return port.Candidate{
		Campaign: domain.Campaign{
			ID:          id,
			Name:        "c",
			TrackingURL: "https://t.example/x",
			Active:      true,
			CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
		},
		Assignment: domain.PropertyAssignment{
			CampaignID:           id,
			PropertyCode:         "mff",
			VisibilityPercentage: visibility,
			Active:               true,
		},
		RPM: rpm,
	}
}

// TestEmailSendDeterminism ensures one send identifier always resolves to the
// same campaign while the candidate set is unchanged.
func TestEmailSendDeterminism(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)

	store.EXPECT().
		Property(mock.Anything, "mff").
		Return(&domain.Property{Code: "mff"}, nil)
	store.EXPECT().
		ActiveCampaigns(mock.Anything, "mff").
		Return([]port.Candidate{
			candidate(1, 3, 100),
			candidate(2, 5, 100),
			candidate(3, 1, 100),
		}, nil)

	svc := NewAdSelector(store, KeyedSampler{})

	first, err := svc.Select(context.Background(), "mff", port.ModeEmailSend, "send-42")
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	for i := 0; i < 50; i++ {
		again, err := svc.Select(context.Background(), "mff", port.ModeEmailSend, "send-42")
		if err != nil {
			t.Fatalf("Select error on repeat: %v", err)
		}
		if again.ID != first.ID {
			t.Fatalf("selection flipped: first %d, then %d", first.ID, again.ID)
		}
	}
}

// TestFeaturedOverride ensures the property's featured campaign wins over any
// RPM ranking in interactive mode.
func TestFeaturedOverride(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)

	featuredID := int64(3)
	store.EXPECT().
		Property(mock.Anything, "mff").
		Return(&domain.Property{Code: "mff", FeaturedCampaignID: &featuredID}, nil)
	store.EXPECT().
		ActiveCampaigns(mock.Anything, "mff").
		Return([]port.Candidate{
			candidate(1, 9, 100),
			candidate(2, 7, 100),
			candidate(3, 0.1, 100),
		}, nil)

	svc := NewAdSelector(store, KeyedSampler{})

	got, err := svc.Select(context.Background(), "mff", port.ModeInteractive, "")
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if got.ID != featuredID {
		t.Fatalf("expected featured campaign %d, got %d", featuredID, got.ID)
	}
}

// TestRPMOrdering ensures non-featured candidates order by descending RPM.
func TestRPMOrdering(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)

	store.EXPECT().
		Property(mock.Anything, "mmm").
		Return(&domain.Property{Code: "mmm"}, nil)
	store.EXPECT().
		ActiveCampaigns(mock.Anything, "mmm").
		Return([]port.Candidate{
			candidate(1, 5, 100),
			candidate(2, 2, 100),
			candidate(3, 8, 100),
		}, nil)

	svc := NewAdSelector(store, KeyedSampler{})

	got, err := svc.Eligible(context.Background(), "mmm", "")
	if err != nil {
		t.Fatalf("Eligible error: %v", err)
	}
	want := []int64{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %d candidates, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].Campaign.ID != id {
			t.Fatalf("position %d: expected campaign %d, got %d", i, id, got[i].Campaign.ID)
		}
	}
}

// TestDailyCapExcludes ensures a campaign at its daily impression cap drops
// out of selection for the rest of the New York day.
func TestDailyCapExcludes(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)

	cap := 10
	capped := candidate(1, 9, 100)
	capped.Assignment.DailyImpressionCap = &cap

	store.EXPECT().
		Property(mock.Anything, "mff").
		Return(&domain.Property{Code: "mff"}, nil)
	store.EXPECT().
		ActiveCampaigns(mock.Anything, "mff").
		Return([]port.Candidate{capped, candidate(2, 1, 100)}, nil)
	store.EXPECT().
		EventCounts(mock.Anything, int64(1), "mff", mock.Anything, mock.Anything).
		Return(port.EventCounts{Impressions: 10}, nil)

	svc := NewAdSelector(store, KeyedSampler{})

	got, err := svc.Select(context.Background(), "mff", port.ModeInteractive, "")
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if got.ID != 2 {
		t.Fatalf("expected capped campaign excluded, got %d", got.ID)
	}
}

// TestDailyClickCapExcludes ensures the click cap is enforced the same way
// the impression cap is.
func TestDailyClickCapExcludes(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)

	cap := 5
	capped := candidate(1, 9, 100)
	capped.Assignment.DailyClickCap = &cap

	store.EXPECT().
		Property(mock.Anything, "mff").
		Return(&domain.Property{Code: "mff"}, nil)
	store.EXPECT().
		ActiveCampaigns(mock.Anything, "mff").
		Return([]port.Candidate{capped, candidate(2, 1, 100)}, nil)
	store.EXPECT().
		EventCounts(mock.Anything, int64(1), "mff", mock.Anything, mock.Anything).
		Return(port.EventCounts{Clicks: 5}, nil)

	svc := NewAdSelector(store, KeyedSampler{})

	got, err := svc.Select(context.Background(), "mff", port.ModeInteractive, "")
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if got.ID != 2 {
		t.Fatalf("expected click-capped campaign excluded, got %d", got.ID)
	}
}

// TestVisibilityExtremes ensures 0%% visibility never serves and 100%% always
// stays eligible across many sampled sessions.
func TestVisibilityExtremes(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)

	store.EXPECT().
		Property(mock.Anything, "mff").
		Return(&domain.Property{Code: "mff"}, nil)
	store.EXPECT().
		ActiveCampaigns(mock.Anything, "mff").
		Return([]port.Candidate{
			candidate(1, 9, 0),
			candidate(2, 1, 100),
		}, nil)

	svc := NewAdSelector(store, KeyedSampler{})

	for i := 0; i < 1000; i++ {
		got, err := svc.Select(context.Background(), "mff", port.ModeInteractive, "")
		if err != nil {
			t.Fatalf("Select error: %v", err)
		}
		if got.ID == 1 {
			t.Fatalf("0%% visibility campaign was served on draw %d", i)
		}
		if got.ID != 2 {
			t.Fatalf("100%% visibility campaign missing on draw %d", i)
		}
	}
}

// TestEmailIgnoresVisibility ensures email-send mode keeps partially visible
// campaigns in rotation so every send URL stays resolvable.
func TestEmailIgnoresVisibility(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	sampler := mocks.NewMockSampler(t)

	store.EXPECT().
		Property(mock.Anything, "mff").
		Return(&domain.Property{Code: "mff"}, nil)
	store.EXPECT().
		ActiveCampaigns(mock.Anything, "mff").
		Return([]port.Candidate{candidate(1, 9, 5)}, nil)

	svc := NewAdSelector(store, sampler)

	got, err := svc.Select(context.Background(), "mff", port.ModeEmailSend, "send-1")
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("expected campaign 1, got %d", got.ID)
	}
	sampler.AssertNotCalled(t, "Include")
}

// TestUnknownProperty ensures unknown property codes are rejected instead of
// falling back to a default property.
func TestUnknownProperty(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)

	store.EXPECT().
		Property(mock.Anything, "nope").
		Return(nil, nil)

	svc := NewAdSelector(store, KeyedSampler{})

	_, err := svc.Select(context.Background(), "nope", port.ModeInteractive, "")
	if !errors.Is(err, port.ErrInvalidProperty) {
		t.Fatalf("expected ErrInvalidProperty, got %v", err)
	}
}

// TestNoCandidates maps an empty candidate set to ErrNoCampaign.
func TestNoCandidates(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)

	store.EXPECT().
		Property(mock.Anything, "mff").
		Return(&domain.Property{Code: "mff"}, nil)
	store.EXPECT().
		ActiveCampaigns(mock.Anything, "mff").
		Return(nil, nil)

	svc := NewAdSelector(store, KeyedSampler{})

	_, err := svc.Select(context.Background(), "mff", port.ModeEmailSend, "send-1")
	if !errors.Is(err, port.ErrNoCampaign) {
		t.Fatalf("expected ErrNoCampaign, got %v", err)
	}
}

// TestDayWindow pins the cap window to the America/New_York calendar day.
func TestDayWindow(t *testing.T) {
	// 2025-06-15 01:30 UTC is still 2025-06-14 in New York (EDT, UTC-4).
	now := time.Date(2025, 6, 15, 1, 30, 0, 0, time.UTC)
	start, end := dayWindow(now)

	wantStart := time.Date(2025, 6, 14, 0, 0, 0, 0, easternTime)
	if !start.Equal(wantStart) {
		t.Fatalf("window start: got %v, want %v", start, wantStart)
	}
	if !end.Equal(wantStart.AddDate(0, 0, 1)) {
		t.Fatalf("window end: got %v, want %v", end, wantStart.AddDate(0, 0, 1))
	}
	if !start.Before(now) || !end.After(now) {
		t.Fatalf("window [%v, %v) does not contain %v", start, end, now)
	}
}

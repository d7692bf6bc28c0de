package usecase

import (
	"fmt"
	"testing"
)

// TestSamplerDeterministic ensures a keyed draw is stable across calls.
func TestSamplerDeterministic(t *testing.T) {
	s := KeyedSampler{}
	first := s.Include("session-7", 12, "mff", 40)
	for i := 0; i < 100; i++ {
		if s.Include("session-7", 12, "mff", 40) != first {
			t.Fatalf("keyed draw changed between calls")
		}
	}
}

// TestSamplerExtremes pins the 0 and 100 percent shortcuts.
func TestSamplerExtremes(t *testing.T) {
	s := KeyedSampler{}
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("k%d", i)
		if !s.Include(key, 1, "mff", 100) {
			t.Fatalf("100%% excluded key %q", key)
		}
		if s.Include(key, 1, "mff", 0) {
			t.Fatalf("0%% included key %q", key)
		}
	}
}

// TestSamplerDistribution checks the keyed hash lands near the requested
// rate over many distinct keys. The bound is loose; it only guards against
// gross skew.
func TestSamplerDistribution(t *testing.T) {
	s := KeyedSampler{}
	included := 0
	const n = 2000
	for i := 0; i < n; i++ {
		if s.Include(fmt.Sprintf("key-%d", i), 3, "mmm", 30) {
			included++
		}
	}
	if included < n*20/100 || included > n*40/100 {
		t.Fatalf("30%% sampling included %d of %d keys", included, n)
	}
}

// TestSamplerVariesByCampaign ensures two campaigns do not share one draw
// for the same visitor.
func TestSamplerVariesByCampaign(t *testing.T) {
	s := KeyedSampler{}
	same := true
	for i := int64(0); i < 50 && same; i++ {
		if s.Include("visitor", i, "mff", 50) != s.Include("visitor", i+1000, "mff", 50) {
			same = false
		}
	}
	if same {
		t.Fatalf("draws identical across campaigns for one key")
	}
}

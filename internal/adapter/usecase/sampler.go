package usecase

import (
	"hash/fnv"
	"math/rand/v2"
	"strconv"
)

// KeyedSampler implements port.Sampler with a deterministic draw: the
// decision for a (key, campaign, property) triple is a hash scaled to
// [0,100), so a visitor keeps the same include/exclude outcome for a
// campaign across requests instead of flickering per page load. Requests
// without a stable key fall back to a uniform random draw.
type KeyedSampler struct{}

func (KeyedSampler) Include(key string, campaignID int64, propertyCode string, percent int) bool {
	if percent >= 100 {
		return true
	}
	if percent <= 0 {
		return false
	}
	if key == "" {
		return rand.IntN(100) < percent
	}
	h := fnv.New64a()
	h.Write([]byte(key))
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.FormatInt(campaignID, 10)))
	h.Write([]byte{'|'})
	h.Write([]byte(propertyCode))
	return h.Sum64()%100 < uint64(percent)
}

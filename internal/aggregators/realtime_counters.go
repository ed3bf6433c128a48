package aggregators

import (
	"sort"
	"sync"
	"time"

	"github.com/mileusna/useragent"

	"ecom-analytics/internal/models"
)

// RealtimeCounterSet holds process-local, non-persistent counters over a
// rolling window. It is the only shared mutable state in the pipeline and has
// an explicit lifecycle: created at process start, reset on a timer owned by
// the app, read on demand. It is a best-effort approximate view and is allowed
// to diverge from the durable aggregates and across restarts.
//
// All methods are safe for concurrent use; callers never take a lock.
type RealtimeCounterSet struct {
	mu sync.RWMutex

	byEventType        map[models.EventType]int64
	viewsByProduct     map[string]int64
	purchasesByProduct map[string]int64
	byCategory         map[string]int64
	byAgentFamily      map[string]int64

	lastReset time.Time
}

func NewRealtimeCounterSet() *RealtimeCounterSet {
	set := &RealtimeCounterSet{lastReset: time.Now().UTC()}
	set.clearLocked()
	return set
}

// Record updates every counter the event is relevant to.
func (s *RealtimeCounterSet) Record(event *models.UserEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byEventType[event.EventType]++

	switch event.EventType {
	case models.EventView:
		s.viewsByProduct[event.ProductID]++
	case models.EventPurchase:
		s.purchasesByProduct[event.ProductID]++
	case models.EventClick, models.EventAddToCart, models.EventRemoveFromCart, models.EventSearch:
		// counted by type and category only
	}

	if event.Category != "" {
		s.byCategory[event.Category]++
	}
	if event.UserAgent != "" {
		s.byAgentFamily[normalizeUserAgent(event.UserAgent)]++
	}
}

// Reset clears all counters and stamps the reset time. Idempotent; resetting
// an empty set only moves the timestamp. The durable aggregates are untouched.
func (s *RealtimeCounterSet) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	s.lastReset = time.Now().UTC()
}

func (s *RealtimeCounterSet) LastReset() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastReset
}

// EventTypeCounts returns a snapshot of counts by event type.
func (s *RealtimeCounterSet) EventTypeCounts() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]int64, len(s.byEventType))
	for eventType, count := range s.byEventType {
		result[eventType.String()] = count
	}
	return result
}

func (s *RealtimeCounterSet) TopViewedProducts(limit int) []models.RankedCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return topCounts(s.viewsByProduct, limit)
}

func (s *RealtimeCounterSet) TopPurchasedProducts(limit int) []models.RankedCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return topCounts(s.purchasesByProduct, limit)
}

func (s *RealtimeCounterSet) TopCategories(limit int) []models.RankedCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return topCounts(s.byCategory, limit)
}

func (s *RealtimeCounterSet) TopAgentFamilies(limit int) []models.RankedCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return topCounts(s.byAgentFamily, limit)
}

// ConversionRate derives purchases/views for one product, 0 when there are
// no views.
func (s *RealtimeCounterSet) ConversionRate(productID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := s.viewsByProduct[productID]
	if views == 0 {
		return 0
	}
	return float64(s.purchasesByProduct[productID]) / float64(views)
}

// TopConversionRates reports the conversion rate for the top viewed products.
func (s *RealtimeCounterSet) TopConversionRates(limit int) []models.ConversionRate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	top := topCounts(s.viewsByProduct, limit)
	result := make([]models.ConversionRate, 0, len(top))
	for _, ranked := range top {
		rate := models.ConversionRate{
			ProductID: ranked.Key,
			Views:     ranked.Count,
			Purchases: s.purchasesByProduct[ranked.Key],
		}
		if rate.Views > 0 {
			rate.Rate = float64(rate.Purchases) / float64(rate.Views)
		}
		result = append(result, rate)
	}
	return result
}

func (s *RealtimeCounterSet) clearLocked() {
	s.byEventType = make(map[models.EventType]int64)
	s.viewsByProduct = make(map[string]int64)
	s.purchasesByProduct = make(map[string]int64)
	s.byCategory = make(map[string]int64)
	s.byAgentFamily = make(map[string]int64)
}

// topCounts ranks by count descending; ties break on key ascending so the
// result is deterministic.
func topCounts(counters map[string]int64, limit int) []models.RankedCount {
	ranked := make([]models.RankedCount, 0, len(counters))
	for key, count := range counters {
		ranked = append(ranked, models.RankedCount{Key: key, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Key < ranked[j].Key
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// normalizeUserAgent parses the user agent to extract the browser family, or
// returns the original string when parsing yields nothing.
func normalizeUserAgent(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}
	return ua
}

package models

import (
	"strconv"
	"time"
)

// ProductAggregate is the derived per-product analytics document held in the
// search store's product index. Display fields are a denormalized copy owned
// by the canonical Product; counter fields are owned by the event pipeline.
// A display-only refresh must carry the counters forward, never reset them.
type ProductAggregate struct {
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stockQuantity"`
	ImageURL      string  `json:"imageUrl,omitempty"`

	TotalViews     int64      `json:"totalViews"`
	TotalPurchases int64      `json:"totalPurchases"`
	TotalRevenue   float64    `json:"totalRevenue"`
	ConversionRate float64    `json:"conversionRate"`
	LastPurchaseAt *time.Time `json:"lastPurchaseAt,omitempty"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProductAggregate builds an aggregate document from the canonical product
// with zeroed counters. Used for lazy creation on the first event and as the
// base of a canonical refresh before counters are copied forward.
func NewProductAggregate(p *Product) *ProductAggregate {
	return &ProductAggregate{
		ProductID:     strconv.FormatInt(p.ID, 10),
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Category:      p.Category,
		StockQuantity: p.StockQuantity,
		ImageURL:      p.ImageURL,
	}
}

// CopyCountersFrom carries the pipeline-owned counter fields of prev forward
// into the receiver. Called on every canonical refresh; skipping it silently
// resets analytics to zero.
func (a *ProductAggregate) CopyCountersFrom(prev *ProductAggregate) {
	a.TotalViews = prev.TotalViews
	a.TotalPurchases = prev.TotalPurchases
	a.TotalRevenue = prev.TotalRevenue
	a.ConversionRate = prev.ConversionRate
	a.LastPurchaseAt = prev.LastPurchaseAt
}

// RecomputeConversionRate re-derives the conversion rate from the current
// counters. The rate may exceed 1.0 when a purchase arrives without a matching
// prior view; that anomaly is accepted, not corrected.
func (a *ProductAggregate) RecomputeConversionRate() {
	if a.TotalViews > 0 {
		a.ConversionRate = float64(a.TotalPurchases) / float64(a.TotalViews)
		return
	}
	a.ConversionRate = 0
}

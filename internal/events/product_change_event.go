package events

import "ecom-analytics/internal/models"

// ProductChangeType distinguishes canonical product mutations.
type ProductChangeType string

const (
	ProductCreated ProductChangeType = "created"
	ProductUpdated ProductChangeType = "updated"
	ProductDeleted ProductChangeType = "deleted"
)

// ProductChangeEvent is the in-process notification emitted after a canonical
// product mutation commits. It carries the full post-mutation entity plus the
// category the product belonged to before the write, which is needed to evict
// the right category cache entry and may be unrecoverable after a delete.
// Observers never see an uncommitted write: the product service publishes the
// event only after the store reports success.
type ProductChangeEvent struct {
	Type        ProductChangeType
	Product     *models.Product
	OldCategory string
}

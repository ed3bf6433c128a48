package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"ecom-analytics/internal/models"
)

// ErrAggregateNotFound is returned when no aggregate document exists for the
// product. The updater creates the document lazily on the first event.
var ErrAggregateNotFound = errors.New("product aggregate not found")

//go:generate mockgen -source=product_aggregate_store.go -destination=./mocks/product_aggregate_store_mock.go -package=mocks
type ProductAggregateStore interface {
	// Get returns ErrAggregateNotFound when the document does not exist.
	Get(ctx context.Context, productID string) (*models.ProductAggregate, error)
	Upsert(ctx context.Context, aggregate *models.ProductAggregate) error
	Delete(ctx context.Context, productID string) error
}

type productAggregateStore struct {
	client *elasticsearch.Client
	index  string
}

func NewProductAggregateStore(client *elasticsearch.Client, index string) ProductAggregateStore {
	return &productAggregateStore{client: client, index: index}
}

func (s *productAggregateStore) Get(ctx context.Context, productID string) (*models.ProductAggregate, error) {
	request := esapi.GetRequest{
		Index:      s.index,
		DocumentID: productID,
	}
	response, err := request.Do(ctx, s.client)
	if err != nil {
		return nil, fmt.Errorf("failed to get product aggregate: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: productId=%s", ErrAggregateNotFound, productID)
	}
	if response.IsError() {
		return nil, fmt.Errorf("get aggregate request failed: %s", response.String())
	}

	var document struct {
		Source models.ProductAggregate `json:"_source"`
	}
	if err := json.NewDecoder(response.Body).Decode(&document); err != nil {
		return nil, fmt.Errorf("failed to decode product aggregate: %w", err)
	}
	return &document.Source, nil
}

func (s *productAggregateStore) Upsert(ctx context.Context, aggregate *models.ProductAggregate) error {
	data, err := json.Marshal(aggregate)
	if err != nil {
		return fmt.Errorf("failed to marshal product aggregate: %w", err)
	}

	request := esapi.IndexRequest{
		Index:      s.index,
		DocumentID: aggregate.ProductID,
		Body:       bytes.NewReader(data),
	}
	response, err := request.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("failed to upsert product aggregate: %w", err)
	}
	defer response.Body.Close()

	if response.IsError() {
		return fmt.Errorf("upsert aggregate request failed: %s", response.String())
	}
	return nil
}

func (s *productAggregateStore) Delete(ctx context.Context, productID string) error {
	request := esapi.DeleteRequest{
		Index:      s.index,
		DocumentID: productID,
	}
	response, err := request.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("failed to delete product aggregate: %w", err)
	}
	defer response.Body.Close()

	// Deleting an absent document is a no-op, not a failure.
	if response.IsError() && response.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete aggregate request failed: %s", response.String())
	}
	return nil
}

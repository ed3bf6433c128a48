package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"ecom-analytics/internal/models"
)

//go:generate mockgen -source=user_event_search_store.go -destination=./mocks/user_event_search_store_mock.go -package=mocks
type UserEventSearchStore interface {
	// Index writes one event document. Indexing the same event ID twice
	// overwrites the identical document, so redelivery is harmless.
	Index(ctx context.Context, event *models.UserEvent) error
	CountAll(ctx context.Context) (int64, error)
	CountByEventType(ctx context.Context, eventType models.EventType) (int64, error)
	TopProducts(ctx context.Context, eventType models.EventType, limit int) ([]models.RankedCount, error)
	TopCategories(ctx context.Context, limit int) ([]models.RankedCount, error)
	TrendingProducts(ctx context.Context, hours, limit int) ([]models.RankedCount, error)
	TrendingCategories(ctx context.Context, hours, limit int) ([]models.RankedCount, error)
	ProductConversionRates(ctx context.Context, limit int) ([]models.ConversionRate, error)
}

type userEventSearchStore struct {
	client *elasticsearch.Client
	index  string
}

func NewUserEventSearchStore(client *elasticsearch.Client, index string) UserEventSearchStore {
	return &userEventSearchStore{client: client, index: index}
}

func (s *userEventSearchStore) Index(ctx context.Context, event *models.UserEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	request := esapi.IndexRequest{
		Index:      s.index,
		DocumentID: event.ID,
		Body:       bytes.NewReader(data),
	}
	response, err := request.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("failed to index event: %w", err)
	}
	defer response.Body.Close()

	if response.IsError() {
		return fmt.Errorf("failed to index event: %s", response.String())
	}
	return nil
}

func (s *userEventSearchStore) CountAll(ctx context.Context) (int64, error) {
	return s.count(ctx, nil)
}

func (s *userEventSearchStore) CountByEventType(ctx context.Context, eventType models.EventType) (int64, error) {
	body, err := countByEventTypeQuery(eventType)
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}
	return s.count(ctx, body)
}

func (s *userEventSearchStore) TopProducts(ctx context.Context, eventType models.EventType, limit int) ([]models.RankedCount, error) {
	body, err := topProductsQuery(eventType, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build top products query: %w", err)
	}
	raw, err := s.search(ctx, body)
	if err != nil {
		return nil, err
	}
	return parseRankedCounts(raw, aggTopProducts)
}

func (s *userEventSearchStore) TopCategories(ctx context.Context, limit int) ([]models.RankedCount, error) {
	body, err := topCategoriesQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build top categories query: %w", err)
	}
	raw, err := s.search(ctx, body)
	if err != nil {
		return nil, err
	}
	return parseRankedCounts(raw, aggTopCategories)
}

func (s *userEventSearchStore) TrendingProducts(ctx context.Context, hours, limit int) ([]models.RankedCount, error) {
	body, err := trendingQuery(aggTrendingProducts, "productId", hours, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build trending products query: %w", err)
	}
	raw, err := s.search(ctx, body)
	if err != nil {
		return nil, err
	}
	return parseRankedCounts(raw, aggTrendingProducts)
}

func (s *userEventSearchStore) TrendingCategories(ctx context.Context, hours, limit int) ([]models.RankedCount, error) {
	body, err := trendingQuery(aggTrendingCategories, "category", hours, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build trending categories query: %w", err)
	}
	raw, err := s.search(ctx, body)
	if err != nil {
		return nil, err
	}
	return parseRankedCounts(raw, aggTrendingCategories)
}

func (s *userEventSearchStore) ProductConversionRates(ctx context.Context, limit int) ([]models.ConversionRate, error) {
	body, err := conversionRatesQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build conversion rates query: %w", err)
	}
	raw, err := s.search(ctx, body)
	if err != nil {
		return nil, err
	}
	return parseConversionRates(raw)
}

func (s *userEventSearchStore) search(ctx context.Context, body []byte) ([]byte, error) {
	response, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer response.Body.Close()

	if response.IsError() {
		return nil, fmt.Errorf("search request failed: %s", response.String())
	}
	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}
	return raw, nil
}

func (s *userEventSearchStore) count(ctx context.Context, body []byte) (int64, error) {
	opts := []func(*esapi.CountRequest){
		s.client.Count.WithContext(ctx),
		s.client.Count.WithIndex(s.index),
	}
	if body != nil {
		opts = append(opts, s.client.Count.WithBody(bytes.NewReader(body)))
	}

	response, err := s.client.Count(opts...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute count: %w", err)
	}
	defer response.Body.Close()

	if response.IsError() {
		return 0, fmt.Errorf("count request failed: %s", response.String())
	}

	var result countResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("failed to decode count response: %w", err)
	}
	return result.Count, nil
}

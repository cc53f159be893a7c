package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/pkg/errors"
)

type firestoreMetricsRepository struct {
	client *firestore.Client
}

func NewFirestoreMetricsRepository(client *firestore.Client) repository.MetricsRepository {
	return &firestoreMetricsRepository{
		client: client,
	}
}

func (r *firestoreMetricsRepository) Create(ctx context.Context, metrics *entity.ImpactMetrics) error {
	if metrics.ID == "" {
		doc := r.client.Collection("impactMetrics").NewDoc()
		metrics.ID = doc.ID
	}
	if metrics.CreatedAt.IsZero() {
		metrics.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("impactMetrics").Doc(metrics.ID).Set(ctx, metrics)
	if err != nil {
		return errors.Internal("Failed to create impact metrics", err)
	}

	return nil
}

func (r *firestoreMetricsRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entity.ImpactMetrics, error) {
	docs, err := r.client.Collection("impactMetrics").Query.
		Where("transactionId", "==", transactionID).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Internal("Failed to query impact metrics", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	var metrics entity.ImpactMetrics
	if err := docs[0].DataTo(&metrics); err != nil {
		return nil, errors.Internal("Failed to parse impact metrics data", err)
	}

	return &metrics, nil
}

func (r *firestoreMetricsRepository) ListByTransactionIDs(ctx context.Context, transactionIDs []string) ([]*entity.ImpactMetrics, error) {
	var result []*entity.ImpactMetrics
	if len(transactionIDs) == 0 {
		return result, nil
	}

	// Firestore caps "in" clauses at 30 values per query.
	const chunkSize = 30
	for start := 0; start < len(transactionIDs); start += chunkSize {
		end := start + chunkSize
		if end > len(transactionIDs) {
			end = len(transactionIDs)
		}

		iter := r.client.Collection("impactMetrics").Query.
			Where("transactionId", "in", transactionIDs[start:end]).
			Documents(ctx)

		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return nil, errors.Internal("Failed to iterate impact metrics", err)
			}

			var metrics entity.ImpactMetrics
			if err := doc.DataTo(&metrics); err != nil {
				return nil, errors.Internal("Failed to parse impact metrics data", err)
			}
			result = append(result, &metrics)
		}
	}

	return result, nil
}

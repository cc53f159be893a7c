package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/pkg/errors"
)

// The leaderboard collection is a materialized aggregate kept up to
// date by the data platform, one document per user with completed
// pickups.
type firestoreLeaderboardRepository struct {
	client *firestore.Client
}

func NewFirestoreLeaderboardRepository(client *firestore.Client) repository.LeaderboardRepository {
	return &firestoreLeaderboardRepository{
		client: client,
	}
}

func (r *firestoreLeaderboardRepository) List(ctx context.Context) ([]*entity.LeaderboardEntry, error) {
	iter := r.client.Collection("leaderboard").Documents(ctx)

	var entries []*entity.LeaderboardEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate leaderboard", err)
		}

		var entry entity.LeaderboardEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, errors.Internal("Failed to parse leaderboard data", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"foodbridge/internal/domain/entity"
	"foodbridge/internal/domain/repository"
	"foodbridge/pkg/errors"
)

type firestoreDonationRepository struct {
	client *firestore.Client
}

func NewFirestoreDonationRepository(client *firestore.Client) repository.DonationRepository {
	return &firestoreDonationRepository{
		client: client,
	}
}

func (r *firestoreDonationRepository) Create(ctx context.Context, donation *entity.FoodDonation) error {
	if donation.ID == "" {
		doc := r.client.Collection("donations").NewDoc()
		donation.ID = doc.ID
	}

	now := time.Now()
	if donation.CreatedAt.IsZero() {
		donation.CreatedAt = now
	}
	donation.UpdatedAt = now

	_, err := r.client.Collection("donations").Doc(donation.ID).Set(ctx, donation)
	if err != nil {
		return errors.Internal("Failed to create donation", err)
	}

	return nil
}

func (r *firestoreDonationRepository) GetByID(ctx context.Context, id string) (*entity.FoodDonation, error) {
	doc, err := r.client.Collection("donations").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Donation", err)
		}
		return nil, errors.Internal("Failed to get donation", err)
	}

	var donation entity.FoodDonation
	if err := doc.DataTo(&donation); err != nil {
		return nil, errors.Internal("Failed to parse donation data", err)
	}

	return &donation, nil
}

func (r *firestoreDonationRepository) Update(ctx context.Context, donation *entity.FoodDonation) error {
	donation.UpdatedAt = time.Now()

	_, err := r.client.Collection("donations").Doc(donation.ID).Set(ctx, donation)
	if err != nil {
		return errors.Internal("Failed to update donation", err)
	}

	return nil
}

func (r *firestoreDonationRepository) ListAvailable(ctx context.Context, categoryID int, sortBy string) ([]*entity.FoodDonation, error) {
	query := r.client.Collection("donations").Query.
		Where("status", "==", entity.DonationStatusAvailable)

	if categoryID > 0 {
		query = query.Where("categoryId", "==", categoryID)
	}

	switch sortBy {
	case "expiration_asc":
		query = query.OrderBy("expiryDate", firestore.Asc)
	case "expiration_desc":
		query = query.OrderBy("expiryDate", firestore.Desc)
	default:
		query = query.OrderBy("createdAt", firestore.Desc)
	}

	iter := query.Documents(ctx)
	var donations []*entity.FoodDonation

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate donations", err)
		}

		var donation entity.FoodDonation
		if err := doc.DataTo(&donation); err != nil {
			return nil, errors.Internal("Failed to parse donation data", err)
		}
		donations = append(donations, &donation)
	}

	return donations, nil
}

func (r *firestoreDonationRepository) ListByDonorID(ctx context.Context, donorID string, status string, limit, offset int) ([]*entity.FoodDonation, int64, error) {
	query := r.client.Collection("donations").Query.Where("donorId", "==", donorID)

	if status != "" {
		query = query.Where("status", "==", status)
	}

	// Get total count
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count donor donations", err)
	}
	total := int64(len(allDocs))

	// Apply pagination
	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var donations []*entity.FoodDonation

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate donor donations", err)
		}

		var donation entity.FoodDonation
		if err := doc.DataTo(&donation); err != nil {
			return nil, 0, errors.Internal("Failed to parse donation data", err)
		}
		donations = append(donations, &donation)
	}

	return donations, total, nil
}

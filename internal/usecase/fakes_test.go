package usecase

import (
	"context"
	"sort"
	"strconv"
	"time"

	"foodbridge/internal/domain/entity"
	"foodbridge/pkg/errors"
)

type fakeUserRepo struct {
	users map[string]*entity.User
	prefs map[string]*entity.UserPreferences
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[string]*entity.User),
		prefs: make(map[string]*entity.UserPreferences),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	result := make(map[string]*entity.User)
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			copied := *user
			result[id] = &copied
		}
	}
	return result, nil
}

func (r *fakeUserRepo) GetPreferences(ctx context.Context, userID string) (*entity.UserPreferences, error) {
	prefs, ok := r.prefs[userID]
	if !ok {
		return nil, errors.NotFound("Preferences", nil)
	}
	copied := *prefs
	return &copied, nil
}

func (r *fakeUserRepo) SetPreferences(ctx context.Context, prefs *entity.UserPreferences) error {
	r.prefs[prefs.UserID] = prefs
	return nil
}

type fakeDonationRepo struct {
	donations map[string]*entity.FoodDonation
	nextID    int
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{
		donations: make(map[string]*entity.FoodDonation),
	}
}

func (r *fakeDonationRepo) Create(ctx context.Context, donation *entity.FoodDonation) error {
	if donation.ID == "" {
		r.nextID++
		donation.ID = "donation-" + strconv.Itoa(r.nextID)
	}
	if donation.CreatedAt.IsZero() {
		donation.CreatedAt = time.Now()
	}
	r.donations[donation.ID] = donation
	return nil
}

func (r *fakeDonationRepo) GetByID(ctx context.Context, id string) (*entity.FoodDonation, error) {
	donation, ok := r.donations[id]
	if !ok {
		return nil, errors.NotFound("Donation", nil)
	}
	copied := *donation
	return &copied, nil
}

func (r *fakeDonationRepo) Update(ctx context.Context, donation *entity.FoodDonation) error {
	if _, ok := r.donations[donation.ID]; !ok {
		return errors.NotFound("Donation", nil)
	}
	r.donations[donation.ID] = donation
	return nil
}

func (r *fakeDonationRepo) ListAvailable(ctx context.Context, categoryID int, sortBy string) ([]*entity.FoodDonation, error) {
	var result []*entity.FoodDonation
	for _, d := range r.donations {
		if d.Status != entity.DonationStatusAvailable {
			continue
		}
		if categoryID > 0 && d.CategoryID != categoryID {
			continue
		}
		copied := *d
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		switch sortBy {
		case "expiration_asc":
			return result[i].ExpiryDate.Before(result[j].ExpiryDate)
		case "expiration_desc":
			return result[i].ExpiryDate.After(result[j].ExpiryDate)
		default:
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
	})
	return result, nil
}

func (r *fakeDonationRepo) ListByDonorID(ctx context.Context, donorID string, status string, limit, offset int) ([]*entity.FoodDonation, int64, error) {
	var matched []*entity.FoodDonation
	for _, d := range r.donations {
		if d.DonorID != donorID {
			continue
		}
		if status != "" && d.Status != status {
			continue
		}
		copied := *d
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset > 0 {
		if offset >= len(matched) {
			return nil, total, nil
		}
		matched = matched[offset:]
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

type fakeTransactionRepo struct {
	transactions map[string]*entity.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{
		transactions: make(map[string]*entity.Transaction),
	}
}

func (r *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	if transaction.CreatedAt.IsZero() {
		transaction.CreatedAt = time.Now()
	}
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	transaction, ok := r.transactions[id]
	if !ok {
		return nil, errors.NotFound("Transaction", nil)
	}
	copied := *transaction
	return &copied, nil
}

func (r *fakeTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	if _, ok := r.transactions[transaction.ID]; !ok {
		return errors.NotFound("Transaction", nil)
	}
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) matches(t *entity.Transaction, userID, role, status string) bool {
	switch role {
	case entity.UserTypeDonor:
		if t.DonorID != userID {
			return false
		}
	default:
		if t.RecipientID != userID {
			return false
		}
	}
	return status == "" || t.Status == status
}

func (r *fakeTransactionRepo) ListByUserID(ctx context.Context, userID, role, status string, limit, offset int) ([]*entity.Transaction, int64, error) {
	var matched []*entity.Transaction
	for _, t := range r.transactions {
		if r.matches(t, userID, role, status) {
			copied := *t
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if offset > 0 {
		if offset >= len(matched) {
			return nil, total, nil
		}
		matched = matched[offset:]
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (r *fakeTransactionRepo) ListByDonationID(ctx context.Context, donationID string) ([]*entity.Transaction, error) {
	var result []*entity.Transaction
	for _, t := range r.transactions {
		if t.DonationID == donationID {
			copied := *t
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeTransactionRepo) GetByDonationAndRecipient(ctx context.Context, donationID, recipientID string) (*entity.Transaction, error) {
	for _, t := range r.transactions {
		if t.DonationID == donationID && t.RecipientID == recipientID {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) CountByUserID(ctx context.Context, userID, role, status string) (int64, error) {
	var count int64
	for _, t := range r.transactions {
		if r.matches(t, userID, role, status) {
			count++
		}
	}
	return count, nil
}

type fakeMetricsRepo struct {
	metrics []*entity.ImpactMetrics
}

func newFakeMetricsRepo() *fakeMetricsRepo {
	return &fakeMetricsRepo{}
}

func (r *fakeMetricsRepo) Create(ctx context.Context, metrics *entity.ImpactMetrics) error {
	copied := *metrics
	r.metrics = append(r.metrics, &copied)
	return nil
}

func (r *fakeMetricsRepo) GetByTransactionID(ctx context.Context, transactionID string) (*entity.ImpactMetrics, error) {
	for _, m := range r.metrics {
		if m.TransactionID == transactionID {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeMetricsRepo) ListByTransactionIDs(ctx context.Context, transactionIDs []string) ([]*entity.ImpactMetrics, error) {
	wanted := make(map[string]bool, len(transactionIDs))
	for _, id := range transactionIDs {
		wanted[id] = true
	}

	var result []*entity.ImpactMetrics
	for _, m := range r.metrics {
		if wanted[m.TransactionID] {
			copied := *m
			result = append(result, &copied)
		}
	}
	return result, nil
}

type fakeCategoryRepo struct {
	categories map[int]*entity.FoodCategory
}

func newFakeCategoryRepo(ids ...int) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[int]*entity.FoodCategory)}
	for _, id := range ids {
		r.categories[id] = &entity.FoodCategory{ID: id, Name: "Category " + strconv.Itoa(id)}
	}
	return r
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*entity.FoodCategory, error) {
	var result []*entity.FoodCategory
	for _, c := range r.categories {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id int) (*entity.FoodCategory, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	return category, nil
}

type fakeLeaderboardRepo struct {
	entries []*entity.LeaderboardEntry
}

func (r *fakeLeaderboardRepo) List(ctx context.Context) ([]*entity.LeaderboardEntry, error) {
	result := make([]*entity.LeaderboardEntry, 0, len(r.entries))
	for _, e := range r.entries {
		copied := *e
		result = append(result, &copied)
	}
	return result, nil
}

type fakeAuthClient struct {
	nextUID   string
	passwords map[string]string
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{
		nextUID:   "uid-1",
		passwords: make(map[string]string),
	}
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	f.passwords[email] = password
	return f.nextUID, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return f.nextUID, nil
}

func (f *fakeAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	return nil
}

func (f *fakeAuthClient) SignInWithEmailPassword(ctx context.Context, email, password string) (string, string, error) {
	if stored, ok := f.passwords[email]; ok && stored != password {
		return "", "", errors.Unauthorized("Invalid credentials", nil)
	}
	return "id-token", "refresh-token", nil
}

func (f *fakeAuthClient) RefreshIDToken(ctx context.Context, refreshToken string) (string, string, error) {
	return "id-token-2", "refresh-token-2", nil
}

func (f *fakeAuthClient) SendPasswordResetEmail(ctx context.Context, email string) error {
	return nil
}

package account

import (
	"context"
	"sync"
	"testing"
	"time"

	"medicore/models"
	"medicore/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// fakeSessionCache records session writes and deletes in memory.
type fakeSessionCache struct {
	mu      sync.Mutex
	entries map[string]string
	deleted []string
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{entries: make(map[string]string)}
}

func (c *fakeSessionCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *fakeSessionCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.deleted = append(c.deleted, key)
	return nil
}

type fakeAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*models.Account)}
}

func (r *fakeAccountRepo) Create(ctx context.Context, acct *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := *acct
	r.accounts[a.ID] = &a
	return nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	out := *a
	return &out, nil
}

func (r *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.accounts {
		if a.Email == email {
			out := *a
			return &out, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAccountRepo) GetAll(ctx context.Context) ([]models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Account
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAccountRepo) UpdateFields(ctx context.Context, id string, fields bson.M) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if v, ok := fields["name"].(string); ok {
		a.Name = v
	}
	if v, ok := fields["email"].(string); ok {
		a.Email = v
	}
	if v, ok := fields["passwordHash"].(string); ok {
		a.PasswordHash = v
	}
	if v, ok := fields["image"].(string); ok {
		a.Image = v
	}
	out := *a
	return &out, nil
}

func (r *fakeAccountRepo) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.accounts, id)
	return nil
}

func seedAccount(repo *fakeAccountRepo, password string) *models.Account {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	acct := &models.Account{
		ID:           "acc-1",
		Name:         "Jane Mwangi",
		Email:        "jane@patients.test",
		PasswordHash: string(hash),
		Role:         models.RolePatient,
	}
	repo.accounts[acct.ID] = acct
	return acct
}

func TestRegisterValidation(t *testing.T) {
	svc := &DefaultAccountService{Repo: newFakeAccountRepo(), Role: models.RolePatient}
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "jane@patients.test", "secret", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register(ctx, "Jane", "jane@patients.test", "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegisterIssuesSessionToken(t *testing.T) {
	repo := newFakeAccountRepo()
	sessions := newFakeSessionCache()
	svc := &DefaultAccountService{Repo: repo, Role: models.RolePatient, Sessions: sessions}

	res, err := svc.Register(context.Background(), "Jane Mwangi", "jane@patients.test", "secret", "")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, models.RolePatient, res.Account.Role)

	claims, err := utils.ExtractClaimsFromToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Account.ID, claims.ID)
	assert.Equal(t, models.RolePatient, claims.Role)

	cacheKey := utils.AuthCachePrefix + utils.HashToken(res.Token)
	assert.Equal(t, res.Account.ID, sessions.entries[cacheKey])
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(repo, "secret")
	svc := &DefaultAccountService{Repo: repo, Role: models.RolePatient}

	_, err := svc.Register(context.Background(), "Jane Again", "jane@patients.test", "secret", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginIssuesSessionToken(t *testing.T) {
	repo := newFakeAccountRepo()
	acct := seedAccount(repo, "secret")
	sessions := newFakeSessionCache()
	svc := &DefaultAccountService{Repo: repo, Role: models.RolePatient, Sessions: sessions}

	res, err := svc.Login(context.Background(), acct.Email, "secret")
	require.NoError(t, err)
	assert.Equal(t, acct.ID, res.Account.ID)

	claims, err := utils.ExtractClaimsFromToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, acct.ID, claims.ID)

	cacheKey := utils.AuthCachePrefix + utils.HashToken(res.Token)
	assert.Equal(t, acct.ID, sessions.entries[cacheKey])
}

func TestLogoutClearsSession(t *testing.T) {
	repo := newFakeAccountRepo()
	acct := seedAccount(repo, "secret")
	sessions := newFakeSessionCache()
	svc := &DefaultAccountService{Repo: repo, Role: models.RolePatient, Sessions: sessions}
	ctx := context.Background()

	res, err := svc.Login(ctx, acct.Email, "secret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, res.Token))
	cacheKey := utils.AuthCachePrefix + utils.HashToken(res.Token)
	assert.NotContains(t, sessions.entries, cacheKey)
	assert.Contains(t, sessions.deleted, cacheKey)

	// No cache configured still logs out cleanly.
	bare := &DefaultAccountService{Repo: repo, Role: models.RolePatient}
	assert.NoError(t, bare.Logout(ctx, res.Token))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(repo, "secret")
	svc := &DefaultAccountService{Repo: repo, Role: models.RolePatient}
	ctx := context.Background()

	_, err := svc.Login(ctx, "jane@patients.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@patients.test", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateRequiresAtLeastOneField(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(repo, "secret")
	svc := &DefaultAccountService{Repo: repo, Role: models.RolePatient}

	_, err := svc.Update(context.Background(), "acc-1", models.AccountUpdate{}, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateAppliesFields(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(repo, "secret")
	svc := &DefaultAccountService{Repo: repo, Role: models.RolePatient}

	name := "Jane W. Mwangi"
	acct, err := svc.Update(context.Background(), "acc-1", models.AccountUpdate{Name: &name}, "")
	assert.NoError(t, err)
	assert.Equal(t, name, acct.Name)
}

func TestGetAndDeleteAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	seedAccount(repo, "secret")
	svc := &DefaultAccountService{Repo: repo, Role: models.RolePatient}
	ctx := context.Background()

	acct, err := svc.GetByID(ctx, "acc-1")
	assert.NoError(t, err)
	assert.Equal(t, "jane@patients.test", acct.Email)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	assert.NoError(t, svc.Delete(ctx, "acc-1"))
	assert.ErrorIs(t, svc.Delete(ctx, "acc-1"), ErrAccountNotFound)

	_, err = svc.GetAll(ctx)
	assert.ErrorIs(t, err, ErrNoAccounts)
}

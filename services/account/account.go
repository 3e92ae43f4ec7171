package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medicore/models"
	"medicore/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// sessionTTL bounds how long an issued token stays valid.
const sessionTTL = 24 * time.Hour

// Register creates an account and signs it in. An uploaded avatar is
// optional; without one the account keeps the default image.
func (s *DefaultAccountService) Register(ctx context.Context, name, email, password, imagePath string) (*AuthResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrValidation
	}

	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	image := models.DefaultAvatarURL
	if imagePath != "" {
		image = s.uploadAvatar(ctx, imagePath)
	}

	now := time.Now()
	acct := &models.Account{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         s.Role,
		Image:        image,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, acct); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	token, err := s.issueToken(ctx, acct)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Account: acct, Token: token}, nil
}

// Login verifies credentials and issues a session token.
func (s *DefaultAccountService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	acct, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, acct)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Account: acct, Token: token}, nil
}

// Logout invalidates the token's cached session. Expired or unknown tokens
// log out cleanly.
func (s *DefaultAccountService) Logout(ctx context.Context, token string) error {
	if token == "" || s.Sessions == nil {
		return nil
	}
	cacheKey := utils.AuthCachePrefix + utils.HashToken(token)
	if err := s.Sessions.Del(ctx, cacheKey); err != nil {
		utils.GetLogger().Error("failed to clear auth cache on logout", zap.Error(err))
	}
	return nil
}

// GetByID fetches a single account.
func (s *DefaultAccountService) GetByID(ctx context.Context, id string) (*models.Account, error) {
	acct, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to fetch account %s: %w", id, err)
	}
	return acct, nil
}

// GetAll lists every account of this role. An empty collection reads as not
// found.
func (s *DefaultAccountService) GetAll(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}
	return accounts, nil
}

// Update applies a partial profile edit. A new password is re-hashed; a new
// avatar file replaces the stored image URL.
func (s *DefaultAccountService) Update(ctx context.Context, id string, update models.AccountUpdate, imagePath string) (*models.Account, error) {
	fields := bson.M{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		fields["passwordHash"] = string(hash)
	}
	if imagePath != "" {
		fields["image"] = s.uploadAvatar(ctx, imagePath)
	} else if update.Image != nil {
		fields["image"] = *update.Image
	}
	if len(fields) == 0 {
		return nil, ErrValidation
	}
	fields["updatedAt"] = time.Now()

	acct, err := s.Repo.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to update account %s: %w", id, err)
	}
	return acct, nil
}

// Delete removes an account.
func (s *DefaultAccountService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to delete account %s: %w", id, err)
	}
	return nil
}

// issueToken signs a JWT for the account and caches its hash so the auth
// middleware can validate without re-verifying signatures on every request.
// Without a session cache the middleware falls back to signature checks.
func (s *DefaultAccountService) issueToken(ctx context.Context, acct *models.Account) (string, error) {
	token, err := utils.GenerateToken(utils.AuthClaims{
		ID:    acct.ID,
		Name:  acct.Name,
		Email: acct.Email,
		Role:  acct.Role,
	}, sessionTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if s.Sessions != nil {
		cacheKey := utils.AuthCachePrefix + utils.HashToken(token)
		if err := s.Sessions.Set(ctx, cacheKey, acct.ID, sessionTTL); err != nil {
			utils.GetLogger().Error("failed to cache session token", zap.Error(err))
		}
	}
	return token, nil
}

// uploadAvatar pushes the avatar file to the object store. Upload failures
// fall back to the default image so profile writes never fail on storage.
func (s *DefaultAccountService) uploadAvatar(ctx context.Context, imagePath string) string {
	if s.Storage == nil {
		return models.DefaultAvatarURL
	}
	url, err := s.Storage.UploadFile(ctx, imagePath, "avatars")
	if err != nil {
		utils.GetLogger().Error("avatar upload failed", zap.Error(err))
		return models.DefaultAvatarURL
	}
	return url
}

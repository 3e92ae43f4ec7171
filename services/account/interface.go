package account

import (
	"context"
	"errors"

	accountRepo "medicore/database/repository/account"
	"medicore/models"
	"medicore/services/storage"
)

// Account failure taxonomy.
var (
	ErrValidation         = errors.New("all fields are required")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotFound    = errors.New("account not found")
	ErrNoAccounts         = errors.New("no accounts found")
)

// AuthResult carries a freshly issued session token and its account.
type AuthResult struct {
	Account *models.Account
	Token   string
}

// AccountService manages one role's accounts (patients, doctors or admins).
// Each role gets its own instance bound to its own collection.
type AccountService interface {
	Register(ctx context.Context, name, email, password, imagePath string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Logout(ctx context.Context, token string) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetAll(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, id string, update models.AccountUpdate, imagePath string) (*models.Account, error)
	Delete(ctx context.Context, id string) error
}

// DefaultAccountService is the production AccountService.
type DefaultAccountService struct {
	Repo     accountRepo.AccountRepository
	Role     string
	Storage  storage.StorageService // optional; nil disables avatar uploads
	Sessions SessionCache           // optional; nil skips the token fast path
}

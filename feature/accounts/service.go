package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"party-ledger/core/apperr"
	"party-ledger/core/middleware/auth"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	bcryptCost        = 12
	maxPasswordLength = 72 // bcrypt input limit
)

// Service resolves credentials into identities, auto-provisioning
// accounts on first use.
type Service struct {
	db         *gorm.DB
	logger     *zap.Logger
	secret     string
	tokenTTL   time.Duration
	gameMaster string
}

// NewService creates a new accounts service. gameMaster is the username
// that receives the game-master flag when first provisioned.
func NewService(db *gorm.DB, logger *zap.Logger, secret string, tokenTTL time.Duration, gameMaster string) *Service {
	return &Service{
		db:         db,
		logger:     logger,
		secret:     secret,
		tokenTTL:   tokenTTL,
		gameMaster: gameMaster,
	}
}

// Login verifies the credential pair, creating the account when the
// username has never been seen, and returns a session token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperr.ErrBadRequest)
	}
	if len(req.Password) > maxPasswordLength {
		return nil, fmt.Errorf("%w: password too long", apperr.ErrBadRequest)
	}

	account, err := s.resolveOrCreate(ctx, username, req.Password)
	if err != nil {
		return nil, err
	}

	id := auth.Identity{AccountID: account.ID, Username: account.Username, IsAdmin: account.IsAdmin}
	token, err := auth.NewToken(s.secret, s.tokenTTL, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}

	return &LoginResponse{
		Token:    token,
		Account:  account.ID,
		Username: account.Username,
		IsAdmin:  account.IsAdmin,
	}, nil
}

// resolveOrCreate implements the auto-provisioning rule: an unseen name
// becomes a fresh account with the secret's hash; a known name must
// present the matching secret.
func (s *Service) resolveOrCreate(ctx context.Context, username, password string) (*Account, error) {
	var account Account
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&account).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.provision(ctx, username, password)
	case err != nil:
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Hash), []byte(password)) != nil {
		return nil, apperr.ErrUnauthenticated
	}
	return &account, nil
}

func (s *Service) provision(ctx context.Context, username, password string) (*Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}

	account := Account{
		Username: username,
		Hash:     string(hash),
		IsAdmin:  s.gameMaster != "" && username == s.gameMaster,
	}
	if err := s.db.WithContext(ctx).Create(&account).Error; err != nil {
		// A concurrent login for the same new name can win the insert;
		// fall back to verifying against the stored row.
		var existing Account
		if lookupErr := s.db.WithContext(ctx).Where("username = ?", username).First(&existing).Error; lookupErr == nil {
			if bcrypt.CompareHashAndPassword([]byte(existing.Hash), []byte(password)) != nil {
				return nil, apperr.ErrUnauthenticated
			}
			return &existing, nil
		}
		return nil, apperr.Wrap(apperr.ErrStorage, err)
	}

	s.logger.Info("provisioned account",
		zap.String("username", username),
		zap.Bool("game_master", account.IsAdmin))
	return &account, nil
}

// SetAdmin flips the game-master flag for an existing account.
func (s *Service) SetAdmin(ctx context.Context, username string, admin bool) error {
	res := s.db.WithContext(ctx).Model(&Account{}).
		Where("username = ?", username).
		Update("is_admin", admin)
	if res.Error != nil {
		return apperr.Wrap(apperr.ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: account %q", apperr.ErrNotFound, username)
	}
	return nil
}

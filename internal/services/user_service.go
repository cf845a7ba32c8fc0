// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/JonathanMaverick/split-chain-backend/internal/config"
	"github.com/JonathanMaverick/split-chain-backend/internal/models"
	"github.com/JonathanMaverick/split-chain-backend/internal/utils"
)

type UserService struct {
	db     *gorm.DB
	config *config.Config
}

type RegisterUserRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required,wallet_address"`
}

type LoginRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required,wallet_address"`
}

type AdminLoginRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required,wallet_address"`
	Password      string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *models.User `json:"user"`
}

func NewUserService(db *gorm.DB, config *config.Config) *UserService {
	return &UserService{
		db:     db,
		config: config,
	}
}

// RegisterUser records a wallet address on first pairing. Registering an
// address that already exists returns the existing record; the wallet
// bridge calls this on every pairing.
func (s *UserService) RegisterUser(req *RegisterUserRequest) (*models.User, error) {
	var existing models.User
	err := s.db.Where("wallet_address = ?", req.WalletAddress).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	user := &models.User{
		WalletAddress: req.WalletAddress,
		UserType:      models.UserTypeMember,
		Status:        models.UserStatusActive,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login issues tokens for a paired wallet. Ownership of the wallet is
// established by the wallet-connect pairing on the client; the backend
// threads the resulting identity explicitly through every operation.
func (s *UserService) Login(req *LoginRequest) (*AuthResponse, error) {
	user, err := s.getActiveUser(req.WalletAddress)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// AdminLogin additionally checks the admin password for the settings
// dashboard.
func (s *UserService) AdminLogin(req *AdminLoginRequest) (*AuthResponse, error) {
	user, err := s.getActiveUser(req.WalletAddress)
	if err != nil {
		return nil, err
	}
	if user.UserType != models.UserTypeAdmin {
		return nil, errors.New("not an admin account")
	}
	if err := user.CheckPassword(req.Password); err != nil {
		return nil, errors.New("invalid credentials")
	}

	return s.issueTokens(user)
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (s *UserService) RefreshToken(refreshToken string) (*AuthResponse, error) {
	walletAddress, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	user, err := s.getActiveUser(walletAddress)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// GetUser fetches one user by wallet address.
func (s *UserService) GetUser(walletAddress string) (*models.User, error) {
	return s.getActiveUser(walletAddress)
}

func (s *UserService) getActiveUser(walletAddress string) (*models.User, error) {
	var user models.User
	err := s.db.Where("wallet_address = ? AND status = ?", walletAddress, models.UserStatusActive).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (s *UserService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.WalletAddress, string(user.UserType), s.config.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(user.WalletAddress, s.config.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update last login: %w", err)
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

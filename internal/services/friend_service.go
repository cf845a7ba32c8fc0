// internal/services/friend_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/JonathanMaverick/split-chain-backend/internal/models"
)

type FriendService struct {
	db                  *gorm.DB
	notificationService *NotificationService
}

type AddFriendRequest struct {
	FriendWalletAddress string `json:"friend_wallet_address" validate:"required,wallet_address"`
	Nickname            string `json:"nickname" validate:"max=100"`
}

type UpdateFriendRequest struct {
	Nickname string `json:"nickname" validate:"required,max=100"`
}

func NewFriendService(db *gorm.DB, notificationService *NotificationService) *FriendService {
	return &FriendService{
		db:                  db,
		notificationService: notificationService,
	}
}

// AddFriend records a contact relationship from userWallet to the friend's
// wallet address with an optional nickname.
func (s *FriendService) AddFriend(userWallet string, req *AddFriendRequest) (*models.Friend, error) {
	if userWallet == req.FriendWalletAddress {
		return nil, ErrSelfFriend
	}

	var existing models.Friend
	err := s.db.Where("user_wallet_address = ? AND friend_wallet_address = ?",
		userWallet, req.FriendWalletAddress).First(&existing).Error
	if err == nil {
		return nil, ErrFriendExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing friend: %w", err)
	}

	friend := &models.Friend{
		UserWalletAddress:   userWallet,
		FriendWalletAddress: req.FriendWalletAddress,
		Nickname:            req.Nickname,
	}
	if err := s.db.Create(friend).Error; err != nil {
		return nil, fmt.Errorf("failed to add friend: %w", err)
	}

	if s.notificationService != nil {
		s.notificationService.NotifyFriendAdded(userWallet, req.FriendWalletAddress)
	}

	return friend, nil
}

// GetFriends lists a wallet's contacts.
func (s *FriendService) GetFriends(userWallet string) ([]models.Friend, error) {
	var friends []models.Friend
	err := s.db.Where("user_wallet_address = ?", userWallet).
		Order("created_at ASC").
		Find(&friends).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch friends: %w", err)
	}
	return friends, nil
}

// UpdateNickname changes the display nickname for one contact.
func (s *FriendService) UpdateNickname(userWallet, friendWallet string, req *UpdateFriendRequest) (*models.Friend, error) {
	var friend models.Friend
	err := s.db.Where("user_wallet_address = ? AND friend_wallet_address = ?",
		userWallet, friendWallet).First(&friend).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFriendNotFound
		}
		return nil, fmt.Errorf("failed to fetch friend: %w", err)
	}

	friend.Nickname = req.Nickname
	if err := s.db.Save(&friend).Error; err != nil {
		return nil, fmt.Errorf("failed to update friend: %w", err)
	}
	return &friend, nil
}

// RemoveFriend deletes one contact relationship.
func (s *FriendService) RemoveFriend(userWallet, friendWallet string) error {
	result := s.db.Where("user_wallet_address = ? AND friend_wallet_address = ?",
		userWallet, friendWallet).Delete(&models.Friend{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove friend: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFriendNotFound
	}
	return nil
}

// Directory is a snapshot of one wallet's friend nicknames. It satisfies
// the calculator's NameResolver so display-name resolution never hits the
// database per participant.
type Directory struct {
	nicknames map[string]string
}

func (d *Directory) Nickname(walletAddress string) (string, bool) {
	nickname, ok := d.nicknames[walletAddress]
	if !ok || nickname == "" {
		return "", false
	}
	return nickname, true
}

// DirectoryFor loads the friend directory for one wallet.
func (s *FriendService) DirectoryFor(userWallet string) (*Directory, error) {
	friends, err := s.GetFriends(userWallet)
	if err != nil {
		return nil, err
	}

	directory := &Directory{nicknames: make(map[string]string, len(friends))}
	for _, friend := range friends {
		directory.nicknames[friend.FriendWalletAddress] = friend.Nickname
	}
	return directory, nil
}

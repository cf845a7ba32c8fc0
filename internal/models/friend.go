// internal/models/friend.go
package models

// Friend is a contact relationship between two wallet identities with an
// optional display nickname. It only exists to render a wallet address as a
// human-readable label; bill arithmetic never consults it.
type Friend struct {
	BaseModel
	UserWalletAddress   string `json:"user_wallet_address" gorm:"size:64;not null;uniqueIndex:idx_friends_pair"`
	FriendWalletAddress string `json:"friend_wallet_address" gorm:"size:64;not null;uniqueIndex:idx_friends_pair"`
	Nickname            string `json:"nickname" gorm:"size:100"`
}

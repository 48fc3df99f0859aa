package accounts

import "time"

// Account is a player (or game-master) identity. Accounts are created on
// first successful login with an unseen name and never deleted here.
type Account struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"column:username;size:191;uniqueIndex;not null" json:"username"`
	Hash      string    `gorm:"column:hash;not null" json:"-"`
	IsAdmin   bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name.
func (Account) TableName() string {
	return "accounts"
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the resolved identity.
type LoginResponse struct {
	Token    string `json:"token"`
	Account  uint   `json:"account_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

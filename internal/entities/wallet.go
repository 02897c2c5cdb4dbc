package entities

import (
	"gorm.io/gorm"
)

// Wallet holds a per-user balance as a decimal string, e.g. "1000.00".
// Balances are only ever mutated through the invoice payment workflow and
// the wallet funding operations, which both keep the balance non-negative.
type Wallet struct {
	gorm.Model
	UserID  uint   `gorm:"uniqueIndex:idx_uq_wallet_user;NOT NULL"`
	Balance string `gorm:"type:varchar(32);NOT NULL"`
}

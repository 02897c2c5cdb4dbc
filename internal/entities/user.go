package entities

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name  string `gorm:"type:varchar(120) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci;NOT NULL"`
	Email string `gorm:"uniqueIndex:idx_uq_email;type:varchar(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci;NOT NULL"`
	Image string `gorm:"type:text CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`

	// A user may have no wallet at all. Wallets are created separately
	// and funded before any invoice can be settled against them.
	Wallet *Wallet `gorm:"foreignKey:UserID"`
}

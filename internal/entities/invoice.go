package entities

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusVoid    InvoiceStatus = "void"
)

func (i InvoiceStatus) IsValid() bool {
	switch i {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusVoid:
		return true
	}

	return false
}

// Invoice is a billing document for a contract. PaidAt is null while the
// invoice is unpaid and is set exactly once by the payment workflow. Once
// set it never changes back.
type Invoice struct {
	gorm.Model
	Number       string        `gorm:"type:varchar(32) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci;NOT NULL"`
	ContractID   uint          `gorm:"index;NOT NULL"`
	Date         time.Time     `gorm:"type:date;NOT NULL"`
	DueDate      time.Time     `gorm:"type:date;NOT NULL"`
	Subtotal     string        `gorm:"type:varchar(32);NOT NULL"`
	VatRate      float64       `gorm:"type:decimal(10,2)"`
	DiscountRate float64       `gorm:"type:decimal(10,2)"`
	Status       InvoiceStatus `gorm:"type:enum('pending', 'paid', 'void')"`
	PaidAt       sql.NullTime  `gorm:"NULL;default:NULL"`

	Contract Contract `gorm:"foreignKey:ContractID"`
}

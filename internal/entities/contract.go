package entities

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type ContractStatus string

const (
	ContractStatusPending    ContractStatus = "pending"
	ContractStatusActive     ContractStatus = "active"
	ContractStatusAccepted   ContractStatus = "accepted"
	ContractStatusTerminated ContractStatus = "terminated"
)

func (c ContractStatus) IsValid() bool {
	switch c {
	case ContractStatusPending, ContractStatusActive, ContractStatusAccepted, ContractStatusTerminated:
		return true
	}

	return false
}

// Contract is an agreement between a client and a contractor tied to a job.
// The hourly billing fields are optional as a group, but when any of them is
// present they constrain each other. See interaction.ValidateContractInput.
type Contract struct {
	gorm.Model
	Name         string         `gorm:"type:varchar(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci;NOT NULL"`
	Terms        string         `gorm:"type:text CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`
	ClientID     uint           `gorm:"index;NOT NULL"`
	ContractorID uint           `gorm:"index;NOT NULL"`
	JobID        uint           `gorm:"index;NOT NULL"`
	StartDate    time.Time      `gorm:"type:date;NOT NULL"`
	EndDate      time.Time      `gorm:"type:date;NOT NULL"`
	HourlyRate   sql.NullString `gorm:"type:varchar(32);NULL;default:NULL"`
	HoursPerWeek sql.NullInt64  `gorm:"NULL;default:NULL"`
	TotalHours   sql.NullInt64  `gorm:"NULL;default:NULL"`
	TotalCost    string         `gorm:"type:varchar(32);NOT NULL"`
	Status       ContractStatus `gorm:"type:enum('pending', 'active', 'accepted', 'terminated')"`

	Client     User `gorm:"foreignKey:ClientID"`
	Contractor User `gorm:"foreignKey:ContractorID"`
}

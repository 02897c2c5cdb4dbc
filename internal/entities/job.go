package entities

import (
	"gorm.io/gorm"
)

type Job struct {
	gorm.Model
	Name        string `gorm:"type:varchar(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci;NOT NULL"`
	Description string `gorm:"type:text CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`
	IssueUrl    string `gorm:"type:text CHARACTER SET utf8mb4 COLLATE utf8mb4_general_ci"`
	UserID      uint   `gorm:"index;NOT NULL"`
}

package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gigmarket/billing-service/internal/entities"
)

func (m *mysqlConnector) CreateUser(ctx context.Context, user *entities.User) error {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	result := m.db.WithContext(tCtx).Omit("Wallet").Create(user)

	return result.Error
}

func (m *mysqlConnector) GetUserByID(ctx context.Context, id uint) (*entities.User, error) {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	var user entities.User
	res := m.db.WithContext(tCtx).First(&user, id)

	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}

	return &user, nil
}

func (m *mysqlConnector) CreateJob(ctx context.Context, job *entities.Job) error {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	result := m.db.WithContext(tCtx).Create(job)

	return result.Error
}

func (m *mysqlConnector) GetJobByID(ctx context.Context, id uint) (*entities.Job, error) {
	tCtx, cancel := context.WithTimeout(ctx, time.Second*20)
	defer cancel()

	var job entities.Job
	res := m.db.WithContext(tCtx).First(&job, id)

	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}

	return &job, nil
}

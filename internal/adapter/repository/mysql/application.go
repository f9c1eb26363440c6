package mysql

import (
	"context"

	appDomain "pawhome-backend/internal/domain/application"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *appDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Where("application_id = ? AND application_archived = ?", applicationID, false).
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) GetByApplicationIDAny(ctx context.Context, applicationID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) FindActiveByPetAndUser(ctx context.Context, petID, userID string) (*appDomain.Application, error) {
	var out appDomain.Application
	res := r.db.WithContext(ctx).
		Where("pet_id = ? AND user_id = ? AND application_status IN ? AND application_archived = ?",
			petID, userID, []appDomain.Status{appDomain.StatusPending, appDomain.StatusApproved}, false).
		Order("created_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) List(ctx context.Context, f appDomain.ListFilter, page, limit int) ([]appDomain.Application, int64, error) {
	q := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("application_archived = ?", false)

	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.PetID != "" {
		q = q.Where("pet_id = ?", f.PetID)
	}
	if f.Status != "" {
		q = q.Where("application_status = ?", f.Status)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []appDomain.Application
	err := q.Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&out).Error
	return out, total, err
}

func (r *ApplicationRepository) RejectOtherPending(ctx context.Context, petID, keepApplicationID string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&appDomain.Application{}).
		Where("pet_id = ? AND application_id <> ? AND application_status = ? AND application_archived = ?",
			petID, keepApplicationID, appDomain.StatusPending, false).
		Update("application_status", appDomain.StatusRejected)
	return res.RowsAffected, res.Error
}

package mysql

import (
	"context"
	"strings"

	petDomain "pawhome-backend/internal/domain/pet"

	"gorm.io/gorm"
)

type PetRepository struct{ db *gorm.DB }

func NewPetRepository(db *gorm.DB) *PetRepository { return &PetRepository{db: db} }

func (r *PetRepository) Create(ctx context.Context, p *petDomain.Pet) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PetRepository) Save(ctx context.Context, p *petDomain.Pet) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PetRepository) GetByPetID(ctx context.Context, petID string) (*petDomain.Pet, error) {
	var out petDomain.Pet
	res := r.db.WithContext(ctx).
		Where("pet_id = ? AND pet_archived = ?", petID, false).
		First(&out)
	return &out, res.Error
}

func (r *PetRepository) GetByPetIDAny(ctx context.Context, petID string) (*petDomain.Pet, error) {
	var out petDomain.Pet
	res := r.db.WithContext(ctx).Where("pet_id = ?", petID).First(&out)
	return &out, res.Error
}

func (r *PetRepository) FindByPetIDs(ctx context.Context, petIDs []string) ([]petDomain.Pet, error) {
	if len(petIDs) == 0 {
		return nil, nil
	}
	var out []petDomain.Pet
	err := r.db.WithContext(ctx).
		Where("pet_id IN ? AND pet_archived = ?", petIDs, false).
		Find(&out).Error
	return out, err
}

func (r *PetRepository) List(ctx context.Context, f petDomain.ListFilter, page, limit int) ([]petDomain.Pet, int64, error) {
	q := r.db.WithContext(ctx).Model(&petDomain.Pet{}).Where("pet_archived = ?", false)

	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(pet_name) LIKE ? OR LOWER(pet_breed) LIKE ?", pattern, pattern)
	}
	if f.Species != "" && f.Species != "All" {
		q = q.Where("pet_species = ?", f.Species)
	}
	if b := strings.TrimSpace(f.Breed); b != "" {
		q = q.Where("LOWER(pet_breed) LIKE ?", "%"+strings.ToLower(b)+"%")
	}
	if f.MinAge != nil {
		q = q.Where("pet_age >= ?", *f.MinAge)
	}
	if f.MaxAge != nil {
		q = q.Where("pet_age <= ?", *f.MaxAge)
	}
	if f.Status != "" {
		q = q.Where("pet_status = ?", f.Status)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []petDomain.Pet
	err := q.Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&out).Error
	return out, total, err
}

package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/sample"
)

type sampleRepository struct {
	db *gorm.DB
}

func NewSampleRepository(db *gorm.DB) sample.Repository {
	return &sampleRepository{db: db}
}

func (r *sampleRepository) Create(ctx context.Context, s *sample.Sample) error {
	model := &SampleModel{Text: s.Text, CreatedAt: s.CreatedAt}
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return dbError("create sample", err)
	}
	s.ID = model.ID
	return nil
}

func (r *sampleRepository) FindByID(ctx context.Context, id uint) (*sample.Sample, error) {
	var model SampleModel
	if err := dbFrom(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sample.ErrSampleNotFound
		}
		return nil, dbError("find sample", err)
	}
	return &sample.Sample{ID: model.ID, Text: model.Text, CreatedAt: model.CreatedAt}, nil
}

func (r *sampleRepository) List(ctx context.Context) ([]*sample.Sample, error) {
	var models []SampleModel
	if err := dbFrom(ctx, r.db).Order("id ASC").Find(&models).Error; err != nil {
		return nil, dbError("list samples", err)
	}

	out := make([]*sample.Sample, len(models))
	for i, m := range models {
		out[i] = &sample.Sample{ID: m.ID, Text: m.Text, CreatedAt: m.CreatedAt}
	}
	return out, nil
}

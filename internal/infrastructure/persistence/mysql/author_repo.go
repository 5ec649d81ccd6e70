package mysql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/author"
)

type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := toAuthorModel(a)
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return dbError("create author", err)
	}
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *authorRepository) FindByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	var model AuthorModel
	err := dbFrom(ctx, r.db).Where("id = ?", id.String()).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, dbError("find author", err)
	}
	return toAuthorEntity(&model), nil
}

func (r *authorRepository) List(ctx context.Context) ([]*author.Author, error) {
	var models []AuthorModel
	err := dbFrom(ctx, r.db).Order("surname ASC, forename ASC").Find(&models).Error
	if err != nil {
		return nil, dbError("list authors", err)
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// Update 只更新可编辑字段
func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	result := dbFrom(ctx, r.db).Model(&AuthorModel{}).
		Where("id = ?", a.ID.String()).
		Updates(map[string]interface{}{
			"forename":   a.Forename,
			"surname":    a.Surname,
			"pen_name":   a.PenName,
			"biography":  a.Biography,
			"updated_at": a.UpdatedAt,
		})
	if result.Error != nil {
		return dbError("update author", result.Error)
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

// Delete 软删除
func (r *authorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := dbFrom(ctx, r.db).Where("id = ?", id.String()).Delete(&AuthorModel{})
	if result.Error != nil {
		return dbError("delete author", result.Error)
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

func toAuthorModel(a *author.Author) *AuthorModel {
	return &AuthorModel{
		ID:        a.ID.String(),
		Forename:  a.Forename,
		Surname:   a.Surname,
		PenName:   a.PenName,
		Biography: a.Biography,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toAuthorEntity(model *AuthorModel) *author.Author {
	id, _ := uuid.Parse(model.ID)
	return &author.Author{
		ID:        id,
		Forename:  model.Forename,
		Surname:   model.Surname,
		PenName:   model.PenName,
		Biography: model.Biography,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

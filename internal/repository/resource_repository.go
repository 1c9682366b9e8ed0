package repository

import (
	"context"

	"study-assistant/internal/model"

	"gorm.io/gorm"
)

// ResourceRepository 定义了学习资源目录的读取与初始化操作。
type ResourceRepository interface {
	List(ctx context.Context) ([]model.StudyResource, error)
	// SeedIfEmpty 仅在表为空时写入 defaults，返回是否实际写入。
	SeedIfEmpty(ctx context.Context, defaults []model.StudyResource) (bool, error)
}

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository 创建一个新的 ResourceRepository 实例。
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

// List 返回全部资源，最新创建的排在最前。
func (r *resourceRepository) List(ctx context.Context) ([]model.StudyResource, error) {
	var resources []model.StudyResource
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepository) SeedIfEmpty(ctx context.Context, defaults []model.StudyResource) (bool, error) {
	seeded := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.StudyResource{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 || len(defaults) == 0 {
			return nil
		}
		// 复制一份，避免回写自增 ID 到调用方的切片
		rows := make([]model.StudyResource, len(defaults))
		copy(rows, defaults)
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		seeded = true
		return nil
	})
	return seeded, err
}

package mysql

import (
	"midday/internal/model"

	"gorm.io/gorm"
)

type ContestRepository struct {
	DB *gorm.DB
}

func (r *ContestRepository) Create(c *model.Contest) error {
	return r.DB.Create(c).Error
}

func (r *ContestRepository) List(offset, limit int) ([]model.Contest, error) {
	var list []model.Contest
	err := r.DB.Order("id desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

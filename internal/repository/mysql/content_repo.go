package mysql

import (
	"errors"

	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("record not found")

// ContentRepository 八个内容管理界面共用的 CRUD 仓储。
// 原版每个实体各复制一份表单/列表逻辑，还出现过两个版本漂移的同名页面，
// 这里收敛成一个按实体参数化的实现。
type ContentRepository[T any] struct {
	DB *gorm.DB
}

func (r *ContentRepository[T]) Create(item *T) error {
	return r.DB.Create(item).Error
}

func (r *ContentRepository[T]) FindByID(id uint64) (*T, error) {
	var item T
	err := r.DB.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	return &item, err
}

// Save 整行写回：编辑流程先 FindByID 再改字段再 Save，
// 未选择新媒体时 URL 字段原样保留
func (r *ContentRepository[T]) Save(item *T) error {
	return r.DB.Save(item).Error
}

func (r *ContentRepository[T]) Delete(id uint64) error {
	var item T
	tx := r.DB.Delete(&item, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// List 按插入序倒排，最新的在最前
func (r *ContentRepository[T]) List(offset, limit int) ([]T, error) {
	var list []T
	err := r.DB.Model(new(T)).Order("id desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *ContentRepository[T]) Count() (int64, error) {
	var n int64
	err := r.DB.Model(new(T)).Count(&n).Error
	return n, err
}

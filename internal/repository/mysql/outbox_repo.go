package mysql

import (
	"context"

	"midday/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

// ListPending 按批量大小取待投递事件
func (r *OutboxRepository) ListPending(ctx context.Context, limit int) ([]model.MembershipOutbox, error) {
	var rows []model.MembershipOutbox
	err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id asc").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).
		Model(&model.MembershipOutbox{}).
		Where("id = ?", id).
		Update("status", 1).Error
}

// MarkRetry 失败累加 retry，超过上限置为 failed
func (r *OutboxRepository) MarkRetry(ctx context.Context, id uint64, maxRetry int) error {
	return r.DB.WithContext(ctx).Exec(
		`UPDATE membership_outbox
		 SET status = CASE WHEN retry + 1 >= ? THEN 2 ELSE 0 END, retry = retry + 1
		 WHERE id = ?`, maxRetry, id).Error
}

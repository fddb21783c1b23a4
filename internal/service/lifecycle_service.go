package service

import (
	"context"

	"midday/internal/model"
	"midday/internal/pkg"
	"midday/internal/repository/mysql"

	"gorm.io/gorm"
)

// LifecycleService 成员审核流：pending→approved→executive，
// removed 可从任一在册状态进入且不可逆
type LifecycleService struct {
	repo *mysql.MemberRepository
}

func NewLifecycleService(db *gorm.DB) *LifecycleService {
	return &LifecycleService{
		repo: &mysql.MemberRepository{DB: db},
	}
}

func (s *LifecycleService) transition(ctx context.Context, id uint64, to string) error {
	event, err := s.repo.Transition(ctx, id, to)
	if err != nil {
		return err
	}
	pkg.MemberTransitions.WithLabelValues(event).Inc()
	return nil
}

// Approve 审核通过，之后才会出现在公开成员名录
func (s *LifecycleService) Approve(ctx context.Context, id uint64) error {
	return s.transition(ctx, id, model.StatusApproved)
}

// Promote 晋升为执行成员。rating/contributions 仅供管理员参考，不设硬性门槛
func (s *LifecycleService) Promote(ctx context.Context, id uint64) error {
	return s.transition(ctx, id, model.StatusExecutive)
}

// Remove 移除会籍：只改状态不删行
func (s *LifecycleService) Remove(ctx context.Context, id uint64) error {
	return s.transition(ctx, id, model.StatusRemoved)
}

// ListPending 审核队列
func (s *LifecycleService) ListPending(page, size int) ([]model.MemberProfile, error) {
	offset, limit := normalizePage(page, size)
	return s.repo.ListByStatus([]string{model.StatusPending}, offset, limit)
}

// ListApproved 晋升界面的数据源：只有 approved 能被晋升
func (s *LifecycleService) ListApproved(page, size int) ([]model.MemberProfile, error) {
	offset, limit := normalizePage(page, size)
	return s.repo.ListByStatus([]string{model.StatusApproved}, offset, limit)
}

// ListActive 移除界面的数据源：approved 和 executive 都可被移除
func (s *LifecycleService) ListActive(page, size int) ([]model.MemberProfile, error) {
	offset, limit := normalizePage(page, size)
	return s.repo.ListByStatus(model.ActiveStatuses(), offset, limit)
}

func normalizePage(page, size int) (offset, limit int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	return (page - 1) * size, size
}

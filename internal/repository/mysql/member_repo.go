package mysql

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"midday/internal/model"

	"gorm.io/gorm"
)

var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrInvalidTransition = errors.New("transition not allowed")
)

type MemberRepository struct {
	DB *gorm.DB
}

func (r *MemberRepository) Create(p *model.MemberProfile) error {
	return r.DB.Create(p).Error
}

func (r *MemberRepository) FindByID(id uint64) (*model.MemberProfile, error) {
	var p model.MemberProfile
	err := r.DB.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	return &p, err
}

func (r *MemberRepository) FindByEmail(email string) (*model.MemberProfile, error) {
	var p model.MemberProfile
	err := r.DB.Where("email = ?", email).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	return &p, err
}

// ListByStatus 审核/晋升/移除界面的数据源，各自只看对应状态
func (r *MemberRepository) ListByStatus(statuses []string, offset, limit int) ([]model.MemberProfile, error) {
	var list []model.MemberProfile
	err := r.DB.Where("status IN ?", statuses).
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

// SearchActive 公开成员名录：只返回 approved/executive，
// 关键字模糊匹配 name/session/specialty
func (r *MemberRepository) SearchActive(keyword string, offset, limit int) ([]model.MemberProfile, int64, error) {
	q := r.DB.Model(&model.MemberProfile{}).
		Where("status IN ?", model.ActiveStatuses())
	if keyword != "" {
		like := "%" + keyword + "%"
		q = q.Where("name LIKE ? OR session LIKE ? OR specialty LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.MemberProfile
	err := q.Order("id desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

// UpdateContact 只允许改档案字段，status 永远不走这里
func (r *MemberRepository) UpdateContact(id uint64, fields map[string]any) error {
	delete(fields, "status")
	return r.DB.Model(&model.MemberProfile{}).
		Where("id = ?", id).
		Updates(fields).Error
}

type transitionPayload struct {
	MemberID uint64    `json:"member_id"`
	Email    string    `json:"email"`
	From     string    `json:"from"`
	To       string    `json:"to"`
	Event    string    `json:"event"`
	At       time.Time `json:"at"`
}

// Transition 按迁移表改状态，状态行和 outbox 事件同事务提交。
// 更新带 status 守卫：两个管理员并发操作同一成员时后到的一方落空。
func (r *MemberRepository) Transition(ctx context.Context, id uint64, to string) (string, error) {
	var event string
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.MemberProfile
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return err
		}

		ev, ok := model.TransitionEvent(p.Status, to)
		if !ok {
			return ErrInvalidTransition
		}

		res := tx.Model(&model.MemberProfile{}).
			Where("id = ? AND status = ?", id, p.Status).
			Update("status", to)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// 读到的状态已被并发修改
			return ErrInvalidTransition
		}

		payload, err := json.Marshal(transitionPayload{
			MemberID: p.ID,
			Email:    p.Email,
			From:     p.Status,
			To:       to,
			Event:    ev,
			At:       time.Now(),
		})
		if err != nil {
			return err
		}

		if err := tx.Create(&model.MembershipOutbox{
			EventType: ev,
			MemberID:  p.ID,
			Payload:   string(payload),
		}).Error; err != nil {
			return err
		}

		event = ev
		return nil
	})
	return event, err
}

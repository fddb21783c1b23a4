package service

import (
	"context"
	"log"
	"time"

	"midday/internal/model"
	"midday/internal/pkg"
	"midday/internal/repository/mysql"

	"gorm.io/gorm"
)

type Sender func(ctx context.Context, ob *model.MembershipOutbox) error

// OutboxRelayer 定时把 membership_outbox 里的待投递事件送给 sender，
// 状态变更的事务已经落库，这里只负责异步出口
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	maxRetry  int
	sender    Sender
}

func NewOutboxRelayer(db *gorm.DB, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: db},
		batchSize: 200,
		interval:  time.Second,
		maxRetry:  5,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			pkg.OutboxDeliveries.WithLabelValues("error").Inc()
			_ = r.repo.MarkRetry(ctx, ob.ID, r.maxRetry)
			continue
		}
		pkg.OutboxDeliveries.WithLabelValues("ok").Inc()
		_ = r.repo.MarkSent(ctx, ob.ID)
	}
}

// KafkaSender 事件按 member id 分区送往 kafka
func KafkaSender(p *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.MembershipOutbox) error {
		return p.Send(ctx, pkg.MakeKeyFromID(ob.MemberID), []byte(ob.Payload))
	}
}

// LogSender 未配置 kafka 时的默认出口：只打日志
func LogSender(ctx context.Context, ob *model.MembershipOutbox) error {
	log.Printf("OUTBOX SEND type=%s member=%d payload=%s", ob.EventType, ob.MemberID, ob.Payload)
	return nil
}

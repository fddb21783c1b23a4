package service

import (
	"context"
	"errors"
	"testing"

	"midday/internal/model"

	"gorm.io/gorm"
)

func seedOutbox(t *testing.T, db *gorm.DB, event string, memberID uint64) *model.MembershipOutbox {
	t.Helper()
	ob := &model.MembershipOutbox{
		EventType: event,
		MemberID:  memberID,
		Payload:   `{"member_id":1}`,
	}
	if err := db.Create(ob).Error; err != nil {
		t.Fatal(err)
	}
	return ob
}

func TestRelayerMarksSent(t *testing.T) {
	db := openTestDB(t)
	seedOutbox(t, db, model.EventApprove, 1)
	seedOutbox(t, db, model.EventPromote, 1)

	var delivered []string
	relayer := NewOutboxRelayer(db, func(ctx context.Context, ob *model.MembershipOutbox) error {
		delivered = append(delivered, ob.EventType)
		return nil
	})
	relayer.drainOnce(context.Background())

	if len(delivered) != 2 {
		t.Fatalf("delivered = %v", delivered)
	}
	// 按 id 升序投递，保持事件顺序
	if delivered[0] != model.EventApprove || delivered[1] != model.EventPromote {
		t.Errorf("delivery order = %v", delivered)
	}

	var pending int64
	db.Model(&model.MembershipOutbox{}).Where("status = 0").Count(&pending)
	if pending != 0 {
		t.Errorf("pending rows after drain = %d", pending)
	}

	// 第二轮不再重复投递
	relayer.drainOnce(context.Background())
	if len(delivered) != 2 {
		t.Errorf("redelivered: %v", delivered)
	}
}

func TestRelayerRetriesThenGivesUp(t *testing.T) {
	db := openTestDB(t)
	ob := seedOutbox(t, db, model.EventRemove, 2)

	relayer := NewOutboxRelayer(db, func(ctx context.Context, _ *model.MembershipOutbox) error {
		return errors.New("broker down")
	})

	// maxRetry 次失败后行进入 failed，不再参与投递
	for i := 0; i < relayer.maxRetry; i++ {
		relayer.drainOnce(context.Background())
	}

	var got model.MembershipOutbox
	db.First(&got, ob.ID)
	if got.Status != 2 {
		t.Errorf("status = %d, want 2 (failed)", got.Status)
	}
	if got.Retry != relayer.maxRetry {
		t.Errorf("retry = %d, want %d", got.Retry, relayer.maxRetry)
	}

	rows, err := relayer.repo.ListPending(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("failed row still pending: %+v", rows)
	}
}

func TestRelayerTransientFailureRecovers(t *testing.T) {
	db := openTestDB(t)
	seedOutbox(t, db, model.EventApprove, 3)

	attempts := 0
	relayer := NewOutboxRelayer(db, func(ctx context.Context, _ *model.MembershipOutbox) error {
		attempts++
		if attempts == 1 {
			return errors.New("timeout")
		}
		return nil
	})

	relayer.drainOnce(context.Background())
	relayer.drainOnce(context.Background())

	var got model.MembershipOutbox
	db.First(&got)
	if got.Status != 1 {
		t.Errorf("status = %d, want 1 (sent)", got.Status)
	}
	if got.Retry != 1 {
		t.Errorf("retry = %d, want 1", got.Retry)
	}
}

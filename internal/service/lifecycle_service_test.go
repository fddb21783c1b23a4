package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"midday/internal/model"
	"midday/internal/repository/mysql"
)

func TestApprovePendingMember(t *testing.T) {
	db := openTestDB(t)
	svc := NewLifecycleService(db)
	p := seedMember(t, db, "John Doe", "john@example.com", model.StatusPending)

	if err := svc.Approve(context.Background(), p.ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	var got model.MemberProfile
	if err := db.First(&got, p.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.Status != model.StatusApproved {
		t.Errorf("status = %q, want %q", got.Status, model.StatusApproved)
	}

	// 事件和状态同事务写入
	var ob model.MembershipOutbox
	if err := db.Where("member_id = ?", p.ID).First(&ob).Error; err != nil {
		t.Fatalf("outbox row missing: %v", err)
	}
	if ob.EventType != model.EventApprove {
		t.Errorf("event = %q, want %q", ob.EventType, model.EventApprove)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(ob.Payload), &payload); err != nil {
		t.Fatalf("payload not json: %v", err)
	}
	if payload["from"] != model.StatusPending || payload["to"] != model.StatusApproved {
		t.Errorf("payload from/to = %v/%v", payload["from"], payload["to"])
	}
}

func TestPromoteRequiresApproved(t *testing.T) {
	db := openTestDB(t)
	svc := NewLifecycleService(db)
	p := seedMember(t, db, "Jane Smith", "jane@example.com", model.StatusPending)

	// pending 不能直接晋升
	err := svc.Promote(context.Background(), p.ID)
	if !errors.Is(err, mysql.ErrInvalidTransition) {
		t.Fatalf("promote pending: err = %v, want ErrInvalidTransition", err)
	}

	var got model.MemberProfile
	db.First(&got, p.ID)
	if got.Status != model.StatusPending {
		t.Errorf("failed transition must not mutate status, got %q", got.Status)
	}

	if err := svc.Approve(context.Background(), p.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.Promote(context.Background(), p.ID); err != nil {
		t.Fatalf("promote approved: %v", err)
	}

	db.First(&got, p.ID)
	if got.Status != model.StatusExecutive {
		t.Errorf("status = %q, want %q", got.Status, model.StatusExecutive)
	}
}

func TestRemoveIsTerminal(t *testing.T) {
	db := openTestDB(t)
	svc := NewLifecycleService(db)
	ctx := context.Background()

	approved := seedMember(t, db, "A", "a@example.com", model.StatusApproved)
	executive := seedMember(t, db, "B", "b@example.com", model.StatusExecutive)

	if err := svc.Remove(ctx, approved.ID); err != nil {
		t.Fatalf("remove approved: %v", err)
	}
	if err := svc.Remove(ctx, executive.ID); err != nil {
		t.Fatalf("remove executive: %v", err)
	}

	// 移除是状态翻转，不删行
	var count int64
	db.Model(&model.MemberProfile{}).Count(&count)
	if count != 2 {
		t.Errorf("member rows = %d, want 2", count)
	}

	// removed 没有出口
	if err := svc.Approve(ctx, approved.ID); !errors.Is(err, mysql.ErrInvalidTransition) {
		t.Errorf("re-approve removed: err = %v, want ErrInvalidTransition", err)
	}
}

func TestTransitionMissingMember(t *testing.T) {
	db := openTestDB(t)
	svc := NewLifecycleService(db)

	err := svc.Approve(context.Background(), 9999)
	if !errors.Is(err, mysql.ErrMemberNotFound) {
		t.Fatalf("err = %v, want ErrMemberNotFound", err)
	}
}

func TestPromotionPoolOnlyApproved(t *testing.T) {
	db := openTestDB(t)
	svc := NewLifecycleService(db)

	seedMember(t, db, "P", "p@example.com", model.StatusPending)
	seedMember(t, db, "A", "a@example.com", model.StatusApproved)
	seedMember(t, db, "E", "e@example.com", model.StatusExecutive)
	seedMember(t, db, "R", "r@example.com", model.StatusRemoved)

	pool, err := svc.ListApproved(1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(pool) != 1 || pool[0].Email != "a@example.com" {
		t.Errorf("promotion pool = %v, want only the approved member", pool)
	}

	active, err := svc.ListActive(1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 2 {
		t.Errorf("removal pool size = %d, want 2", len(active))
	}

	pending, err := svc.ListPending(1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 || pending[0].Email != "p@example.com" {
		t.Errorf("approval queue = %v, want only the pending member", pending)
	}
}

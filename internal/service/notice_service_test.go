package service

import (
	"errors"
	"testing"

	"midday/internal/repository/mysql"
)

// 完整走一遍公告的增删改查
func TestNoticeLifecycle(t *testing.T) {
	db := openTestDB(t)
	svc := NewNoticeService(db)

	n, err := svc.Create(NoticeInput{
		Date:        "2026-08-20",
		Title:       "Weekly contest postponed",
		Description: "Moved to next Friday due to exams.",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if n.ID == 0 {
		t.Fatal("create did not assign an id")
	}

	list, err := svc.List(1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Title != "Weekly contest postponed" {
		t.Fatalf("list after create = %+v", list)
	}

	updated, err := svc.Update(n.ID, NoticeInput{
		Date:  "2026-08-21",
		Title: "Weekly contest rescheduled",
		Link:  "https://example.com/contest",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Weekly contest rescheduled" || updated.Link != "https://example.com/contest" {
		t.Errorf("update result = %+v", updated)
	}

	if err := svc.Delete(n.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ = svc.List(1, 20)
	if len(list) != 0 {
		t.Errorf("list after delete = %+v, want empty", list)
	}

	// 再删一次应报不存在
	if err := svc.Delete(n.ID); !errors.Is(err, mysql.ErrRecordNotFound) {
		t.Errorf("double delete: err = %v, want ErrRecordNotFound", err)
	}
}

func TestNoticeCreateRequiresDateAndTitle(t *testing.T) {
	db := openTestDB(t)
	svc := NewNoticeService(db)

	if _, err := svc.Create(NoticeInput{Title: "no date"}); err == nil {
		t.Error("create without date should fail")
	}
	if _, err := svc.Create(NoticeInput{Date: "2026-08-20"}); err == nil {
		t.Error("create without title should fail")
	}

	list, _ := svc.List(1, 20)
	if len(list) != 0 {
		t.Errorf("rejected inputs must not persist, got %+v", list)
	}
}

package service

import (
	"errors"
	"testing"
	"time"

	"midday/internal/model"
)

func validContestInput() ContestInput {
	return ContestInput{
		Name:              "Weekly Long #12",
		Topic:             "Dynamic Programming",
		Type:              model.ContestWeeklyLong,
		Status:            model.ContestUpcoming,
		Difficulty:        model.DifficultyMedium,
		LearningResources: []string{"https://cp-algorithms.com", "https://usaco.guide"},
		StartTime:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndTime:           time.Date(2026, 1, 3, 2, 30, 0, 0, time.UTC),
	}
}

func TestContestCreateAndDuration(t *testing.T) {
	db := openTestDB(t)
	svc := NewContestService(db)

	if _, err := svc.Create(validContestInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	views, err := svc.List(1, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(views) != 1 {
		t.Fatalf("views = %d rows", len(views))
	}
	if views[0].Duration != "2d 2h 30m" {
		t.Errorf("duration = %q, want %q", views[0].Duration, "2d 2h 30m")
	}
}

func TestContestRejectsBadTimes(t *testing.T) {
	db := openTestDB(t)
	svc := NewContestService(db)

	in := validContestInput()
	in.EndTime = in.StartTime
	if _, err := svc.Create(in); !errors.Is(err, ErrContestTimes) {
		t.Errorf("end == start: err = %v, want ErrContestTimes", err)
	}

	in = validContestInput()
	in.EndTime = in.StartTime.Add(-time.Hour)
	if _, err := svc.Create(in); !errors.Is(err, ErrContestTimes) {
		t.Errorf("end < start: err = %v, want ErrContestTimes", err)
	}

	var count int64
	db.Model(&model.Contest{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected contests must not persist, rows = %d", count)
	}
}

func TestContestResourceBounds(t *testing.T) {
	db := openTestDB(t)
	svc := NewContestService(db)

	in := validContestInput()
	in.LearningResources = []string{"https://one.example"}
	if _, err := svc.Create(in); !errors.Is(err, ErrContestResources) {
		t.Errorf("1 resource: err = %v, want ErrContestResources", err)
	}

	in = validContestInput()
	in.LearningResources = []string{"a", "b", "c", "d"}
	if _, err := svc.Create(in); !errors.Is(err, ErrContestResources) {
		t.Errorf("4 resources: err = %v, want ErrContestResources", err)
	}

	// 空串剔除后不足 2 条同样拒绝
	in = validContestInput()
	in.LearningResources = []string{"https://one.example", "", ""}
	if _, err := svc.Create(in); !errors.Is(err, ErrContestResources) {
		t.Errorf("1 non-empty resource: err = %v, want ErrContestResources", err)
	}
}

func TestContestEnumValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewContestService(db)

	in := validContestInput()
	in.Type = "marathon"
	if _, err := svc.Create(in); !errors.Is(err, ErrContestEnum) {
		t.Errorf("bad type: err = %v, want ErrContestEnum", err)
	}

	in = validContestInput()
	in.Difficulty = "impossible"
	if _, err := svc.Create(in); !errors.Is(err, ErrContestEnum) {
		t.Errorf("bad difficulty: err = %v, want ErrContestEnum", err)
	}
}

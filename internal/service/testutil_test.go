package service

import (
	"errors"
	"fmt"
	"testing"

	"midday/internal/model"
	"midday/internal/storage"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.MemberProfile{},
		&model.MembershipOutbox{},
		&model.Contest{},
		&model.Achievement{},
		&model.ProudMention{},
		&model.GalleryItem{},
		&model.Notice{},
		&model.AboutEntry{},
		&model.Executive{},
		&model.SeniorExecutive{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// fakeUploader 可控的上传桩
type fakeUploader struct {
	fail  bool
	calls int
}

func (f *fakeUploader) Upload(data []byte, filename string) (*storage.UploadResult, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("simulated upload failure")
	}
	return &storage.UploadResult{
		PublicID:  "test/" + filename,
		SecureURL: fmt.Sprintf("https://cdn.test/%s", filename),
	}, nil
}

func seedMember(t *testing.T, db *gorm.DB, name, email, status string) *model.MemberProfile {
	t.Helper()
	p := &model.MemberProfile{
		Name:   name,
		Email:  email,
		Status: status,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed member: %v", err)
	}
	return p
}

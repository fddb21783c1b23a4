package service

import (
	"strings"
	"testing"

	"midday/internal/model"
)

func TestGalleryUploadThenLink(t *testing.T) {
	db := openTestDB(t)
	up := &fakeUploader{}
	svc := NewGalleryService(db, up)

	item, err := svc.Create(GalleryInput{Title: "Orientation 2026"}, []byte("jpegdata"), "orientation.jpg")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if up.calls != 1 {
		t.Errorf("uploader calls = %d, want 1", up.calls)
	}
	if !strings.HasPrefix(item.MediaURL, "https://cdn.test/") {
		t.Errorf("media url = %q", item.MediaURL)
	}
	if item.MediaType != model.MediaImage {
		t.Errorf("media type = %q, want %q", item.MediaType, model.MediaImage)
	}
}

// 上传失败时整个创建中止，数据库里不能出现半截记录
func TestGalleryUploadFailureAbortsCreate(t *testing.T) {
	db := openTestDB(t)
	svc := NewGalleryService(db, &fakeUploader{fail: true})

	_, err := svc.Create(GalleryInput{Title: "Broken"}, []byte("data"), "broken.png")
	if err == nil {
		t.Fatal("create with failing upload should error")
	}

	var count int64
	db.Model(&model.GalleryItem{}).Count(&count)
	if count != 0 {
		t.Errorf("gallery rows = %d, want 0", count)
	}
}

func TestGalleryUpdateKeepsMediaWhenNoneGiven(t *testing.T) {
	db := openTestDB(t)
	svc := NewGalleryService(db, &fakeUploader{})

	item, err := svc.Create(GalleryInput{Title: "Old"}, []byte("v"), "clip.mp4")
	if err != nil {
		t.Fatal(err)
	}
	if item.MediaType != model.MediaVideo {
		t.Fatalf("media type = %q, want %q", item.MediaType, model.MediaVideo)
	}
	oldURL := item.MediaURL

	// 没给新媒体，URL 和类型保持不变
	updated, err := svc.Update(item.ID, GalleryInput{Title: "New title"}, nil, "")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.MediaURL != oldURL || updated.MediaType != model.MediaVideo {
		t.Errorf("media after text-only update = %q/%q", updated.MediaURL, updated.MediaType)
	}
	if updated.Title != "New title" {
		t.Errorf("title = %q", updated.Title)
	}
}

func TestGalleryNoUploaderConfigured(t *testing.T) {
	db := openTestDB(t)
	svc := NewGalleryService(db, nil)

	// 带媒体但没配存储，直接报配置错误
	if _, err := svc.Create(GalleryInput{Title: "x"}, []byte("d"), "x.jpg"); err == nil {
		t.Error("create with media but nil uploader should fail")
	}

	// 纯文本项不需要存储
	if _, err := svc.Create(GalleryInput{Title: "text only"}, nil, ""); err != nil {
		t.Errorf("text-only create: %v", err)
	}
}

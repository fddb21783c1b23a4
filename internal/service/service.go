package service

import (
	"errors"
	"fmt"

	"midday/internal/pkg"
	"midday/internal/storage"
)

var ErrStorageNotConfigured = errors.New("media storage not configured")

// Uploader 媒体上传的最小接口，测试时可替换
type Uploader interface {
	Upload(data []byte, filename string) (*storage.UploadResult, error)
}

// uploadIfPresent 先上传后落库的前半段：没有文件返回空串，
// 上传失败直接报错，调用方必须放弃后续的数据库写入
func uploadIfPresent(u Uploader, data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if u == nil {
		return "", ErrStorageNotConfigured
	}
	res, err := u.Upload(data, filename)
	if err != nil {
		pkg.MediaUploads.WithLabelValues("error").Inc()
		return "", fmt.Errorf("upload failed: %w", err)
	}
	pkg.MediaUploads.WithLabelValues("ok").Inc()
	return res.SecureURL, nil
}

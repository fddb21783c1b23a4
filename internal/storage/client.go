// Package storage 封装媒体上传：先上传拿到公开 URL，再由调用方落库。
package storage

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client 通过 Cloudinary 风格的 REST API 上传图片/视频。
type Client struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	BaseURL   string // 测试时可指向 httptest server
	HTTP      *http.Client
}

func New(cloudName, apiKey, apiSecret, folder string) *Client {
	return &Client{
		CloudName: cloudName,
		APIKey:    apiKey,
		APISecret: apiSecret,
		Folder:    folder,
		BaseURL:   "https://api.cloudinary.com",
		HTTP:      &http.Client{Timeout: 30 * time.Second},
	}
}

// UploadResult 上传成功后的响应。
type UploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Format    string `json:"format"`
	Bytes     int    `json:"bytes"`
}

var videoExts = map[string]bool{
	".mp4": true, ".mov": true, ".webm": true, ".mkv": true, ".avi": true,
}

// ResourceType 按扩展名区分 image / video。
func ResourceType(filename string) string {
	if videoExts[strings.ToLower(path.Ext(filename))] {
		return "video"
	}
	return "image"
}

// ObjectName 生成防碰撞对象名：uuid + 原扩展名。
func ObjectName(filename string) string {
	return uuid.NewString() + strings.ToLower(path.Ext(filename))
}

// Upload 上传文件内容并返回公开 URL。失败时调用方不得写任何引用该媒体的记录。
func (c *Client) Upload(data []byte, filename string) (*UploadResult, error) {
	objectName := ObjectName(filename)
	publicID := strings.TrimSuffix(objectName, path.Ext(objectName))

	params := map[string]string{
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
		"api_key":   c.APIKey,
		"public_id": publicID,
	}
	if c.Folder != "" {
		params["folder"] = c.Folder
	}
	params["signature"] = c.sign(params)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range params {
		_ = w.WriteField(k, v)
	}
	part, err := w.CreateFormFile("file", objectName)
	if err != nil {
		return nil, fmt.Errorf("storage: create form file failed: %w", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("storage: write file failed: %w", err)
	}
	w.Close()

	url := fmt.Sprintf("%s/v1_1/%s/%s/upload", c.BaseURL, c.CloudName, ResourceType(filename))
	req, err := http.NewRequest(http.MethodPost, url, &buf)
	if err != nil {
		return nil, fmt.Errorf("storage: create request failed: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("storage: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("storage: upload failed (%d): %s", resp.StatusCode, string(body))
	}

	var result UploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("storage: decode response failed: %w", err)
	}
	return &result, nil
}

// sign 计算请求签名，api_key 和 file 不参与
func (c *Client) sign(params map[string]string) string {
	excludeKeys := map[string]bool{"api_key": true, "file": true, "resource_type": true}

	pairs := make([]string, 0, len(params))
	for k, v := range params {
		if !excludeKeys[k] && v != "" {
			pairs = append(pairs, k+"="+v)
		}
	}
	sort.Strings(pairs)

	payload := strings.Join(pairs, "&") + c.APISecret
	h := sha1.New()
	h.Write([]byte(payload))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Package handler HTTP 入口：绑定参数、调服务、映射错误码。
package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"midday/internal/repository/mysql"
	"midday/internal/service"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return 0, false
	}
	return id, true
}

func pageQuery(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "20"))
	return page, size
}

// formFile 读取可选的上传文件；没传返回空切片
func formFile(c *gin.Context, field string) ([]byte, string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", nil
		}
		return nil, "", err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Filename, nil
}

// fail 统一的服务错误出口
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, mysql.ErrRecordNotFound),
		errors.Is(err, mysql.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
	case errors.Is(err, mysql.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrNotProfileOwner):
		c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrStorageNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"msg": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	}
}

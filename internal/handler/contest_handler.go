package handler

import (
	"net/http"
	"time"

	"midday/internal/service"

	"github.com/gin-gonic/gin"
)

type ContestHandler struct {
	contests *service.ContestService
}

func NewContestHandler(contests *service.ContestService) *ContestHandler {
	return &ContestHandler{contests: contests}
}

type contestReq struct {
	Name              string   `json:"name" binding:"required"`
	Topic             string   `json:"topic"`
	Type              string   `json:"type" binding:"required"`
	Status            string   `json:"status" binding:"required"`
	Difficulty        string   `json:"difficulty" binding:"required"`
	LearningResources []string `json:"learning_resources" binding:"required"`
	StartTime         string   `json:"start_time" binding:"required"`
	EndTime           string   `json:"end_time" binding:"required"`
}

// Create 时间格式 RFC3339；时长不收，读取时由起止时间推出
func (h *ContestHandler) Create(c *gin.Context) {
	var req contestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid start_time"})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid end_time"})
		return
	}

	contest, err := h.contests.Create(service.ContestInput{
		Name:              req.Name,
		Topic:             req.Topic,
		Type:              req.Type,
		Status:            req.Status,
		Difficulty:        req.Difficulty,
		LearningResources: req.LearningResources,
		StartTime:         start,
		EndTime:           end,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, contest)
}

func (h *ContestHandler) List(c *gin.Context) {
	page, size := pageQuery(c)
	views, err := h.contests.List(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contests": views})
}

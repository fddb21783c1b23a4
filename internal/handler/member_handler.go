package handler

import (
	"net/http"
	"strconv"

	"midday/internal/service"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	members   *service.MemberService
	lifecycle *service.LifecycleService
}

func NewMemberHandler(members *service.MemberService, lifecycle *service.LifecycleService) *MemberHandler {
	return &MemberHandler{members: members, lifecycle: lifecycle}
}

// Directory 公开成员名录：固定页大小，关键字匹配姓名/届别/方向
func (h *MemberHandler) Directory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	keyword := c.Query("keyword")

	list, total, err := h.members.Directory(keyword, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"members":   list,
		"total":     total,
		"page":      page,
		"page_size": h.members.PageSize(),
	})
}

// Profile 登录用户查看自己的档案，管理员可以看任何人的
func (h *MemberHandler) Profile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.members.ProfileFor(c.GetUint64("user_id"), c.GetInt("role"), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// UpdateProfile multipart：文本字段 + 可选头像 image
func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	image, imageName, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	rating, _ := strconv.Atoi(c.PostForm("rating"))
	in := service.ProfileUpdate{
		Name:       c.PostForm("name"),
		Phone:      c.PostForm("phone"),
		Github:     c.PostForm("github"),
		Linkedin:   c.PostForm("linkedin"),
		Codeforces: c.PostForm("codeforces"),
		Codechef:   c.PostForm("codechef"),
		Hackerrank: c.PostForm("hackerrank"),
		Toph:       c.PostForm("toph"),
		Session:    c.PostForm("session"),
		Specialty:  c.PostForm("specialty"),
		Rating:     rating,
	}

	if err := h.members.UpdateProfile(c.GetUint64("user_id"), c.GetInt("role"), id, in, image, imageName); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "profile updated"})
}

// Pending 审核队列
func (h *MemberHandler) Pending(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.lifecycle.ListPending(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": list})
}

// Approved 晋升界面数据源
func (h *MemberHandler) Approved(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.lifecycle.ListApproved(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": list})
}

// Active 移除界面数据源：approved + executive
func (h *MemberHandler) Active(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.lifecycle.ListActive(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": list})
}

func (h *MemberHandler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.lifecycle.Approve(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "member approved"})
}

func (h *MemberHandler) Promote(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.lifecycle.Promote(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "member promoted"})
}

func (h *MemberHandler) Remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.lifecycle.Remove(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "member removed"})
}

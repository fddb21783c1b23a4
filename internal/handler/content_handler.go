package handler

import (
	"net/http"

	"midday/internal/service"

	"github.com/gin-gonic/gin"
)

// ContentHandler 站点内容的管理端 CRUD 和公开列表
type ContentHandler struct {
	achievements *service.AchievementService
	mentions     *service.ProudMentionService
	gallery      *service.GalleryService
	notices      *service.NoticeService
	about        *service.AboutService
	executives   *service.ExecutiveService
}

func NewContentHandler(
	achievements *service.AchievementService,
	mentions *service.ProudMentionService,
	gallery *service.GalleryService,
	notices *service.NoticeService,
	about *service.AboutService,
	executives *service.ExecutiveService,
) *ContentHandler {
	return &ContentHandler{
		achievements: achievements,
		mentions:     mentions,
		gallery:      gallery,
		notices:      notices,
		about:        about,
		executives:   executives,
	}
}

type achievementReq struct {
	Title            string   `json:"title" binding:"required"`
	ShortDescription string   `json:"short_description"`
	Date             string   `json:"date"`
	Link             string   `json:"link"`
	Tags             []string `json:"tags"`
}

func (r achievementReq) toInput() service.AchievementInput {
	return service.AchievementInput{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Date:             r.Date,
		Link:             r.Link,
		Tags:             r.Tags,
	}
}

func (h *ContentHandler) CreateAchievement(c *gin.Context) {
	var req achievementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	a, err := h.achievements.Create(req.toInput())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ContentHandler) UpdateAchievement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req achievementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	a, err := h.achievements.Update(id, req.toInput())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ContentHandler) DeleteAchievement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.achievements.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

func (h *ContentHandler) ListAchievements(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.achievements.List(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": list})
}

func mentionInput(c *gin.Context) service.ProudMentionInput {
	return service.ProudMentionInput{
		Name:             c.PostForm("name"),
		ShortDescription: c.PostForm("short_description"),
		Tags:             c.PostFormArray("tags"),
	}
}

func (h *ContentHandler) CreateMention(c *gin.Context) {
	image, imageName, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	m, err := h.mentions.Create(mentionInput(c), image, imageName)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *ContentHandler) UpdateMention(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	image, imageName, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	m, err := h.mentions.Update(id, mentionInput(c), image, imageName)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *ContentHandler) DeleteMention(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.mentions.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

func (h *ContentHandler) ListMentions(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.mentions.List(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mentions": list})
}

func (h *ContentHandler) CreateGalleryItem(c *gin.Context) {
	media, mediaName, err := formFile(c, "media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	in := service.GalleryInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	item, err := h.gallery.Create(in, media, mediaName)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContentHandler) UpdateGalleryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	media, mediaName, err := formFile(c, "media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	in := service.GalleryInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	item, err := h.gallery.Update(id, in, media, mediaName)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContentHandler) DeleteGalleryItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.gallery.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

func (h *ContentHandler) ListGallery(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.gallery.List(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"gallery": list})
}

type noticeReq struct {
	Date        string `json:"date" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

func (r noticeReq) toInput() service.NoticeInput {
	return service.NoticeInput{
		Date:        r.Date,
		Title:       r.Title,
		Description: r.Description,
		Link:        r.Link,
	}
}

func (h *ContentHandler) CreateNotice(c *gin.Context) {
	var req noticeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	n, err := h.notices.Create(req.toInput())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *ContentHandler) UpdateNotice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req noticeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	n, err := h.notices.Update(id, req.toInput())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

func (h *ContentHandler) DeleteNotice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.notices.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

func (h *ContentHandler) ListNotices(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.notices.List(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notices": list})
}

func (h *ContentHandler) CreateAbout(c *gin.Context) {
	image, imageName, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	in := service.AboutInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	entry, err := h.about.Create(in, image, imageName)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *ContentHandler) UpdateAbout(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	image, imageName, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	in := service.AboutInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	entry, err := h.about.Update(id, in, image, imageName)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *ContentHandler) DeleteAbout(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.about.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

func (h *ContentHandler) ListAbout(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.about.List(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"about": list})
}

func executiveInput(c *gin.Context) service.ExecutiveInput {
	return service.ExecutiveInput{
		Name:        c.PostForm("name"),
		Designation: c.PostForm("designation"),
		Session:     c.PostForm("session"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
	}
}

func (h *ContentHandler) CreateExecutive(c *gin.Context) {
	image, imageName, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	e, err := h.executives.CreateExecutive(executiveInput(c), image, imageName)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ContentHandler) UpdateExecutive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	image, imageName, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	e, err := h.executives.UpdateExecutive(id, executiveInput(c), image, imageName)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ContentHandler) DeleteExecutive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.executives.DeleteExecutive(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

func (h *ContentHandler) ListExecutives(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.executives.ListExecutives(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"executives": list})
}

func (h *ContentHandler) CreateSenior(c *gin.Context) {
	image, imageName, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	e, err := h.executives.CreateSenior(executiveInput(c), image, imageName)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ContentHandler) UpdateSenior(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	image, imageName, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	e, err := h.executives.UpdateSenior(id, executiveInput(c), image, imageName)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ContentHandler) DeleteSenior(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.executives.DeleteSenior(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "deleted"})
}

func (h *ContentHandler) ListSeniors(c *gin.Context) {
	page, size := pageQuery(c)
	list, err := h.executives.ListSeniors(page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"senior_executives": list})
}

package handler

import (
	"net/http"

	"midday/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth  *service.AuthService
	email *service.EmailService
}

func NewAuthHandler(auth *service.AuthService, email *service.EmailService) *AuthHandler {
	return &AuthHandler{auth: auth, email: email}
}

type registerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Code     string `json:"code" binding:"required"`

	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Github     string `json:"github"`
	Linkedin   string `json:"linkedin"`
	Codeforces string `json:"codeforces"`
	Codechef   string `json:"codechef"`
	Hackerrank string `json:"hackerrank"`
	Toph       string `json:"toph"`
	Session    string `json:"session"`
	Specialty  string `json:"specialty"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	err := h.auth.Register(service.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		Code:       req.Code,
		Name:       req.Name,
		Phone:      req.Phone,
		Github:     req.Github,
		Linkedin:   req.Linkedin,
		Codeforces: req.Codeforces,
		Codechef:   req.Codechef,
		Hackerrank: req.Hackerrank,
		Toph:       req.Toph,
		Session:    req.Session,
		Specialty:  req.Specialty,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "registered, awaiting approval"})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	pair, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pair)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	usrID := c.GetUint64("user_id")
	if err := h.auth.Logout(usrID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "logged out"})
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	pair, err := h.auth.Refresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pair)
}

type sendCodeReq struct {
	Email string `json:"email" binding:"required,email"`
}

// SendCode scope 走路径参数：/api/email/register/code、/api/email/reset/code
func (h *AuthHandler) SendCode(c *gin.Context) {
	scope := c.Param("scope")
	if scope != "register" && scope != "reset" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "unknown scope"})
		return
	}
	var req sendCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	if err := h.email.SendCode(scope, req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "send code failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "code sent"})
}

type resetPasswordReq struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	if err := h.auth.ResetPassword(req.Email, req.Code, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "password reset"})
}

type changePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	usrID := c.GetUint64("user_id")
	if err := h.auth.ChangePassword(usrID, req.OldPassword, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "password changed, please login again"})
}

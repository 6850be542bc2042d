package api

import (
	"fintrack/config"
	"fintrack/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler 登录处理器（单用户，凭据来自配置文件）
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token       string `json:"token"`
	ExpireHours int    `json:"expire_hours"`
	Username    string `json:"username"`
}

// Login 登录
// @Summary 登录
// @Description 校验配置文件中的单用户凭据（优先 bcrypt hash），签发 JWT
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "用户名或密码错误"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	if !h.cfg.Auth.Enabled {
		BadRequest(c, "认证未启用")
		return
	}
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	if req.Username != h.cfg.Auth.Username || !h.checkPassword(req.Password) {
		Unauthorized(c, "用户名或密码错误")
		return
	}

	token, err := middleware.GenerateToken(req.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "登录失败"))
		return
	}
	SuccessWithMessage(c, "登录成功", LoginResponse{
		Token:       token,
		ExpireHours: h.cfg.JWT.ExpireHours,
		Username:    req.Username,
	})
}

// checkPassword 校验密码，password_hash（bcrypt）优先于明文 password
func (h *AuthHandler) checkPassword(password string) bool {
	if h.cfg.Auth.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword(
			[]byte(h.cfg.Auth.PasswordHash), []byte(password)) == nil
	}
	if h.cfg.Auth.Password != "" {
		return password == h.cfg.Auth.Password
	}
	return false
}

// Profile 当前登录用户
// @Summary 获取当前登录用户
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "获取成功"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	username := middleware.GetCurrentUsername(c)
	if username == "" && !h.cfg.Auth.Enabled {
		username = h.cfg.Auth.Username
	}
	Success(c, gin.H{
		"username":     username,
		"auth_enabled": h.cfg.Auth.Enabled,
	})
}

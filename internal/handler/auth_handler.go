package handler

import (
	"errors"

	"resource-share/internal/dto"
	"resource-share/internal/service"
	"resource-share/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login 管理员登录
// @Summary 管理员登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "登录信息"
// @Success 200 {object} utils.Response{data=dto.LoginResponse}
// @Router /api/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请输入用户名和密码")
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrAuthFailed) {
			utils.Unauthorized(c, err.Error())
			return
		}
		_ = c.Error(err)
		utils.InternalError(c, "登录失败")
		return
	}

	utils.SuccessWithMessage(c, "登录成功", resp)
}

// Logout 退出登录
// @Summary 退出登录
// @Tags 认证
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		_ = c.Error(err)
		utils.InternalError(c, "退出登录失败")
		return
	}

	utils.SuccessWithMessage(c, "已退出登录", h.authService.Current())
}

// Session 当前会话
// @Summary 当前会话
// @Tags 认证
// @Produce json
// @Success 200 {object} utils.Response{data=models.Session}
// @Router /api/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	utils.SuccessResponse(c, h.authService.Current())
}

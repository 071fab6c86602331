package handler

import (
	"errors"

	"resource-share/internal/repository"
	"resource-share/internal/service"
	"resource-share/internal/utils"

	"github.com/gin-gonic/gin"
)

// respondError 将服务层错误映射为HTTP响应
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrResourceNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, service.ErrValidationFailed), errors.Is(err, service.ErrConfirmationRequired):
		utils.BadRequest(c, err.Error())
	default:
		_ = c.Error(err)
		utils.InternalError(c, "服务器内部错误")
	}
}

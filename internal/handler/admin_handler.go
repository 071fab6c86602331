package handler

import (
	"strconv"

	"resource-share/internal/dto"
	"resource-share/internal/service"
	"resource-share/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler 管理员处理器
type AdminHandler struct {
	adminService *service.AdminService
}

// NewAdminHandler 创建管理员处理器
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListResources 获取所有资源
// @Summary 管理后台资源列表
// @Tags 管理
// @Produce json
// @Param q query string false "关键词"
// @Success 200 {object} utils.Response{data=dto.ResourceListResponse}
// @Router /api/admin/resources [get]
func (h *AdminHandler) ListResources(c *gin.Context) {
	utils.SuccessResponse(c, h.adminService.List(c.Request.Context(), c.Query("q")))
}

// GetResourceForm 编辑表单回显
func (h *AdminHandler) GetResourceForm(c *gin.Context) {
	form, err := h.adminService.EditForm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, form)
}

// CreateResource 新增资源
// @Summary 新增资源
// @Tags 管理
// @Accept json
// @Produce json
// @Param request body dto.ResourceForm true "资源表单"
// @Success 201 {object} utils.Response{data=models.Resource}
// @Router /api/admin/resources [post]
func (h *AdminHandler) CreateResource(c *gin.Context) {
	var form dto.ResourceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequest(c, "请求格式错误")
		return
	}

	res, err := h.adminService.Create(c.Request.Context(), &form)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, "资源添加成功", res)
}

// UpdateResource 编辑资源
// @Summary 编辑资源
// @Tags 管理
// @Accept json
// @Produce json
// @Param id path string true "资源ID"
// @Param request body dto.ResourceForm true "资源表单"
// @Success 200 {object} utils.Response{data=models.Resource}
// @Router /api/admin/resources/{id} [put]
func (h *AdminHandler) UpdateResource(c *gin.Context) {
	var form dto.ResourceForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.BadRequest(c, "请求格式错误")
		return
	}

	res, err := h.adminService.Update(c.Request.Context(), c.Param("id"), &form)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "资源更新成功", res)
}

// DeleteResource 删除资源，需携带 confirm=true
// @Summary 删除资源
// @Tags 管理
// @Produce json
// @Param id path string true "资源ID"
// @Param confirm query bool true "确认删除"
// @Success 200 {object} utils.Response
// @Router /api/admin/resources/{id} [delete]
func (h *AdminHandler) DeleteResource(c *gin.Context) {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	if err := h.adminService.Delete(c.Request.Context(), c.Param("id"), confirmed); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "资源已删除", gin.H{"success": true})
}

package handler

import (
	"resource-share/internal/dto"
	"resource-share/internal/service"
	"resource-share/internal/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler 公开目录处理器
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler 创建目录处理器
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListResources 资源列表
// @Summary 按平台、类型、关键词筛选资源
// @Tags 资源
// @Produce json
// @Param platform query string false "平台，all 表示全部"
// @Param type query string false "资源类型，all 表示全部"
// @Param q query string false "关键词"
// @Param sort query string false "newest、downloads、likes"
// @Success 200 {object} utils.Response{data=dto.ResourceListResponse}
// @Router /api/resources [get]
func (h *CatalogHandler) ListResources(c *gin.Context) {
	var query dto.CatalogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	resp, err := h.catalogService.Browse(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

// GetResource 资源详情
// @Summary 资源详情
// @Tags 资源
// @Produce json
// @Param id path string true "资源ID"
// @Success 200 {object} utils.Response{data=models.Resource}
// @Router /api/resources/{id} [get]
func (h *CatalogHandler) GetResource(c *gin.Context) {
	res, err := h.catalogService.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, res)
}

// SaveToCloud 转存到网盘
// @Summary 转存到网盘
// @Tags 资源
// @Produce json
// @Param id path string true "资源ID"
// @Success 200 {object} utils.Response{data=dto.SaveToCloudResponse}
// @Router /api/resources/{id}/save [post]
func (h *CatalogHandler) SaveToCloud(c *gin.Context) {
	resp, err := h.catalogService.SaveToCloud(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessWithMessage(c, resp.Message, resp)
}

// ListCategories 分类列表
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	utils.SuccessResponse(c, h.catalogService.Categories(c.Request.Context()))
}

// ListPlatforms 平台列表
func (h *CatalogHandler) ListPlatforms(c *gin.Context) {
	utils.SuccessResponse(c, h.catalogService.Platforms())
}

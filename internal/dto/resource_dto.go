package dto

import "resource-share/internal/models"

// ResourceForm 管理后台新增/编辑资源表单
// 标签以逗号分隔的字符串提交。
type ResourceForm struct {
	Title        string `json:"title" label:"标题" validate:"required"`
	Description  string `json:"description" label:"描述" validate:"required"`
	Platform     string `json:"platform" label:"平台" validate:"omitempty,platform"`
	ResourceType string `json:"resourceType" label:"资源类型" validate:"omitempty,resource_type"`
	Size         string `json:"size" label:"大小" validate:"required"`
	Format       string `json:"format" label:"格式" validate:"required"`
	DownloadURL  string `json:"downloadUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Tags         string `json:"tags"`
}

// CatalogQuery 首页筛选条件
type CatalogQuery struct {
	Platform string `form:"platform"`
	Type     string `form:"type"`
	Query    string `form:"q"`
	Sort     string `form:"sort"`
}

// ResourceListResponse 资源列表响应
type ResourceListResponse struct {
	Resources []models.Resource `json:"resources"`
	Total     int               `json:"total"`
}

// CategoryResponse 资源分类
type CategoryResponse struct {
	ID          models.ResourceType `json:"id"`
	Name        string              `json:"name"`
	Count       int                 `json:"count"`
	Description string              `json:"description"`
	Popular     []string            `json:"popular"`
}

// PlatformResponse 网盘平台
type PlatformResponse struct {
	Value models.Platform `json:"value"`
	Label string          `json:"label"`
}

// SaveToCloudResponse 转存结果
type SaveToCloudResponse struct {
	ResourceID string          `json:"resource_id"`
	Platform   models.Platform `json:"platform"`
	Message    string          `json:"message"`
}

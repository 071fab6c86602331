package service

import (
	"context"
	"fmt"
	"sort"

	"resource-share/internal/config"
	"resource-share/internal/dto"
	"resource-share/internal/models"
	"resource-share/internal/repository"
)

// 排序方式
const (
	SortNewest    = "newest"
	SortDownloads = "downloads"
	SortLikes     = "likes"
)

type categoryMeta struct {
	id          models.ResourceType
	name        string
	description string
	popular     []string
}

// categories 首页展示的分类，顺序即展示顺序
var categories = []categoryMeta{
	{models.TypeVideo, "电影资源", "最新热门电影、经典影片、4K高清资源", []string{"沙丘2", "魔兽海默", "芭比"}},
	{models.TypeSoftware, "软件工具", "专业软件、系统工具、开发环境", []string{"Adobe 2024", "Office 2024", "Visual Studio"}},
	{models.TypeAudio, "音乐资源", "无损音乐、专辑合集、单曲精选", []string{"华语金曲", "Taylor Swift", "古典音乐"}},
	{models.TypeDocument, "学习资料", "教程文档、电子书、学习视频", []string{"前端开发", "数据分析", "英语学习"}},
	{models.TypeImage, "图片素材", "设计素材、壁纸、摄影作品", []string{"4K壁纸", "UI设计", "摄影图集"}},
	{models.TypeCompressed, "压缩包", "各类资源压缩包", []string{"游戏资源", "系统镜像", "备份文件"}},
}

// CatalogService 公开目录服务
type CatalogService struct {
	repo       *repository.ResourceRepository
	filterMode string
}

// NewCatalogService 创建目录服务
func NewCatalogService(repo *repository.ResourceRepository, cfg config.CatalogConfig) *CatalogService {
	mode := cfg.FilterMode
	if mode == "" {
		mode = config.FilterModeIntersect
	}
	return &CatalogService{repo: repo, filterMode: mode}
}

// Browse 按平台、类型、关键词筛选并排序
func (s *CatalogService) Browse(ctx context.Context, query dto.CatalogQuery) (*dto.ResourceListResponse, error) {
	if err := validateSort(query.Sort); err != nil {
		return nil, err
	}

	all := s.repo.List(ctx)

	var result []models.Resource
	if s.filterMode == config.FilterModeLegacy {
		// 兼容旧版行为：平台条件被忽略，只按类型筛选全部资源
		result = repository.ByType(all, query.Type)
	} else {
		result = repository.ByType(repository.ByPlatform(all, query.Platform), query.Type)
	}
	result = repository.Matching(result, query.Query)

	sorted := sortResources(result, query.Sort)
	return &dto.ResourceListResponse{Resources: sorted, Total: len(sorted)}, nil
}

func validateSort(sortBy string) error {
	switch sortBy {
	case "", SortNewest, SortDownloads, SortLikes:
		return nil
	default:
		return &ValidationError{Message: fmt.Sprintf("不支持的排序方式: %s", sortBy)}
	}
}

// sortResources 返回排序后的副本，计数相同时保持存储顺序
func sortResources(resources []models.Resource, sortBy string) []models.Resource {
	out := make([]models.Resource, len(resources))
	copy(out, resources)

	switch sortBy {
	case SortDownloads:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DownloadCount > out[j].DownloadCount })
	case SortLikes:
		sort.SliceStable(out, func(i, j int) bool { return out[i].LikeCount > out[j].LikeCount })
	}
	return out
}

// Categories 分类列表，数量按当前集合实时统计
func (s *CatalogService) Categories(ctx context.Context) []dto.CategoryResponse {
	counts := make(map[models.ResourceType]int)
	for _, res := range s.repo.List(ctx) {
		counts[res.ResourceType]++
	}

	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryResponse{
			ID:          c.id,
			Name:        c.name,
			Count:       counts[c.id],
			Description: c.description,
			Popular:     append([]string(nil), c.popular...),
		})
	}
	return out
}

// Platforms 平台列表
func (s *CatalogService) Platforms() []dto.PlatformResponse {
	out := make([]dto.PlatformResponse, 0, len(models.Platforms))
	for _, p := range models.Platforms {
		out = append(out, dto.PlatformResponse{Value: p, Label: p.DisplayName()})
	}
	return out
}

// Detail 资源详情
func (s *CatalogService) Detail(ctx context.Context, id string) (*models.Resource, error) {
	return s.repo.GetByID(ctx, id)
}

// SaveToCloud 转存到网盘，仅返回提示信息
func (s *CatalogService) SaveToCloud(ctx context.Context, id string) (*dto.SaveToCloudResponse, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SaveToCloudResponse{
		ResourceID: res.ID,
		Platform:   res.Platform,
		Message:    fmt.Sprintf("已成功将资源转存至%s", res.Platform.DisplayName()),
	}, nil
}

package service

import (
	"context"
	"strings"

	"resource-share/internal/dto"
	"resource-share/internal/models"
	"resource-share/internal/repository"
	"resource-share/internal/utils"

	"github.com/sirupsen/logrus"
)

// 表单默认值
const (
	DefaultPlatform     = models.PlatformBaidu
	DefaultResourceType = models.TypeDocument
	DefaultDownloadURL  = "#"
)

// AdminService 管理后台资源服务
type AdminService struct {
	repo   *repository.ResourceRepository
	logger logrus.FieldLogger
}

// NewAdminService 创建管理服务
func NewAdminService(repo *repository.ResourceRepository, logger logrus.FieldLogger) *AdminService {
	return &AdminService{repo: repo, logger: logger}
}

// List 资源列表，q 非空时按关键词过滤
func (s *AdminService) List(ctx context.Context, q string) *dto.ResourceListResponse {
	resources := repository.Matching(s.repo.List(ctx), q)
	return &dto.ResourceListResponse{Resources: resources, Total: len(resources)}
}

// Create 新增资源
func (s *AdminService) Create(ctx context.Context, form *dto.ResourceForm) (*models.Resource, error) {
	fields, err := formToFields(form)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, fields)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"resource_id": created.ID, "title": created.Title}).Info("资源已创建")
	return created, nil
}

// Update 编辑资源，表单字段整体覆盖，计数器和上传日期保持不变
func (s *AdminService) Update(ctx context.Context, id string, form *dto.ResourceForm) (*models.Resource, error) {
	fields, err := formToFields(form)
	if err != nil {
		return nil, err
	}

	patch := models.ResourcePatch{
		Title:        &fields.Title,
		Description:  &fields.Description,
		Platform:     &fields.Platform,
		ResourceType: &fields.ResourceType,
		Size:         &fields.Size,
		Format:       &fields.Format,
		DownloadURL:  &fields.DownloadURL,
		ThumbnailURL: &fields.ThumbnailURL,
		Tags:         fields.Tags,
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.WithField("resource_id", id).Info("资源已更新")
	return updated, nil
}

// Delete 删除资源，必须先确认
func (s *AdminService) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return repository.ErrResourceNotFound
	}

	s.logger.WithField("resource_id", id).Info("资源已删除")
	return nil
}

// EditForm 编辑表单回显数据
func (s *AdminService) EditForm(ctx context.Context, id string) (*dto.ResourceForm, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ResourceForm{
		Title:        res.Title,
		Description:  res.Description,
		Platform:     string(res.Platform),
		ResourceType: string(res.ResourceType),
		Size:         res.Size,
		Format:       res.Format,
		DownloadURL:  res.DownloadURL,
		ThumbnailURL: res.ThumbnailURL,
		Tags:         utils.JoinTags(res.Tags),
	}, nil
}

// formToFields 校验表单并填充默认值
func formToFields(form *dto.ResourceForm) (models.ResourceFields, error) {
	normalized := *form
	normalized.Title = strings.TrimSpace(form.Title)
	normalized.Description = strings.TrimSpace(form.Description)
	normalized.Size = strings.TrimSpace(form.Size)
	normalized.Format = strings.TrimSpace(form.Format)

	if err := utils.ValidateStruct(normalized); err != nil {
		return models.ResourceFields{}, &ValidationError{Message: err.Error()}
	}

	platform := models.Platform(normalized.Platform)
	if platform == "" {
		platform = DefaultPlatform
	}
	resourceType := models.ResourceType(normalized.ResourceType)
	if resourceType == "" {
		resourceType = DefaultResourceType
	}
	downloadURL := strings.TrimSpace(normalized.DownloadURL)
	if downloadURL == "" {
		downloadURL = DefaultDownloadURL
	}

	return models.ResourceFields{
		Title:        normalized.Title,
		Description:  normalized.Description,
		Platform:     platform,
		ResourceType: resourceType,
		Size:         normalized.Size,
		Format:       normalized.Format,
		DownloadURL:  downloadURL,
		ThumbnailURL: strings.TrimSpace(normalized.ThumbnailURL),
		Tags:         utils.ParseTags(normalized.Tags),
	}, nil
}

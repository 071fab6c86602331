package service

import (
	"testing"

	"resource-share/internal/dto"
	"resource-share/internal/models"
	"resource-share/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdmin(t *testing.T) (*AdminService, *repository.ResourceRepository) {
	t.Helper()
	repo := newTestResourceRepo(t, setupKV(t))
	return NewAdminService(repo, quietLogger()), repo
}

func validForm() *dto.ResourceForm {
	return &dto.ResourceForm{
		Title:       "Go 并发编程",
		Description: "goroutine 与 channel 实战",
		Size:        "1.2GB",
		Format:      "pdf",
		Tags:        " Go , 并发,, 教程 ",
	}
}

func TestAdminService_CreateAppliesDefaults(t *testing.T) {
	s, repo := newAdmin(t)

	created, err := s.Create(bg, validForm())
	require.NoError(t, err)
	assert.Equal(t, models.PlatformBaidu, created.Platform)
	assert.Equal(t, models.TypeDocument, created.ResourceType)
	assert.Equal(t, "#", created.DownloadURL)
	assert.Equal(t, []string{"Go", "并发", "教程"}, created.Tags)
	assert.Equal(t, "2026-10-19", created.UploadDate)
	assert.Zero(t, created.LikeCount)
	assert.Zero(t, created.DownloadCount)

	all := repo.List(bg)
	require.Len(t, all, 7)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestAdminService_CreateRejectsMissingFields(t *testing.T) {
	s, repo := newAdmin(t)

	form := validForm()
	form.Title = "   "
	form.Format = ""
	_, err := s.Create(bg, form)
	require.ErrorIs(t, err, ErrValidationFailed)
	assert.Contains(t, err.Error(), "标题是必填字段")
	assert.Contains(t, err.Error(), "格式是必填字段")

	form = validForm()
	form.Platform = "dropbox"
	_, err = s.Create(bg, form)
	assert.ErrorIs(t, err, ErrValidationFailed)

	assert.Len(t, repo.List(bg), 6)
}

func TestAdminService_UpdateKeepsCountersAndDate(t *testing.T) {
	s, _ := newAdmin(t)

	form := validForm()
	form.Platform = "aliyun"
	form.ResourceType = "video"
	updated, err := s.Update(bg, "1", form)
	require.NoError(t, err)
	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, "Go 并发编程", updated.Title)
	assert.Equal(t, models.PlatformAliyun, updated.Platform)
	assert.Equal(t, models.TypeVideo, updated.ResourceType)
	assert.Equal(t, 328, updated.LikeCount)
	assert.Equal(t, 1562, updated.DownloadCount)
	assert.Equal(t, "2025-08-15", updated.UploadDate)

	_, err = s.Update(bg, "missing", validForm())
	assert.ErrorIs(t, err, repository.ErrResourceNotFound)
}

func TestAdminService_DeleteRequiresConfirmation(t *testing.T) {
	s, repo := newAdmin(t)

	err := s.Delete(bg, "2", false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Len(t, repo.List(bg), 6)

	require.NoError(t, s.Delete(bg, "2", true))
	assert.Len(t, repo.List(bg), 5)

	err = s.Delete(bg, "2", true)
	assert.ErrorIs(t, err, repository.ErrResourceNotFound)
}

func TestAdminService_ListAndEditForm(t *testing.T) {
	s, _ := newAdmin(t)

	assert.Equal(t, 6, s.List(bg, "").Total)
	assert.Equal(t, []string{"3"}, ids(s.List(bg, "风景").Resources))

	form, err := s.EditForm(bg, "1")
	require.NoError(t, err)
	assert.Equal(t, "前端, 学习资料, React, Vue", form.Tags)
	assert.Equal(t, "baidu", form.Platform)
}

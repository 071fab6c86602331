package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"resource-share/internal/models"
	"resource-share/pkg/writelock"

	"github.com/sirupsen/logrus"
)

// ResourcesKey 资源集合所在的槽位
const ResourcesKey = "resources"

// ErrResourceNotFound 资源不存在
var ErrResourceNotFound = errors.New("资源不存在")

// ResourceRepository 资源数据访问层
// 整个集合序列化为一个JSON数组保存在单个槽位中，每次写操作读出整份集合、修改后整份写回。
type ResourceRepository struct {
	kv     KVStore
	locker writelock.Locker
	logger logrus.FieldLogger
	now    func() time.Time
}

// NewResourceRepository 创建资源Repository
func NewResourceRepository(kv KVStore, locker writelock.Locker, logger logrus.FieldLogger) *ResourceRepository {
	return &ResourceRepository{
		kv:     kv,
		locker: locker,
		logger: logger,
		now:    time.Now,
	}
}

// SetClock 替换时间来源
func (r *ResourceRepository) SetClock(now func() time.Time) {
	r.now = now
}

// load 读取集合
// 槽位缺失、内容损坏或为 null 时回退到初始数据；只有存储本身出错才返回错误。
func (r *ResourceRepository) load(ctx context.Context) ([]models.Resource, error) {
	raw, ok, err := r.kv.Get(ctx, ResourcesKey)
	if err != nil {
		return nil, fmt.Errorf("读取资源失败: %w", err)
	}
	if !ok {
		return SeedResources(), nil
	}

	var resources []models.Resource
	if err := json.Unmarshal([]byte(raw), &resources); err != nil {
		r.logger.WithError(err).Warn("资源数据损坏，使用初始数据")
		return SeedResources(), nil
	}
	if resources == nil {
		return SeedResources(), nil
	}
	return resources, nil
}

// save 整份写回
func (r *ResourceRepository) save(ctx context.Context, resources []models.Resource) error {
	data, err := json.Marshal(resources)
	if err != nil {
		return fmt.Errorf("序列化资源失败: %w", err)
	}
	if err := r.kv.Set(ctx, ResourcesKey, string(data)); err != nil {
		return fmt.Errorf("保存资源失败: %w", err)
	}
	return nil
}

// withLock 持有写锁执行 fn
func (r *ResourceRepository) withLock(ctx context.Context, fn func() error) error {
	token, err := r.locker.Acquire(ctx, ResourcesKey)
	if err != nil {
		return err
	}
	defer func() {
		if err := r.locker.Release(context.Background(), ResourcesKey, token); err != nil {
			r.logger.WithError(err).Error("释放写锁失败")
		}
	}()
	return fn()
}

// mutate 在写锁内执行读-改-写，fn 返回 changed=false 时不写回
func (r *ResourceRepository) mutate(ctx context.Context, fn func([]models.Resource) ([]models.Resource, bool, error)) error {
	return r.withLock(ctx, func() error {
		resources, err := r.load(ctx)
		if err != nil {
			return err
		}

		updated, changed, err := fn(resources)
		if err != nil || !changed {
			return err
		}
		return r.save(ctx, updated)
	})
}

// List 获取全部资源，保持存储顺序(最新创建的在前)
// 存储不可用时记录日志并返回初始数据，不返回错误。
func (r *ResourceRepository) List(ctx context.Context) []models.Resource {
	resources, err := r.load(ctx)
	if err != nil {
		r.logger.WithError(err).Warn("读取资源失败，使用初始数据")
		return SeedResources()
	}
	return resources
}

// GetByID 根据ID获取资源
func (r *ResourceRepository) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	for _, res := range r.List(ctx) {
		if res.ID == id {
			found := res
			return &found, nil
		}
	}
	return nil, ErrResourceNotFound
}

// FilterByPlatform 按平台筛选，"all" 返回全部
func (r *ResourceRepository) FilterByPlatform(ctx context.Context, platform string) []models.Resource {
	return ByPlatform(r.List(ctx), platform)
}

// FilterByType 按资源类型筛选，"all" 返回全部
func (r *ResourceRepository) FilterByType(ctx context.Context, resourceType string) []models.Resource {
	return ByType(r.List(ctx), resourceType)
}

// Search 按标题、描述、标签模糊搜索，忽略大小写
func (r *ResourceRepository) Search(ctx context.Context, query string) []models.Resource {
	return Matching(r.List(ctx), query)
}

// Create 创建资源并放到集合最前面
func (r *ResourceRepository) Create(ctx context.Context, fields models.ResourceFields) (*models.Resource, error) {
	var created models.Resource

	err := r.mutate(ctx, func(resources []models.Resource) ([]models.Resource, bool, error) {
		now := r.now().UTC()
		created = models.Resource{
			ID:            nextID(resources, now),
			Title:         fields.Title,
			Description:   fields.Description,
			Platform:      fields.Platform,
			ResourceType:  fields.ResourceType,
			Size:          fields.Size,
			Format:        fields.Format,
			UploadDate:    now.Format("2006-01-02"),
			DownloadURL:   fields.DownloadURL,
			ThumbnailURL:  fields.ThumbnailURL,
			LikeCount:     0,
			DownloadCount: 0,
			Tags:          append([]string{}, fields.Tags...),
		}

		updated := make([]models.Resource, 0, len(resources)+1)
		updated = append(updated, created)
		updated = append(updated, resources...)
		return updated, true, nil
	})
	if err != nil {
		return nil, err
	}

	out := created.Clone()
	return &out, nil
}

// Update 部分更新资源，id 不存在时返回 ErrResourceNotFound 且不写回
func (r *ResourceRepository) Update(ctx context.Context, id string, patch models.ResourcePatch) (*models.Resource, error) {
	var updated models.Resource

	err := r.mutate(ctx, func(resources []models.Resource) ([]models.Resource, bool, error) {
		for i := range resources {
			if resources[i].ID == id {
				patch.Apply(&resources[i])
				updated = resources[i].Clone()
				return resources, true, nil
			}
		}
		return nil, false, ErrResourceNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete 删除资源，返回是否删除了记录；只有集合长度变化时才写回
func (r *ResourceRepository) Delete(ctx context.Context, id string) (bool, error) {
	removed := false

	err := r.mutate(ctx, func(resources []models.Resource) ([]models.Resource, bool, error) {
		kept := make([]models.Resource, 0, len(resources))
		for _, res := range resources {
			if res.ID != id {
				kept = append(kept, res)
			}
		}
		removed = len(kept) != len(resources)
		return kept, removed, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// Reset 清除已保存的集合，之后 List 返回初始数据
func (r *ResourceRepository) Reset(ctx context.Context) error {
	return r.withLock(ctx, func() error {
		if err := r.kv.Remove(ctx, ResourcesKey); err != nil {
			return fmt.Errorf("清除资源失败: %w", err)
		}
		return nil
	})
}

// ByPlatform 按平台过滤
func ByPlatform(resources []models.Resource, platform string) []models.Resource {
	if platform == "" || platform == models.FilterAll {
		return resources
	}
	out := make([]models.Resource, 0, len(resources))
	for _, res := range resources {
		if string(res.Platform) == platform {
			out = append(out, res)
		}
	}
	return out
}

// ByType 按资源类型过滤
func ByType(resources []models.Resource, resourceType string) []models.Resource {
	if resourceType == "" || resourceType == models.FilterAll {
		return resources
	}
	out := make([]models.Resource, 0, len(resources))
	for _, res := range resources {
		if string(res.ResourceType) == resourceType {
			out = append(out, res)
		}
	}
	return out
}

// Matching 按关键词过滤，匹配标题、描述或任一标签
func Matching(resources []models.Resource, query string) []models.Resource {
	if query == "" {
		return resources
	}
	q := strings.ToLower(query)
	out := make([]models.Resource, 0, len(resources))
	for _, res := range resources {
		if matches(res, q) {
			out = append(out, res)
		}
	}
	return out
}

func matches(res models.Resource, q string) bool {
	if strings.Contains(strings.ToLower(res.Title), q) || strings.Contains(strings.ToLower(res.Description), q) {
		return true
	}
	for _, tag := range res.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// nextID 以毫秒时间戳作为ID，与已有ID冲突时递增
func nextID(resources []models.Resource, now time.Time) string {
	taken := make(map[string]struct{}, len(resources))
	for _, res := range resources {
		taken[res.ID] = struct{}{}
	}

	n := now.UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if _, exists := taken[id]; !exists {
			return id
		}
		n++
	}
}

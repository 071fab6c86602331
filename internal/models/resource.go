package models

// Platform 资源所在网盘平台
type Platform string

const (
	PlatformBaidu   Platform = "baidu"
	PlatformAliyun  Platform = "aliyun"
	PlatformTencent Platform = "tencent"
	Platform123Pan  Platform = "123pan"
	PlatformOther   Platform = "other"
)

// Platforms 全部平台，顺序即展示顺序
var Platforms = []Platform{PlatformBaidu, PlatformAliyun, PlatformTencent, Platform123Pan, PlatformOther}

// DisplayName 平台展示名称
func (p Platform) DisplayName() string {
	switch p {
	case PlatformBaidu:
		return "百度网盘"
	case PlatformAliyun:
		return "阿里云盘"
	case PlatformTencent:
		return "腾讯云盘"
	case Platform123Pan:
		return "123云盘"
	default:
		return "其他网盘"
	}
}

// IsValid 是否为已知平台
func (p Platform) IsValid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// ResourceType 资源类型
type ResourceType string

const (
	TypeDocument   ResourceType = "document"
	TypeVideo      ResourceType = "video"
	TypeAudio      ResourceType = "audio"
	TypeSoftware   ResourceType = "software"
	TypeImage      ResourceType = "image"
	TypeCompressed ResourceType = "compressed"
	TypeOther      ResourceType = "other"
)

// ResourceTypes 全部资源类型
var ResourceTypes = []ResourceType{TypeDocument, TypeVideo, TypeAudio, TypeSoftware, TypeImage, TypeCompressed, TypeOther}

// IsValid 是否为已知资源类型
func (t ResourceType) IsValid() bool {
	for _, known := range ResourceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// FilterAll 筛选时表示不过滤
const FilterAll = "all"

// Resource 资源
// 整个集合以JSON数组形式保存在单个键值槽位中，字段名与前端保持一致。
type Resource struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Platform      Platform     `json:"platform"`
	ResourceType  ResourceType `json:"resourceType"`
	Size          string       `json:"size"`
	Format        string       `json:"format"`
	UploadDate    string       `json:"uploadDate"`
	DownloadURL   string       `json:"downloadUrl"`
	ThumbnailURL  string       `json:"thumbnailUrl"`
	LikeCount     int          `json:"likeCount"`
	DownloadCount int          `json:"downloadCount"`
	Tags          []string     `json:"tags"`
}

// Clone 深拷贝，避免调用方共享 Tags 底层数组
func (r Resource) Clone() Resource {
	if r.Tags != nil {
		r.Tags = append([]string(nil), r.Tags...)
	}
	return r
}

// ResourceFields 创建资源时由调用方提供的字段
// id、计数器和上传日期由存储层分配。
type ResourceFields struct {
	Title        string
	Description  string
	Platform     Platform
	ResourceType ResourceType
	Size         string
	Format       string
	DownloadURL  string
	ThumbnailURL string
	Tags         []string
}

// ResourcePatch 部分更新，nil 字段保持原值
type ResourcePatch struct {
	Title         *string
	Description   *string
	Platform      *Platform
	ResourceType  *ResourceType
	Size          *string
	Format        *string
	DownloadURL   *string
	ThumbnailURL  *string
	LikeCount     *int
	DownloadCount *int
	Tags          []string
}

// Apply 将补丁浅合并到资源上，Tags 非 nil 时整体替换
func (p ResourcePatch) Apply(r *Resource) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Platform != nil {
		r.Platform = *p.Platform
	}
	if p.ResourceType != nil {
		r.ResourceType = *p.ResourceType
	}
	if p.Size != nil {
		r.Size = *p.Size
	}
	if p.Format != nil {
		r.Format = *p.Format
	}
	if p.DownloadURL != nil {
		r.DownloadURL = *p.DownloadURL
	}
	if p.ThumbnailURL != nil {
		r.ThumbnailURL = *p.ThumbnailURL
	}
	if p.LikeCount != nil {
		r.LikeCount = *p.LikeCount
	}
	if p.DownloadCount != nil {
		r.DownloadCount = *p.DownloadCount
	}
	if p.Tags != nil {
		r.Tags = append([]string(nil), p.Tags...)
	}
}

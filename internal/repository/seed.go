package repository

import "resource-share/internal/models"

var seedResources = []models.Resource{
	{
		ID:            "1",
		Title:         "2023年最新前端开发学习资料合集",
		Description:   "包含React、Vue、TypeScript等前端技术的最新学习资料和项目实战",
		Platform:      models.PlatformBaidu,
		ResourceType:  models.TypeDocument,
		Size:          "2.5GB",
		Format:        "zip",
		UploadDate:    "2025-08-15",
		DownloadURL:   "#",
		ThumbnailURL:  "https://space.coze.cn/api/coze_space/gen_image?image_size=square&prompt=frontend%20development%20resources%20folder&sign=31b606b8b61baf1ecba13b86a3bb8911",
		LikeCount:     328,
		DownloadCount: 1562,
		Tags:          []string{"前端", "学习资料", "React", "Vue"},
	},
	{
		ID:            "2",
		Title:         "Adobe Creative Cloud 2024全家桶安装包",
		Description:   "Adobe全套设计软件集合，包含Photoshop、Illustrator、Premiere等",
		Platform:      models.PlatformAliyun,
		ResourceType:  models.TypeSoftware,
		Size:          "18.7GB",
		Format:        "dmg,exe",
		UploadDate:    "2025-08-10",
		DownloadURL:   "#",
		ThumbnailURL:  "https://space.coze.cn/api/coze_space/gen_image?image_size=square&prompt=Adobe%20Creative%20Cloud%20software%20icon&sign=00719f9d9e8d42a63f50c8fc28c04dea",
		LikeCount:     542,
		DownloadCount: 3205,
		Tags:          []string{"设计", "软件", "Adobe", "创意"},
	},
	{
		ID:            "3",
		Title:         "精选4K风景摄影素材",
		Description:   "500张高质量4K风景照片，适合设计、视频制作等用途",
		Platform:      models.PlatformTencent,
		ResourceType:  models.TypeImage,
		Size:          "12.3GB",
		Format:        "jpg,png",
		UploadDate:    "2025-08-05",
		DownloadURL:   "#",
		ThumbnailURL:  "https://space.coze.cn/api/coze_space/gen_image?image_size=square&prompt=4K%20landscape%20photography%20collection&sign=d78b8a0c9118c07577f157e184fddd79",
		LikeCount:     289,
		DownloadCount: 956,
		Tags:          []string{"摄影", "素材", "4K", "风景"},
	},
	{
		ID:            "4",
		Title:         "Python数据分析实战项目教程",
		Description:   "从入门到进阶的Python数据分析教程，包含10个实战项目",
		Platform:      models.PlatformBaidu,
		ResourceType:  models.TypeVideo,
		Size:          "8.4GB",
		Format:        "mp4",
		UploadDate:    "2025-07-28",
		DownloadURL:   "#",
		ThumbnailURL:  "https://space.coze.cn/api/coze_space/gen_image?image_size=square&prompt=Python%20data%20analysis%20tutorial&sign=e235ef514e2a253175164749b0b9a5bd",
		LikeCount:     412,
		DownloadCount: 2103,
		Tags:          []string{"Python", "数据分析", "教程", "编程"},
	},
	{
		ID:            "5",
		Title:         "Windows系统优化工具包",
		Description:   "精选系统优化工具集合，提升电脑性能，清理垃圾文件",
		Platform:      models.Platform123Pan,
		ResourceType:  models.TypeSoftware,
		Size:          "1.2GB",
		Format:        "zip",
		UploadDate:    "2025-07-20",
		DownloadURL:   "#",
		ThumbnailURL:  "https://space.coze.cn/api/coze_space/gen_image?image_size=square&prompt=Windows%20system%20optimization%20tools&sign=8aab1af0a2319526ba2b67423583bbad",
		LikeCount:     187,
		DownloadCount: 843,
		Tags:          []string{"系统工具", "Windows", "优化", "实用软件"},
	},
	{
		ID:            "6",
		Title:         "世界经典文学名著电子书合集",
		Description:   "包含200部世界经典文学作品，epub格式，适合各种阅读器",
		Platform:      models.PlatformAliyun,
		ResourceType:  models.TypeDocument,
		Size:          "3.8GB",
		Format:        "epub",
		UploadDate:    "2025-07-15",
		DownloadURL:   "#",
		ThumbnailURL:  "https://space.coze.cn/api/coze_space/gen_image?image_size=square&prompt=classic%20literature%20ebooks%20collection&sign=41fc09ab688126793f6d7ef0f5ce61b7",
		LikeCount:     256,
		DownloadCount: 1320,
		Tags:          []string{"文学", "电子书", "经典", "名著"},
	},
}

// SeedResources 返回初始资源的副本，从未保存过数据时使用
func SeedResources() []models.Resource {
	out := make([]models.Resource, len(seedResources))
	for i, r := range seedResources {
		out[i] = r.Clone()
	}
	return out
}

package models

import "fmt"

const sampleAuthor = "张三"

// SamplePosts returns the built-in homepage dataset: two hand-written posts
// followed by eight generated filler posts. Every call returns fresh values.
func SamplePosts() []*Post {
	posts := []*Post{
		{
			ID:      1,
			Title:   "我的第一篇博客",
			Content: "这是我的第一篇博客文章，记录下生活中的点点滴滴，分享一些有趣的想法和经历。",
			Author:  sampleAuthor,
			Date:    "2024-03-20",
		},
		{
			ID:      2,
			Title:   "技术分享：React最佳实践",
			Content: "在这篇文章中，我将分享使用React开发时的一些最佳实践和经验，希望能帮助到其他开发者。",
			Author:  sampleAuthor,
			Date:    "2024-03-15",
		},
	}
	for i := 0; i < 8; i++ {
		id := i + 3
		posts = append(posts, &Post{
			ID:      id,
			Title:   fmt.Sprintf("博客标题 %d", id),
			Content: "这是一篇测试博客文章，用于填充页面内容。内容简短精炼，展示博客预览效果。",
			Author:  sampleAuthor,
			Date:    "2024-03-10",
		})
	}
	return posts
}

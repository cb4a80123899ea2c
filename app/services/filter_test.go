package services

import (
	"strings"
	"testing"

	"blogview/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(posts []*models.Post) []int {
	out := make([]int, 0, len(posts))
	for _, post := range posts {
		out = append(out, post.ID)
	}
	return out
}

func TestFilterPosts(t *testing.T) {
	sample := models.SamplePosts()

	tests := []struct {
		name string
		term string
		want []int
	}{
		{name: "empty term matches everything", term: "", want: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{name: "title match", term: "React", want: []int{2}},
		{name: "lower case title match", term: "react", want: []int{2}},
		{name: "upper case title match", term: "REACT", want: []int{2}},
		{name: "content only match", term: "点点滴滴", want: []int{1}},
		{name: "shared content", term: "测试博客", want: []int{3, 4, 5, 6, 7, 8, 9, 10}},
		{name: "title number", term: "标题 1", want: []int{10}},
		{name: "no match", term: "zzz_no_match", want: []int{}},
		{name: "whitespace is not trimmed", term: " React", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterPosts(sample, tt.term)))
		})
	}
}

func TestFilterPostsEmptyDataset(t *testing.T) {
	assert.Empty(t, FilterPosts(nil, ""))
	assert.Empty(t, FilterPosts([]*models.Post{}, "anything"))
	assert.NotNil(t, FilterPosts(nil, "x"))
}

func TestFilterPostsIdentityOnEmptyTerm(t *testing.T) {
	sample := models.SamplePosts()
	filtered := FilterPosts(sample, "")
	require.Len(t, filtered, len(sample))
	for i := range sample {
		assert.Same(t, sample[i], filtered[i])
	}
}

func TestFilterPostsCaseInsensitive(t *testing.T) {
	post := &models.Post{ID: 1, Title: "Hello"}
	for _, term := range []string{"hello", "HELLO", "HeLLo", "ell"} {
		assert.Equal(t, []int{1}, ids(FilterPosts([]*models.Post{post}, term)), term)
	}
}

func TestFilterPostsNoFalseNegatives(t *testing.T) {
	sample := models.SamplePosts()
	for _, post := range sample {
		for _, text := range []string{post.Title, post.Content} {
			runes := []rune(text)
			for start := 0; start < len(runes); start += 3 {
				for end := start + 1; end <= len(runes) && end <= start+5; end++ {
					term := string(runes[start:end])
					assert.Contains(t, ids(FilterPosts(sample, term)), post.ID, "term %q", term)
				}
			}
		}
	}
}

func TestFilterPostsNoFalsePositives(t *testing.T) {
	sample := models.SamplePosts()
	for _, term := range []string{"React", "第一篇", "填充", "标题 7", "nothing"} {
		needle := strings.ToLower(term)
		matched := map[int]bool{}
		for _, post := range FilterPosts(sample, term) {
			matched[post.ID] = true
		}
		for _, post := range sample {
			contains := strings.Contains(strings.ToLower(post.Title), needle) ||
				strings.Contains(strings.ToLower(post.Content), needle)
			assert.Equal(t, contains, matched[post.ID], "post %d term %q", post.ID, term)
		}
	}
}

func TestFilterPostsPreservesOrder(t *testing.T) {
	posts := []*models.Post{
		{ID: 9, Title: "go tips"},
		{ID: 2, Title: "rust"},
		{ID: 5, Title: "more GO"},
		{ID: 1, Title: "x", Content: "going"},
	}
	assert.Equal(t, []int{9, 5, 1}, ids(FilterPosts(posts, "go")))
}

func TestFilterPostsDoesNotMutate(t *testing.T) {
	sample := models.SamplePosts()
	before := *sample[1]
	FilterPosts(sample, "react")
	assert.Equal(t, before, *sample[1])
	assert.Len(t, sample, 10)
}

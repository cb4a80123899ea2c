package repositories

import (
	"testing"

	"blogview/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostKeyOrdering(t *testing.T) {
	assert.Equal(t, "post:0000000000", string(postKey(0)))
	assert.Less(t, string(postKey(9)), string(postKey(10)))
	assert.Equal(t, "id:42", string(indexKey(42)))
}

func TestMarshalRoundTrip(t *testing.T) {
	post := &models.Post{ID: 1, Title: "我的第一篇博客", Author: "张三", Date: "2024-03-20"}

	data, err := marshalEntity(post)
	require.NoError(t, err)

	var decoded models.Post
	require.NoError(t, unmarshalEntity(data, &decoded))
	assert.Equal(t, *post, decoded)

	assert.Error(t, unmarshalEntity([]byte("{"), &decoded))
}

func TestMemoryPostRepository(t *testing.T) {
	sample := models.SamplePosts()
	repo, err := NewMemoryPostRepository(sample)
	require.NoError(t, err)

	t.Run("list returns the same posts in order", func(t *testing.T) {
		posts, err := repo.List()
		require.NoError(t, err)
		require.Len(t, posts, len(sample))
		for i := range sample {
			assert.Same(t, sample[i], posts[i])
		}
	})

	t.Run("list returns a copy of the slice", func(t *testing.T) {
		posts, _ := repo.List()
		posts[0] = nil
		again, _ := repo.List()
		assert.NotNil(t, again[0])
	})

	t.Run("get by id", func(t *testing.T) {
		post, err := repo.GetByID(1)
		require.NoError(t, err)
		assert.Same(t, sample[0], post)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.GetByID(11)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid dataset", func(t *testing.T) {
		_, err := NewMemoryPostRepository([]*models.Post{{ID: 1}})
		assert.Error(t, err)
	})
}

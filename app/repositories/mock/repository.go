package mock

import (
	"sync"

	"blogview/app/models"
	"blogview/app/repositories"
)

// PostRepository is an in-memory PostRepository whose calls can be made to fail.
type PostRepository struct {
	posts []*models.Post
	Err   error
	mutex sync.RWMutex
	calls int
}

func NewPostRepository(posts ...*models.Post) *PostRepository {
	return &PostRepository{posts: posts}
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	posts := make([]*models.Post, len(m.posts))
	copy(posts, m.posts)
	return posts, nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	for _, post := range m.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// Calls reports how many repository methods have been invoked.
func (m *PostRepository) Calls() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.calls
}

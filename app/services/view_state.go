package services

import (
	"sync"

	"blogview/app/models"
)

// Snapshot is the read model handed to renderers.
type Snapshot struct {
	SearchTerm string         `json:"search_term"`
	Posts      []*models.Post `json:"posts"`
	Selected   *models.Post   `json:"selected"`
}

// Detail reports whether a post is selected.
func (s Snapshot) Detail() bool {
	return s.Selected != nil
}

// ViewState holds one visitor's homepage state: the full dataset, the
// current search term, the posts matching it and the selected post.
// Events are applied one at a time.
type ViewState struct {
	mutex    sync.RWMutex
	all      []*models.Post
	term     string
	filtered []*models.Post
	selected *models.Post
}

// NewViewState starts in the list state with an empty search term.
func NewViewState(posts []*models.Post) *ViewState {
	return &ViewState{
		all:      posts,
		filtered: FilterPosts(posts, ""),
	}
}

// OnSearchChange records term and re-filters the full dataset.
func (v *ViewState) OnSearchChange(term string) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.term = term
	v.filtered = FilterPosts(v.all, term)
}

// OnSelect switches to the detail view for post. The post is not checked
// against the dataset.
func (v *ViewState) OnSelect(post *models.Post) {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.selected = post
}

// OnDeselect returns to the list view. The filtered posts are untouched.
func (v *ViewState) OnDeselect() {
	v.mutex.Lock()
	defer v.mutex.Unlock()
	v.selected = nil
}

// Lookup finds a post of the full dataset by ID, regardless of the current
// search term.
func (v *ViewState) Lookup(id int) (*models.Post, bool) {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	for _, post := range v.all {
		if post.ID == id {
			return post, true
		}
	}
	return nil, false
}

// Snapshot returns the current read model.
func (v *ViewState) Snapshot() Snapshot {
	v.mutex.RLock()
	defer v.mutex.RUnlock()
	posts := make([]*models.Post, len(v.filtered))
	copy(posts, v.filtered)
	return Snapshot{
		SearchTerm: v.term,
		Posts:      posts,
		Selected:   v.selected,
	}
}

package repositories

import (
	"time"

	"socialsim/models"
)

type postRepository struct {
	posts  []*models.Post
	nextID int
	now    func() time.Time
}

// NewPostRepository returns an empty post registry whose ids start at 1.
// A nil clock defaults to time.Now.
func NewPostRepository(now func() time.Time) PostRepository {
	if now == nil {
		now = time.Now
	}
	return &postRepository{nextID: 1, now: now}
}

func (r *postRepository) Create(author *models.User, text string) *models.Post {
	post := author.Post(r.nextID, text, r.now())
	r.nextID++
	r.posts = append(r.posts, post)
	return post
}

func (r *postRepository) FindByID(id int) (*models.Post, error) {
	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, models.ErrPostNotFound
}

// All returns every post in creation order.
func (r *postRepository) All() []*models.Post {
	out := make([]*models.Post, len(r.posts))
	copy(out, r.posts)
	return out
}

func (r *postRepository) Count() int {
	return len(r.posts)
}

// Feed assembles the feed of user from every registered post.
func (r *postRepository) Feed(user *models.User) []*models.Post {
	return user.Feed(r.posts)
}

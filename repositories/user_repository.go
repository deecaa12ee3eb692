package repositories

import (
	"socialsim/models"
)

type userRepository struct {
	byName map[string]*models.User
	order  []*models.User
}

// NewUserRepository returns an empty in-memory user registry. Users are
// listed in the order they registered.
func NewUserRepository() UserRepository {
	return &userRepository{byName: make(map[string]*models.User)}
}

// FindByUsername looks up a registered user.
func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	user, ok := r.byName[username]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

// Create registers a new user
func (r *userRepository) Create(username string) (*models.User, error) {
	if r.Exists(username) {
		return nil, models.ErrUsernameTaken
	}
	user := models.NewUser(username)
	r.byName[username] = user
	r.order = append(r.order, user)
	return user, nil
}

// Check if a user exists by username
func (r *userRepository) Exists(username string) bool {
	_, ok := r.byName[username]
	return ok
}

// Follow a user
func (r *userRepository) Follow(follower, followee *models.User) error {
	if !follower.Follow(followee) {
		return models.ErrCannotFollow
	}
	return nil
}

// Unfollow a user
func (r *userRepository) Unfollow(follower, followee *models.User) error {
	if !follower.Unfollow(followee) {
		return models.ErrNotFollowing
	}
	return nil
}

func (r *userRepository) All() []*models.User {
	out := make([]*models.User, len(r.order))
	copy(out, r.order)
	return out
}

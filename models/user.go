package models

import (
	"sort"
	"time"
)

// User represents a registered account
type User struct {
	Username string
	Posts    []*Post

	following map[string]struct{}
	followers map[string]struct{}
}

// NewUser creates a user with no posts and no relationships.
func NewUser(username string) *User {
	return &User{
		Username:  username,
		Posts:     make([]*Post, 0),
		following: make(map[string]struct{}),
		followers: make(map[string]struct{}),
	}
}

// Post creates a post authored by u and appends it to u.Posts. Registering the
// post globally is left to the caller.
func (u *User) Post(id int, text string, at time.Time) *Post {
	p := NewPost(id, u.Username, text, at)
	u.Posts = append(u.Posts, p)
	return p
}

// Follow makes u follow other, updating both sides. It returns false and
// changes nothing if other is u or is already followed.
func (u *User) Follow(other *User) bool {
	if other.Username == u.Username {
		return false
	}
	if u.IsFollowing(other.Username) {
		return false
	}
	u.following[other.Username] = struct{}{}
	other.followers[u.Username] = struct{}{}
	return true
}

// Unfollow removes the relationship from both sides. It returns false if u
// was not following other.
func (u *User) Unfollow(other *User) bool {
	if !u.IsFollowing(other.Username) {
		return false
	}
	delete(u.following, other.Username)
	delete(other.followers, u.Username)
	return true
}

func (u *User) IsFollowing(username string) bool {
	_, ok := u.following[username]
	return ok
}

func (u *User) HasFollower(username string) bool {
	_, ok := u.followers[username]
	return ok
}

func (u *User) FollowingCount() int { return len(u.following) }

func (u *User) FollowerCount() int { return len(u.followers) }

// Following returns the followed usernames in sorted order.
func (u *User) Following() []string {
	return sortedKeys(u.following)
}

// Followers returns the follower usernames in sorted order.
func (u *User) Followers() []string {
	return sortedKeys(u.followers)
}

// Feed returns the posts in allPosts written by users u follows, newest first.
func (u *User) Feed(allPosts []*Post) []*Post {
	return BuildFeed(u.following, allPosts)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMirrored(t *testing.T, users ...*User) {
	t.Helper()
	for _, a := range users {
		for _, b := range users {
			assert.Equal(t, a.IsFollowing(b.Username), b.HasFollower(a.Username),
				"%s following %s is not mirrored", a.Username, b.Username)
		}
	}
}

func TestFollowTwice(t *testing.T) {
	alice, bob := NewUser("alice"), NewUser("bob")

	require.True(t, alice.Follow(bob))
	assertMirrored(t, alice, bob)

	require.False(t, alice.Follow(bob))
	assertMirrored(t, alice, bob)

	assert.Equal(t, []string{"bob"}, alice.Following())
	assert.Equal(t, []string{"alice"}, bob.Followers())
	assert.Equal(t, 1, alice.FollowingCount())
	assert.Equal(t, 0, alice.FollowerCount())
}

func TestFollowSelf(t *testing.T) {
	alice := NewUser("alice")

	assert.False(t, alice.Follow(alice))
	assert.Empty(t, alice.Following())
	assert.Empty(t, alice.Followers())
}

func TestFollowSelfByDistinctValue(t *testing.T) {
	alice := NewUser("alice")
	same := NewUser("alice")

	assert.False(t, alice.Follow(same))
	assert.Zero(t, alice.FollowingCount())
}

func TestUnfollow(t *testing.T) {
	alice, bob := NewUser("alice"), NewUser("bob")

	assert.False(t, alice.Unfollow(bob))
	assertMirrored(t, alice, bob)

	require.True(t, alice.Follow(bob))
	assert.True(t, alice.Unfollow(bob))
	assertMirrored(t, alice, bob)
	assert.Zero(t, alice.FollowingCount())
	assert.Zero(t, bob.FollowerCount())

	assert.False(t, alice.Unfollow(bob))
}

func TestMutualFollow(t *testing.T) {
	alice, bob, carol := NewUser("alice"), NewUser("bob"), NewUser("carol")

	require.True(t, alice.Follow(bob))
	require.True(t, bob.Follow(alice))
	require.True(t, carol.Follow(bob))
	assertMirrored(t, alice, bob, carol)

	assert.Equal(t, []string{"alice", "carol"}, bob.Followers())

	require.True(t, alice.Unfollow(bob))
	assertMirrored(t, alice, bob, carol)
	assert.True(t, bob.IsFollowing("alice"))
	assert.Equal(t, []string{"carol"}, bob.Followers())
}

func TestUserPostAppends(t *testing.T) {
	bob := NewUser("bob")

	first := bob.Post(1, "one", created)
	second := bob.Post(2, "two", created)

	require.Len(t, bob.Posts, 2)
	assert.Same(t, first, bob.Posts[0])
	assert.Same(t, second, bob.Posts[1])
	assert.Equal(t, "bob", second.Author)
	assert.Equal(t, created, second.CreatedAt)
}

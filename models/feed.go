package models

import "sort"

// BuildFeed filters posts down to those whose author is in following and
// orders them by CreatedAt, most recent first. Posts with equal timestamps
// keep their relative order from posts.
func BuildFeed(following map[string]struct{}, posts []*Post) []*Post {
	feed := make([]*Post, 0)
	if len(following) == 0 {
		return feed
	}
	for _, p := range posts {
		if _, ok := following[p.Author]; ok {
			feed = append(feed, p)
		}
	}
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})
	return feed
}

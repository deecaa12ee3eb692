package models

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the timestamp format used when rendering a post.
const TimeLayout = "2006-01-02 15:04"

// Comment is a single comment left on a post.
type Comment struct {
	Username string
	Text     string
}

// Post represents a message published by a user
type Post struct {
	ID        int
	Author    string
	Text      string
	CreatedAt time.Time

	likers   map[string]struct{}
	comments []Comment
}

// NewPost creates a post with no likes and no comments.
func NewPost(id int, author, text string, createdAt time.Time) *Post {
	return &Post{
		ID:        id,
		Author:    author,
		Text:      text,
		CreatedAt: createdAt,
		likers:    make(map[string]struct{}),
		comments:  make([]Comment, 0),
	}
}

// Like records a like by username. Liking twice has no further effect.
func (p *Post) Like(username string) {
	p.likers[username] = struct{}{}
}

// LikedBy reports whether username has liked the post.
func (p *Post) LikedBy(username string) bool {
	_, ok := p.likers[username]
	return ok
}

func (p *Post) LikeCount() int {
	return len(p.likers)
}

// Comment appends a comment. Empty text is accepted.
func (p *Post) Comment(username, text string) {
	p.comments = append(p.comments, Comment{Username: username, Text: text})
}

// Comments returns a copy of the comments in the order they were added.
func (p *Post) Comments() []Comment {
	out := make([]Comment, len(p.comments))
	copy(out, p.comments)
	return out
}

// String renders the post the way it is shown in a feed.
func (p *Post) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s at %s: %s 👍%d\nComments:\n",
		p.ID, p.Author, p.CreatedAt.Format(TimeLayout), p.Text, p.LikeCount())

	if len(p.comments) == 0 {
		b.WriteString("  No comments yet.")
		return b.String()
	}
	lines := make([]string, len(p.comments))
	for i, c := range p.comments {
		lines[i] = fmt.Sprintf("  - %s: %s", c.Username, c.Text)
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

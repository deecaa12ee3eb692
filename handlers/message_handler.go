package handlers

import (
	"socialsim/monitoring"

	"github.com/sirupsen/logrus"
)

// Post publishes text as the logged-in user.
func (s *Session) Post(text string) error {
	if err := s.requireLogin("post"); err != nil {
		return err
	}
	post := s.postRepo.Create(s.current, text)
	monitoring.MessagesPosted.Inc()
	s.log().WithField("post_id", post.ID).Info("post created")
	s.printf("Posted with ID %d.", post.ID)
	return nil
}

func (s *Session) Like(postID int) error {
	if err := s.requireLogin("like"); err != nil {
		return err
	}
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return s.fail("like", err)
	}
	post.Like(s.current.Username)
	monitoring.Likes.Inc()
	s.log().WithField("post_id", postID).Info("post liked")
	s.printf("Liked post %d.", postID)
	return nil
}

func (s *Session) Comment(postID int, text string) error {
	if err := s.requireLogin("comment"); err != nil {
		return err
	}
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return s.fail("comment", err)
	}
	post.Comment(s.current.Username, text)
	monitoring.Comments.Inc()
	s.log().WithField("post_id", postID).Info("comment added")
	s.printf("Comment added to post %d.", postID)
	return nil
}

// ShowFeed prints the posts of followed users, newest first.
func (s *Session) ShowFeed() error {
	if err := s.requireLogin("feed"); err != nil {
		return err
	}
	feed := s.postRepo.Feed(s.current)
	s.log().WithFields(logrus.Fields{"posts": len(feed)}).Debug("feed assembled")
	if len(feed) == 0 {
		s.printf("No posts to show. Follow users to see feed.")
		return nil
	}
	s.printf("--- Feed ---")
	for _, p := range feed {
		s.printf("%s", p.String())
	}
	return nil
}

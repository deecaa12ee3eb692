package handlers

import (
	"socialsim/monitoring"
)

func (s *Session) Follow(target string) error {
	if err := s.requireLogin("follow"); err != nil {
		return err
	}
	other, err := s.userRepo.FindByUsername(target)
	if err != nil {
		return s.fail("follow", err)
	}
	if err := s.userRepo.Follow(s.current, other); err != nil {
		return s.fail("follow", err)
	}
	monitoring.Follows.Inc()
	s.log().WithField("target", target).Info("followed user")
	s.printf("You now follow %s.", target)
	return nil
}

func (s *Session) Unfollow(target string) error {
	if err := s.requireLogin("unfollow"); err != nil {
		return err
	}
	other, err := s.userRepo.FindByUsername(target)
	if err != nil {
		return s.fail("unfollow", err)
	}
	if err := s.userRepo.Unfollow(s.current, other); err != nil {
		return s.fail("unfollow", err)
	}
	monitoring.Unfollows.Inc()
	s.log().WithField("target", target).Info("unfollowed user")
	s.printf("You have unfollowed %s.", target)
	return nil
}

// ShowUsers lists every registered user in registration order. It does not
// require a login.
func (s *Session) ShowUsers() error {
	s.printf("--- Registered Users ---")
	for _, u := range s.userRepo.All() {
		s.printf("- %s (Followers: %d, Following: %d)", u.Username, u.FollowerCount(), u.FollowingCount())
	}
	return nil
}

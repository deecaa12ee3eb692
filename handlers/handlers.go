package handlers

import (
	"errors"
	"fmt"
	"io"

	"socialsim/models"
	"socialsim/monitoring"
	"socialsim/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session holds the registries and the currently logged-in user. It writes
// one message per operation to its output and returns the error kind, if any.
type Session struct {
	userRepo repositories.UserRepository
	postRepo repositories.PostRepository
	out      io.Writer

	current   *models.User
	sessionID string
}

func NewSession(userRepo repositories.UserRepository, postRepo repositories.PostRepository, out io.Writer) *Session {
	return &Session{
		userRepo: userRepo,
		postRepo: postRepo,
		out:      out,
	}
}

// Current returns the logged-in user, or nil.
func (s *Session) Current() *models.User {
	return s.current
}

func (s *Session) LoggedIn() bool {
	return s.current != nil
}

func (s *Session) Signup(username string) error {
	if _, err := s.userRepo.Create(username); err != nil {
		return s.fail("signup", err)
	}
	monitoring.RegisterSuccess.Inc()
	s.log().WithField("username", username).Info("user registered")
	s.printf("User '%s' created.", username)
	return nil
}

// Login replaces any existing session with one for username.
func (s *Session) Login(username string) error {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		monitoring.LoginFailure.WithLabelValues("unknown_user").Inc()
		return s.fail("login", models.ErrUnknownUser)
	}
	if s.current != nil {
		s.log().Debug("replacing active session")
	}
	s.current = user
	s.sessionID = uuid.NewString()
	monitoring.LoginSuccess.Inc()
	s.log().Info("user logged in")
	s.printf("Logged in as '%s'.", username)
	return nil
}

func (s *Session) Logout() error {
	if s.current == nil {
		s.printf("Already logged out.")
		return nil
	}
	s.log().Info("user logged out")
	name := s.current.Username
	s.current = nil
	s.sessionID = ""
	s.printf("Logged out from %s.", name)
	return nil
}

func (s *Session) requireLogin(command string) error {
	if s.current == nil {
		return s.fail(command, models.ErrNotLoggedIn)
	}
	return nil
}

// fail reports err to the user and records it.
func (s *Session) fail(command string, err error) error {
	monitoring.CommandFailure.WithLabelValues(command, reason(err)).Inc()
	s.log().WithFields(logrus.Fields{
		"command": command,
		"reason":  reason(err),
	}).Debug("command failed")
	s.printf("%s", err.Error())
	return err
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

func (s *Session) log() *logrus.Entry {
	fields := logrus.Fields{}
	if s.current != nil {
		fields["session"] = s.sessionID
		fields["user"] = s.current.Username
	}
	return logrus.WithFields(fields)
}

var reasons = []struct {
	err   error
	label string
}{
	{models.ErrUsernameTaken, "username_taken"},
	{models.ErrUnknownUser, "unknown_user"},
	{models.ErrUserNotFound, "user_not_found"},
	{models.ErrNotLoggedIn, "not_logged_in"},
	{models.ErrPostNotFound, "post_not_found"},
	{models.ErrCannotFollow, "self_or_duplicate_follow"},
	{models.ErrNotFollowing, "not_following"},
	{models.ErrMalformedArgument, "malformed_argument"},
}

func reason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.label
		}
	}
	return "other"
}

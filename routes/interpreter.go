package routes

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"socialsim/handlers"
	"socialsim/models"
	"socialsim/monitoring"

	"github.com/sirupsen/logrus"
)

const (
	welcomeText = "Welcome to CLI Social Media! Type 'help' for commands."
	helpText    = "Commands: signup [name], login [name], logout, post [text], " +
		"follow [name], unfollow [name], like [post_id], comment [post_id] [comment text], " +
		"feed, users, exit"
	unknownText  = "Unknown command. Type 'help'."
	farewellText = "Goodbye!"

	likeUsage    = "like [post_id]"
	commentUsage = "comment [post_id] [comment text]"

	// noSuchPost stands in for ids too large for an int; no post has it.
	noSuchPost = -1
)

// command handles the argument text of one verb. It returns true when the
// interpreter should stop.
type command func(arg string) bool

// Interpreter turns text commands into Session calls.
type Interpreter struct {
	session  *handlers.Session
	out      io.Writer
	prompt   string
	commands map[string]command
}

func NewInterpreter(session *handlers.Session, out io.Writer, prompt string) *Interpreter {
	it := &Interpreter{session: session, out: out, prompt: prompt}
	it.commands = map[string]command{
		"help":     it.help,
		"signup":   func(arg string) bool { _ = session.Signup(arg); return false },
		"login":    func(arg string) bool { _ = session.Login(arg); return false },
		"logout":   func(string) bool { _ = session.Logout(); return false },
		"post":     func(arg string) bool { _ = session.Post(arg); return false },
		"follow":   func(arg string) bool { _ = session.Follow(arg); return false },
		"unfollow": func(arg string) bool { _ = session.Unfollow(arg); return false },
		"like":     it.like,
		"comment":  it.comment,
		"feed":     func(string) bool { _ = session.ShowFeed(); return false },
		"users":    func(string) bool { _ = session.ShowUsers(); return false },
		"exit":     it.exit,
	}
	return it
}

// Run prints the welcome banner and executes one command per line of in
// until exit, end of input, or ctx is cancelled.
func (it *Interpreter) Run(ctx context.Context, in io.Reader) error {
	reader := bufio.NewReader(in)

	it.println(welcomeText)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(it.out, it.prompt)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("error reading command: %w", err)
		}
		if line != "" && it.Execute(strings.TrimRight(line, "\r\n")) {
			return nil
		}
		if err != nil {
			logrus.Debug("end of input")
			return nil
		}
	}
}

// Execute runs a single command line and reports whether it was exit.
func (it *Interpreter) Execute(line string) bool {
	verb, arg := splitCommand(line)
	if verb == "" {
		return false
	}
	verb = strings.ToLower(verb)

	cmd, ok := it.commands[verb]
	if !ok {
		logrus.WithField("verb", verb).Debug("unknown command")
		it.println(unknownText)
		return false
	}

	defer monitoring.ObserveCommand(verb, time.Now())
	return cmd(arg)
}

func (it *Interpreter) help(string) bool {
	it.println(helpText)
	return false
}

func (it *Interpreter) exit(string) bool {
	it.println(farewellText)
	return true
}

func (it *Interpreter) like(arg string) bool {
	id, ok := parsePostID(arg)
	if !ok {
		it.usage("like", likeUsage)
		return false
	}
	_ = it.session.Like(id)
	return false
}

func (it *Interpreter) comment(arg string) bool {
	idText, text := splitCommand(arg)
	id, ok := parsePostID(idText)
	if !ok || text == "" {
		it.usage("comment", commentUsage)
		return false
	}
	_ = it.session.Comment(id, text)
	return false
}

func (it *Interpreter) usage(command, usage string) {
	err := &models.UsageError{Usage: usage}
	monitoring.CommandFailure.WithLabelValues(command, "malformed_argument").Inc()
	it.println(err.Error())
}

func (it *Interpreter) println(text string) {
	fmt.Fprintln(it.out, text)
}

// splitCommand trims line and splits it at the first run of whitespace.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeftFunc(line[i:], unicode.IsSpace)
}

// parsePostID accepts a non-empty string of ASCII digits. Values too large
// for an int parse as noSuchPost.
func parsePostID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseUint(s, 10, strconv.IntSize)
	if errors.Is(err, strconv.ErrRange) || id > math.MaxInt {
		return noSuchPost, true
	}
	if err != nil {
		return 0, false
	}
	return int(id), true
}

package monitoring

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	CommandDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "command_duration_seconds",
			Help:    "Duration of interpreter commands.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)

	CommandFailure = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "command_failure_total",
		Help: "Total commands that reported an error",
	}, []string{"command", "reason"})

	LoginSuccess = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "login_success_total",
		Help: "Total successful login attempts",
	})

	LoginFailure = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "login_failure_total",
		Help: "Total failed login attempts",
	}, []string{"reason"})

	RegisterSuccess = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "register_success_total",
		Help: "Total successful register attempts",
	})

	MessagesPosted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "messages_posted_total",
		Help: "Total messages successfully posted",
	})

	Follows = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "follows_total",
		Help: "Total follow relationships created",
	})

	Unfollows = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "unfollows_total",
		Help: "Total follow relationships removed",
	})

	Likes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "likes_total",
		Help: "Total like commands applied to a post",
	})

	Comments = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "comments_total",
		Help: "Total comments added",
	})
)

func init() {
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(CommandDuration)
	prometheus.MustRegister(CommandFailure)
	prometheus.MustRegister(LoginSuccess)
	prometheus.MustRegister(LoginFailure)
	prometheus.MustRegister(RegisterSuccess)
	prometheus.MustRegister(MessagesPosted)
	prometheus.MustRegister(Follows)
	prometheus.MustRegister(Unfollows)
	prometheus.MustRegister(Likes)
	prometheus.MustRegister(Comments)
}

// ObserveCommand records how long a command took to handle.
func ObserveCommand(command string, start time.Time) {
	CommandDuration.WithLabelValues(command).Observe(time.Since(start).Seconds())
}

// Middleware to track request timing and status code
type statusRecordingWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecordingWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusRecordingWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := fmt.Sprintf("%d", rw.statusCode)

		RequestDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(duration)
	})
}

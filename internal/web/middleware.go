package web

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
	"github.com/google/uuid"

	applog "fixtureconv/internal/log"
)

const HeaderRequestID = "X-Request-ID"

// requestID reuses the caller's X-Request-ID or mints a new one and stores it
// in the request context for the loggers.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, id)
		ctx := applog.ContextWithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			buf := make([]byte, 8192)
			n := runtime.Stack(buf, false)

			logger := applog.WithComponentFromContext(r.Context(), "panic-recovery")
			logger.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Interface("panic_value", rec).
				Str("stack_trace", string(buf[:n])).
				Msg("panic recovered in HTTP handler")

			writeError(w, http.StatusInternalServerError, "Palvelussa tapahtui odottamaton virhe.")
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rw *statusRecorder) WriteHeader(code int) {
	if rw.status == 0 {
		rw.status = code
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	if rw.status == 0 {
		rw.status = http.StatusOK
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		logger := applog.WithComponentFromContext(r.Context(), "http")
		event := logger.Info()
		if status >= http.StatusInternalServerError {
			event = logger.Error()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", rec.bytes).
			Str("remote_addr", r.RemoteAddr).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// rateLimit allows limit requests per minute per client IP.
func rateLimit(limit int) func(http.Handler) http.Handler {
	window := time.Minute
	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			writeError(w, http.StatusTooManyRequests, "Liian monta pyyntöä. Yritä hetken päästä uudelleen.")
		}),
	)
}

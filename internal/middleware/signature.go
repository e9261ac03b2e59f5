package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	"webhook-guard/internal/common/logging"
	"webhook-guard/internal/signature"
)

const (
	// SignatureHeader is the HTTP header carrying the webhook signature.
	SignatureHeader = "X-Line-Signature"

	// DefaultMaxBodyBytes caps how much request body is read for
	// verification when SignatureConfig.MaxBodyBytes is zero.
	DefaultMaxBodyBytes int64 = 1 << 20
)

// Fixed rejection reasons. These are part of the response contract: clients
// always see one of these two strings, never the submitted signature or the
// computed digest.
const (
	ReasonNoSignature      = "no signature"
	ReasonValidationFailed = "signature validation failed"
)

// Rejection describes why a request was refused before reaching the
// protected handler. Rejections are expected per-request outcomes, not
// errors; each request is judged independently and nothing is cached.
type Rejection struct {
	Status int
	Reason string
}

// RejectionHandler renders a rejection to the client.
type RejectionHandler func(w http.ResponseWriter, r *http.Request, rejection Rejection)

// Recorder receives verification outcomes for instrumentation.
type Recorder interface {
	RecordAccepted()
	RecordRejected(reason string)
	ObserveVerification(d time.Duration)
}

// SignatureConfig configures NewSignatureMiddleware. ChannelSecret is
// required; everything else has working defaults.
type SignatureConfig struct {
	// ChannelSecret is the shared secret webhook senders sign with.
	ChannelSecret string

	// Logger receives rejection and body-read failure logs. Defaults to
	// the global logger.
	Logger logging.Logger

	// OnRejected renders 401 responses. Defaults to http.Error with the
	// rejection reason as plain text.
	OnRejected RejectionHandler

	// Metrics optionally records verification outcomes.
	Metrics Recorder

	// MaxBodyBytes caps the request body size. Zero keeps
	// DefaultMaxBodyBytes; a negative value disables the cap.
	MaxBodyBytes int64
}

// SignatureMiddleware rejects requests whose X-Line-Signature header does
// not match the HMAC-SHA256 digest of the raw request body.
//
// The derived key is the only state shared across requests; it is immutable
// after construction, so a single middleware instance serves any number of
// concurrent requests.
type SignatureMiddleware struct {
	key        *signature.Key
	logger     logging.Logger
	onRejected RejectionHandler
	metrics    Recorder
	maxBody    int64
}

// NewSignatureMiddleware derives the verification key from cfg.ChannelSecret
// and returns a middleware instance.
//
// An empty secret is a configuration error surfaced here, at setup time,
// before any request is processed.
func NewSignatureMiddleware(cfg SignatureConfig) (*SignatureMiddleware, error) {
	key, err := signature.DeriveKey(cfg.ChannelSecret)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}

	onRejected := cfg.OnRejected
	if onRejected == nil {
		onRejected = defaultRejectionHandler
	}

	maxBody := cfg.MaxBodyBytes
	if maxBody == 0 {
		maxBody = DefaultMaxBodyBytes
	}

	return &SignatureMiddleware{
		key:        key,
		logger:     logger,
		onRejected: onRejected,
		metrics:    cfg.Metrics,
		maxBody:    maxBody,
	}, nil
}

// Middleware wraps next with signature verification. Requests reach next
// only after their signature has been verified against the raw body; the
// body is restored so next observes the exact bytes that were verified.
//
// Install this stage ahead of anything that consumes or transforms the
// request body.
func (m *SignatureMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sig := r.Header.Get(SignatureHeader)
		if sig == "" {
			m.reject(w, r, Rejection{Status: http.StatusUnauthorized, Reason: ReasonNoSignature})
			return
		}

		body, err := m.preserveRequestBody(r)
		if err != nil {
			m.failBodyRead(w, r, err)
			return
		}

		start := time.Now()
		ok := m.key.Verify(body, sig)
		if m.metrics != nil {
			m.metrics.ObserveVerification(time.Since(start))
		}

		if !ok {
			m.reject(w, r, Rejection{Status: http.StatusUnauthorized, Reason: ReasonValidationFailed})
			return
		}

		if m.metrics != nil {
			m.metrics.RecordAccepted()
		}

		next.ServeHTTP(w, r)
	})
}

// preserveRequestBody reads the complete request body, capped by maxBody,
// and replaces it with a fresh reader over the same bytes so the downstream
// handler sees the body untouched.
func (m *SignatureMiddleware) preserveRequestBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	reader := r.Body
	if m.maxBody > 0 {
		reader = http.MaxBytesReader(nil, r.Body, m.maxBody)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	r.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}

// reject records, logs, and renders a rejection. The log carries the fixed
// reason only; signatures and digests never appear in logs.
func (m *SignatureMiddleware) reject(w http.ResponseWriter, r *http.Request, rejection Rejection) {
	if m.metrics != nil {
		m.metrics.RecordRejected(rejection.Reason)
	}

	m.logger.WithContext(r.Context()).Warn("Webhook rejected",
		logging.Field{Key: "reason", Value: rejection.Reason},
		logging.Field{Key: "status", Value: rejection.Status},
		logging.Field{Key: "method", Value: r.Method},
		logging.Field{Key: "path", Value: r.URL.Path},
		logging.Field{Key: "remote_addr", Value: r.RemoteAddr},
	)

	m.onRejected(w, r, rejection)
}

// failBodyRead handles body stream failures. These are transport-level
// conditions, not authentication outcomes, so they stay outside the 401
// contract: an over-cap body maps to 413 and anything else to 500.
func (m *SignatureMiddleware) failBodyRead(w http.ResponseWriter, r *http.Request, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		m.logger.WithContext(r.Context()).Warn("Webhook body over size cap",
			logging.Field{Key: "limit_bytes", Value: maxBytesErr.Limit},
			logging.Field{Key: "method", Value: r.Method},
			logging.Field{Key: "path", Value: r.URL.Path},
		)
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}

	m.logger.WithContext(r.Context()).Error("Failed to read webhook body", err,
		logging.Field{Key: "method", Value: r.Method},
		logging.Field{Key: "path", Value: r.URL.Path},
	)
	http.Error(w, "failed to read request body", http.StatusInternalServerError)
}

// defaultRejectionHandler renders the rejection reason as plain text.
func defaultRejectionHandler(w http.ResponseWriter, _ *http.Request, rejection Rejection) {
	http.Error(w, rejection.Reason, rejection.Status)
}

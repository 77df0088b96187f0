package hashing

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hasbyte1/go-bcrypt/bcrypt"
)

// Primitive is the adaptive hash function a [Hasher] delegates to.
//
// GenerateSalt returns a salt that embeds cost and prefix; Hash returns a
// self-contained hash that embeds the same salt, so Hash(password, hash)
// recomputes hash for the right password. [bcrypt.Primitive] implements it.
type Primitive interface {
	GenerateSalt(cost int, prefix string) ([]byte, error)
	Hash(password, salt []byte) ([]byte, error)
}

// Hasher generates and verifies bcrypt password hashes.
//
// # Thread safety
//
// Hasher is immutable after construction and safe for concurrent use.
// Generate is deliberately slow (seconds at high cost); request handlers
// should call it off their latency-sensitive path.
type Hasher struct {
	cfg       Config
	primitive Primitive
	logger    *slog.Logger
	observer  Observer
}

// Option customises a [Hasher] at construction.
type Option func(*Hasher)

// WithPrimitive replaces the default [bcrypt.Primitive].
func WithPrimitive(p Primitive) Option {
	return func(h *Hasher) {
		if p != nil {
			h.primitive = p
		}
	}
}

// WithLogger sets the logger used for operator warnings.
// Default: [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(h *Hasher) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithObserver registers an [Observer] notified after every Generate and
// Verify call.
func WithObserver(o Observer) Option {
	return func(h *Hasher) {
		if o != nil {
			h.observer = o
		}
	}
}

// New returns a Hasher holding a copy of cfg.
//
// When cfg enables LongPasswords or NormalizeUnicode, New logs a warning:
// neither setting is recorded in the hashes, so hashes produced under a
// different setting will silently fail to verify.
func New(cfg Config, opts ...Option) *Hasher {
	h := &Hasher{
		cfg:       cfg,
		primitive: bcrypt.New(),
		logger:    slog.Default(),
		observer:  nopObserver{},
	}
	for _, opt := range opts {
		opt(h)
	}

	if cfg.LongPasswords {
		h.logger.Warn("bcrypt long-password mode enabled; hashes created with it disabled will no longer verify",
			slog.String("config_key", KeyLongPasswords))
	}
	if cfg.NormalizeUnicode {
		h.logger.Warn("bcrypt unicode normalization enabled; hashes created with it disabled may no longer verify",
			slog.String("config_key", KeyNormalizeUnicode))
	}
	return h
}

// Config returns the Hasher's configuration.
func (h *Hasher) Config() Config { return h.cfg }

// GenerateOption overrides configuration for a single Generate call.
type GenerateOption func(*generateParams)

type generateParams struct {
	cost   int
	prefix string
}

// WithRounds overrides the configured cost factor.
func WithRounds(cost int) GenerateOption {
	return func(p *generateParams) { p.cost = cost }
}

// WithPrefix overrides the configured version prefix.
func WithPrefix(prefix string) GenerateOption {
	return func(p *generateParams) { p.prefix = prefix }
}

// Generate hashes password and returns the self-contained hash string,
// e.g. "$2b$12$...". Every call draws a fresh salt, so hashing the same
// password twice yields different strings that both verify.
//
// An empty password fails with [ErrInvalidInput]. A cost or prefix the
// primitive rejects fails with [ErrInvalidConfiguration].
//
// Unless LongPasswords is enabled, only the first 72 bytes of password
// take part in the hash.
func (h *Hasher) Generate(password string, opts ...GenerateOption) (string, error) {
	return h.GenerateBytes([]byte(password), opts...)
}

// GenerateBytes is [Hasher.Generate] for a password given as raw bytes.
func (h *Hasher) GenerateBytes(password []byte, opts ...GenerateOption) (string, error) {
	start := time.Now()
	hash, err := h.generate(password, opts)
	h.observer.ObserveGenerate(time.Since(start), err)
	return hash, err
}

func (h *Hasher) generate(password []byte, opts []GenerateOption) (string, error) {
	if len(password) == 0 {
		return "", fmt.Errorf("%w: password must be non-empty", ErrInvalidInput)
	}

	p := generateParams{cost: h.cfg.Cost, prefix: h.cfg.Prefix}
	for _, opt := range opts {
		opt(&p)
	}

	salt, err := h.primitive.GenerateSalt(p.cost, p.prefix)
	if err != nil {
		if isConfigError(err) {
			return "", fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
		return "", fmt.Errorf("hashing: generate salt: %w", err)
	}

	hash, err := h.primitive.Hash(h.credential(password), salt)
	if err != nil {
		if isConfigError(err) {
			return "", fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
		return "", fmt.Errorf("hashing: hash: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash.
//
// The candidate goes through the same transforms as in Generate, using this
// Hasher's LongPasswords and NormalizeUnicode settings, and is hashed with
// the cost, prefix and salt embedded in hash. The result is compared to
// hash in constant time.
//
// Returns (true, nil) on match, (false, nil) on mismatch and
// (false, err) wrapping [ErrInvalidInput] if hash is not a complete 60-byte
// bcrypt hash. Other primitive failures are returned wrapped as they are.
func (h *Hasher) Verify(hash, password string) (bool, error) {
	return h.VerifyBytes([]byte(hash), []byte(password))
}

// VerifyBytes is [Hasher.Verify] for raw byte inputs.
func (h *Hasher) VerifyBytes(hash, password []byte) (bool, error) {
	start := time.Now()
	ok, err := h.verify(hash, password)
	h.observer.ObserveVerify(time.Since(start), ok, err)
	return ok, err
}

func (h *Hasher) verify(hash, password []byte) (bool, error) {
	// A bare salt setting is accepted by Hash but is not a stored hash.
	if _, err := bcrypt.Parse(hash); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	computed, err := h.primitive.Hash(h.credential(password), hash)
	if err != nil {
		if isConfigError(err) || errors.Is(err, bcrypt.ErrInvalidSalt) {
			return false, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return false, fmt.Errorf("hashing: verify: %w", err)
	}
	return subtle.ConstantTimeCompare(computed, hash) == 1, nil
}

func isConfigError(err error) bool {
	return errors.Is(err, bcrypt.ErrInvalidCost) || errors.Is(err, bcrypt.ErrInvalidPrefix)
}

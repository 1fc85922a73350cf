package keychain

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/petal/internal/logging"
)

// storedAccessibility is applied to every read and write made by Stored.
// Values are only readable while the device is unlocked and never sync to
// other devices.
const storedAccessibility = AccessibleWhenUnlockedThisDeviceOnly

// StoredOption configures a Stored value.
type StoredOption func(*storedConfig)

type storedConfig struct {
	backend Backend
	logger  *zerolog.Logger
}

// WithBackend stores the value in b instead of Standard().
func WithBackend(b Backend) StoredOption {
	return func(c *storedConfig) {
		c.backend = b
	}
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(logger zerolog.Logger) StoredOption {
	return func(c *storedConfig) {
		c.logger = &logger
	}
}

// Stored is a JSON-encoded value kept under one keystore key.
//
// Get never fails: a missing item, a backend error or bytes that do not decode
// as T all yield the default value. Decoding is strict, so data written for a
// different type (unknown or missing fields, a null) also yields the default. Set never fails either: a value that cannot
// be encoded is dropped and the previous item is left in place. Every call
// reaches the backend; nothing is cached.
type Stored[T any] struct {
	key          string
	defaultValue T
	backend      Backend
	logger       *zerolog.Logger
}

// NewStored returns an accessor for key with the given default.
func NewStored[T any](key string, defaultValue T, opts ...StoredOption) *Stored[T] {
	cfg := storedConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Stored[T]{
		key:          key,
		defaultValue: defaultValue,
		backend:      cfg.backend,
		logger:       cfg.logger,
	}
}

// Key returns the keystore key.
func (s *Stored[T]) Key() string {
	return s.key
}

// Default returns the fallback value.
func (s *Stored[T]) Default() T {
	return s.defaultValue
}

// Get returns the stored value or the default.
func (s *Stored[T]) Get() T {
	data, err := s.store().Data(s.key, storedAccessibility)
	if err != nil {
		if !errors.Is(err, ErrItemNotFound) {
			s.log().Debug().Err(err).Str("key", s.key).Msg("keychain read failed, using default")
		}
		return s.defaultValue
	}

	value, err := decodeStrict[T](data)
	if err != nil {
		s.log().Debug().Err(err).Str("key", s.key).Msg("keychain item did not decode, using default")
		return s.defaultValue
	}
	return value
}

// Set encodes value and stores it, replacing the previous item.
func (s *Stored[T]) Set(value T) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log().Debug().Err(err).Str("key", s.key).Msg("keychain value did not encode, dropping write")
		return
	}
	if err := s.store().SetData(data, s.key, storedAccessibility); err != nil {
		s.log().Debug().Err(err).Str("key", s.key).Msg("keychain write failed")
	}
}

func (s *Stored[T]) store() Backend {
	if s.backend != nil {
		return s.backend
	}
	return Standard()
}

func (s *Stored[T]) log() *zerolog.Logger {
	if s.logger != nil {
		return s.logger
	}
	logger := logging.Component("keychain")
	return &logger
}

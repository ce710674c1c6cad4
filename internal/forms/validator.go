// Package forms validates registration and login submissions and persists registered users.
//
// Each validation runs its checks in a fixed order and stops at the first failing one,
// returning a Result that names the offending field. Rule failures are never errors; the
// error return carries store failures only.
package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hongminglow/all-in-forms/internal/auth"
	"github.com/hongminglow/all-in-forms/internal/models"
	"github.com/hongminglow/all-in-forms/internal/storage"
)

// Validator checks form submissions against a UserStore.
type Validator struct {
	store     storage.UserStore
	passwords auth.PasswordCodec
	log       *zap.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithPasswordCodec sets how passwords are stored and compared. Defaults to auth.Plaintext.
func WithPasswordCodec(codec auth.PasswordCodec) Option {
	return func(v *Validator) { v.passwords = codec }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(v *Validator) { v.log = l }
}

// New creates a Validator backed by store.
func New(store storage.UserStore, opts ...Option) *Validator {
	v := &Validator{
		store:     store,
		passwords: auth.Plaintext{},
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NormalizeUsername returns the storage key for a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(username)
}

// ValidateRegistration checks in against the registration rules and, when all pass, stores the
// new record under its normalized username. An existing record under that key is replaced.
func (v *Validator) ValidateRegistration(ctx context.Context, in models.Credentials) (Result, error) {
	if failed := checkRegistration(in); failed != nil {
		v.log.Debug("registration rejected",
			zap.String("field", failed.Field), zap.String("reason", failed.Message))
		return *failed, nil
	}

	password, err := v.passwords.Encode(in.Password)
	if err != nil {
		return Result{}, fmt.Errorf("encode password: %w", err)
	}
	record := models.UserRecord{
		Username: NormalizeUsername(in.Username),
		Email:    strings.ToLower(in.Email),
		Password: password,
	}
	if err := v.store.Put(ctx, record.Username, record); err != nil {
		return Result{}, fmt.Errorf("store user record: %w", err)
	}

	v.log.Info("user registered", zap.String("username", record.Username))
	return Success(MsgRegistered, &record), nil
}

// ValidateLogin checks a login attempt against the stored record for its username.
func (v *Validator) ValidateLogin(ctx context.Context, in models.LoginAttempt) (Result, error) {
	if isBlank(in.Username) {
		return Failure(FieldUsername, MsgUsernameBlank), nil
	}

	key := NormalizeUsername(in.Username)
	record, err := v.store.Get(ctx, key)
	corrupted := false
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		return Failure(FieldUsername, MsgUnknownUsername), nil
	case errors.Is(err, storage.ErrCorrupted):
		// The entry exists; the password rules below still run before it is decoded.
		corrupted = true
	default:
		return Result{}, fmt.Errorf("load user record: %w", err)
	}

	if isBlank(in.Password) {
		return Failure(FieldPassword, MsgPasswordBlank), nil
	}
	if corrupted {
		v.log.Warn("stored user record is corrupted", zap.String("username", key), zap.Error(err))
		return Failure(FieldUsername, MsgCorruptedRecord), nil
	}
	if !v.passwords.Matches(record.Password, in.Password) {
		return Failure(FieldPassword, MsgIncorrectPassword), nil
	}

	message := MsgLoggedIn
	if in.KeepLoggedIn {
		message += MsgKeepLoggedIn
	}
	v.log.Info("user logged in", zap.String("username", key), zap.Bool("keep_logged_in", in.KeepLoggedIn))
	return Success(message, nil), nil
}

// Package cli exposes the registration and login forms as commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hongminglow/all-in-forms/internal/auth"
	"github.com/hongminglow/all-in-forms/internal/config"
	"github.com/hongminglow/all-in-forms/internal/display"
	"github.com/hongminglow/all-in-forms/internal/forms"
	"github.com/hongminglow/all-in-forms/internal/logger"
	"github.com/hongminglow/all-in-forms/internal/storage/backend"
)

// errRejected marks a submission that failed validation; its message was already shown.
var errRejected = errors.New("submission rejected")

// Runner holds the collaborators commands use. Zero fields are filled with defaults.
type Runner struct {
	// Open builds the validator and returns a function releasing its resources.
	Open func(ctx context.Context) (*forms.Validator, func(), error)
	// ReadPassword prompts for a secret without echo.
	ReadPassword func(prompt string) (string, error)
	Out          io.Writer
	Err          io.Writer
}

func (r *Runner) defaults() {
	if r.Open == nil {
		r.Open = openFromEnv
	}
	if r.ReadPassword == nil {
		r.ReadPassword = r.readTerminalPassword
	}
	if r.Out == nil {
		r.Out = os.Stdout
	}
	if r.Err == nil {
		r.Err = os.Stderr
	}
}

// NewRootCmd creates the root command.
func NewRootCmd(r *Runner) *cobra.Command {
	r.defaults()

	rootCmd := &cobra.Command{
		Use:   "allinforms",
		Short: "Submit the registration and login forms from the terminal",
		Long: `allinforms validates registration and login submissions with the same rules
as the web forms and stores registered users in the configured storage
(STORAGE_TYPE=sqlite|redis|postgres|memory).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(r.Out)
	rootCmd.SetErr(r.Err)

	rootCmd.AddCommand(newRegisterCmd(r))
	rootCmd.AddCommand(newLoginCmd(r))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	r := &Runner{}
	err := NewRootCmd(r).Execute()
	if err == nil {
		return
	}
	if !errors.Is(err, errRejected) {
		fmt.Fprintf(r.Err, "Error: %s\n", err)
	}
	os.Exit(1)
}

// present shows the result and converts a failure into errRejected.
func (r *Runner) present(result forms.Result) error {
	display.Present(result, display.Writer{Out: r.Out, Err: r.Err})
	if !result.OK() {
		return errRejected
	}
	return nil
}

func (r *Runner) readTerminalPassword(prompt string) (string, error) {
	if _, err := fmt.Fprint(r.Err, prompt); err != nil {
		return "", err
	}
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(r.Err)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

func openFromEnv(ctx context.Context) (*forms.Validator, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.LogEnv)
	if err != nil {
		return nil, nil, err
	}
	codec, err := auth.CodecFor(cfg.PasswordStorage)
	if err != nil {
		return nil, nil, err
	}
	store, closeStore, err := backend.Open(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	validator := forms.New(store, forms.WithPasswordCodec(codec), forms.WithLogger(log))
	return validator, func() {
		closeStore()
		_ = log.Sync()
	}, nil
}

// withValidator opens the validator for the duration of fn.
func (r *Runner) withValidator(ctx context.Context, fn func(*forms.Validator) error) error {
	validator, closeFn, err := r.Open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(validator)
}

// passwordFlag returns the flag value, or prompts when the flag was not given.
func (r *Runner) passwordFlag(cmd *cobra.Command, name, value, prompt string) (string, error) {
	if cmd.Flags().Changed(name) {
		return value, nil
	}
	return r.ReadPassword(prompt)
}


package cli

import (
	"github.com/spf13/cobra"

	"github.com/hongminglow/all-in-forms/internal/forms"
	"github.com/hongminglow/all-in-forms/internal/models"
)

func newRegisterCmd(r *Runner) *cobra.Command {
	var in models.Credentials

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Submit the registration form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in.Password, err = r.passwordFlag(cmd, "password", in.Password, "Password: "); err != nil {
				return err
			}
			if in.PasswordConfirmation, err = r.passwordFlag(cmd, "password-check", in.PasswordConfirmation, "Confirm password: "); err != nil {
				return err
			}
			return r.withValidator(cmd.Context(), func(v *forms.Validator) error {
				result, err := v.ValidateRegistration(cmd.Context(), in)
				if err != nil {
					return err
				}
				return r.present(result)
			})
		},
	}

	cmd.Flags().StringVarP(&in.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&in.Email, "email", "e", "", "Email address")
	cmd.Flags().StringVarP(&in.Password, "password", "p", "", "Password (prompted when omitted)")
	cmd.Flags().StringVar(&in.PasswordConfirmation, "password-check", "", "Password confirmation (prompted when omitted)")
	cmd.Flags().BoolVar(&in.TermsAccepted, "terms", false, "Agree to the Terms of Use")

	return cmd
}

func newLoginCmd(r *Runner) *cobra.Command {
	var in models.LoginAttempt

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Submit the login form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if in.Password, err = r.passwordFlag(cmd, "password", in.Password, "Password: "); err != nil {
				return err
			}
			return r.withValidator(cmd.Context(), func(v *forms.Validator) error {
				result, err := v.ValidateLogin(cmd.Context(), in)
				if err != nil {
					return err
				}
				return r.present(result)
			})
		},
	}

	cmd.Flags().StringVarP(&in.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&in.Password, "password", "p", "", "Password (prompted when omitted)")
	cmd.Flags().BoolVar(&in.KeepLoggedIn, "persist", false, "Keep me logged in")

	return cmd
}

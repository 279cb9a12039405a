package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vms/internal/auth"
	"vms/internal/domain"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication helpers",
	}

	cmd.AddCommand(newAuthTokenCmd())
	return cmd
}

func newAuthTokenCmd() *cobra.Command {
	var (
		userID  int64
		secret  string
		expires time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generate a dev-mode bearer token",
		Long: "Generate an HS256 bearer token for development and testing. " +
			"The subject is the numeric user id; roles are resolved from the " +
			"directory when the token is presented, so none are embedded.",
		Example: `  # Mint a 24h token for user 1 with the local dev secret
  vmsctl auth token --user 1 --secret dev-secret-change-in-production

  # Custom expiry
  vmsctl auth token --user 1 --secret mysecret --expires 48h`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tokens, err := auth.NewTokenService(secret, expires)
			if err != nil {
				return err
			}
			signed, err := tokens.Issue(&domain.Principal{ID: userID})
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "User id (token subject)")
	cmd.Flags().StringVar(&secret, "secret", "", "Token signing secret (HS256)")
	cmd.Flags().DurationVar(&expires, "expires", 24*time.Hour, "Token expiry duration")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("secret")

	return cmd
}

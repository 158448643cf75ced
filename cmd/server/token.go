package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hr-records/pkg/jwt"
)

// TokenOptions holds flags for the token command.
type TokenOptions struct {
	*RootOptions
	Subject string
	TTL     time.Duration
}

// NewTokenCommand creates the token command.
func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TokenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token signed with the configured secret",
		Long: `Issue an HS256 access token for the given email.

Example:
  hr-records token --subject ana@example.com
  hr-records token --subject ana@example.com --ttl 15m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return issueToken(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Subject, "subject", "", "email carried by the token (required)")
	cmd.Flags().DurationVar(&opts.TTL, "ttl", 0, "token lifetime (default auth.access_token_ttl)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func issueToken(opts *TokenOptions, cmd *cobra.Command) error {
	cfg, logger, err := bootstrap(opts.RootOptions)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is not configured")
	}

	authCfg := cfg.Auth
	if opts.TTL > 0 {
		authCfg.AccessTokenTTL = opts.TTL
	}

	mgr := jwt.NewManager(&authCfg)
	token, err := mgr.GenerateAccessToken(opts.Subject)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	fmt.Fprintf(cmd.ErrOrStderr(), "token for %s expires in %s\n", opts.Subject, mgr.TTL())
	return nil
}

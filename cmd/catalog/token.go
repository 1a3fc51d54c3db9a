package main

import (
	"errors"
	"fmt"
	"time"

	"file-catalog/internal/config"
	"file-catalog/internal/service/authService"

	"github.com/spf13/cobra"
)

type tokenOptions struct {
	configPath string
	secret     string
	userID     string
	admin      bool
	ttl        time.Duration
}

// tokenCmd issues a development token. Without --secret the signing key and
// admin list come from the config file.
func tokenCmd() *cobra.Command {
	var opts tokenOptions

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := issueToken(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "Path to the env config file")
	cmd.Flags().StringVar(&opts.secret, "secret", "", "Signing secret (overrides JWT_TOKEN from config)")
	cmd.Flags().StringVarP(&opts.userID, "user", "u", "", "User id the token is issued for")
	cmd.Flags().BoolVar(&opts.admin, "admin", false, "Grant admin rights")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", 0, "Token lifetime (defaults to JWT_TTL)")

	return cmd
}

func issueToken(opts tokenOptions) (string, error) {
	if opts.userID == "" {
		return "", errors.New("--user is required")
	}
	secret, ttl, admin := opts.secret, opts.ttl, opts.admin
	if secret == "" {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return "", err
		}
		secret = cfg.JWTSecret
		if ttl == 0 {
			ttl = cfg.TokenTTL
		}
		admin = admin || cfg.IsAdmin(opts.userID)
	}
	return authService.New(secret, ttl, nil).IssueToken(opts.userID, admin)
}

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocabflash-backend/internal/auth"
	"github.com/heartmarshall/vocabflash-backend/internal/config"
)

func newTokenCommand() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the API server (development only)",
		Long: `Mint a bearer token for the API server (development only).

The token is signed with the server configuration (AUTH_JWT_SECRET etc.),
so it must be run with the same config the server uses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := uuid.New()
			if user != "" {
				id, err := uuid.Parse(user)
				if err != nil {
					return fmt.Errorf("--user: %w", err)
				}
				userID = id
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL).IssueToken(userID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "user %s, valid for %s\n", userID, cfg.Auth.AccessTokenTTL)
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User UUID to put in the token (default random)")
	return cmd
}

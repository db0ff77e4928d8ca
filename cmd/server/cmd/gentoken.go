package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/gatherhub/server/internal/auth"
	"github.com/spf13/cobra"
)

var (
	tokenUserID string
	tokenEmail  string
	tokenSecret string
	tokenTTL    time.Duration
)

var gentokenCmd = &cobra.Command{
	Use:   "gentoken",
	Short: "Mint a session token for API testing",
	RunE: func(cmd *cobra.Command, args []string) error {
		secret := tokenSecret
		if secret == "" {
			secret = os.Getenv("JWT_SECRET")
		}
		if secret == "" {
			return fmt.Errorf("signing secret required (--secret or JWT_SECRET)")
		}
		if tokenUserID == "" || tokenEmail == "" {
			return fmt.Errorf("--user-id and --email are required")
		}

		manager := auth.NewTokenManager(secret, tokenTTL, "gatherhub")
		token, err := manager.Issue(tokenUserID, tokenEmail)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		fmt.Println(token)
		return nil
	},
}

func init() {
	gentokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "subject user id (hex object id)")
	gentokenCmd.Flags().StringVar(&tokenEmail, "email", "", "subject email")
	gentokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "signing secret (default: JWT_SECRET env var)")
	gentokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "token validity window")
}

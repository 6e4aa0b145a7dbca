package commands

import (
	"context"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		apiKey      string
		clientID    string
		secretKey   string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the RCU API",
		Long: `Exchange the RCU credential triple (API key, client ID, secret key)
for an access token and store it in the CLI configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiKey == "" {
				apiKey = viper.GetString("api_key")
			}

			if clientID == "" {
				clientID = viper.GetString("client_id")
			}

			if secretKey == "" {
				secretKey = viper.GetString("secret_key")
			}

			if apiKey == "" {
				return ErrAPIKeyRequired
			}

			if clientID == "" {
				return ErrClientIDRequired
			}

			// Prompt for the secret rather than requiring it on the command
			// line, where it would land in shell history.
			if secretKey == "" {
				fmt.Print("Secret key: ")

				byteSecret, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read secret key: %w", err)
				}

				secretKey = string(byteSecret)

				fmt.Println()
			}

			if secretKey == "" {
				return ErrSecretKeyRequired
			}

			viper.Set("api", apiEndpoint)
			viper.Set("api_key", apiKey)
			viper.Set("client_id", clientID)
			viper.Set("secret_key", secretKey)

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			if err := client.Authenticate(ctx); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			token, err := client.Token(ctx)
			if err != nil {
				return fmt.Errorf("login succeeded but no token was returned: %w", err)
			}

			// Persist the token, not the secret.
			viper.Set("secret_key", "")
			viper.Set("token", token)

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			endpoint := viper.GetString("api")
			if endpoint == "" {
				endpoint = DefaultAPIEndpoint
			}

			fmt.Printf("Successfully logged in to %s\n", endpoint)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "RCU API key")
	cmd.Flags().StringVar(&clientID, "client-id", "", "RCU client ID")
	cmd.Flags().StringVar(&secretKey, "secret-key", "", "RCU secret key (prompted if omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("token", "")
			viper.Set("secret_key", "")

			if err := saveConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"usersadmin/internal/config"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var baseURL string

	root := &cobra.Command{
		Use:           "userctl",
		Short:         "Manage users through the users API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&baseURL, "api", config.Load().APIBaseURL, "users API base URL")
	root.AddCommand(userCmd(&baseURL))
	return root
}

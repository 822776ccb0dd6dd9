package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"usersadmin/internal/api"
	"usersadmin/internal/model"
)

// userCmd returns the user command with its subcommands.
func userCmd(baseURL *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Manage users",
		Long:    "User management commands: list, get, add, update, delete",
	}

	client := func() *api.Client { return api.NewClient(*baseURL, nil) }

	cmd.AddCommand(listCmd(client))
	cmd.AddCommand(getCmd(client))
	cmd.AddCommand(addCmd(client))
	cmd.AddCommand(updateCmd(client))
	cmd.AddCommand(deleteCmd(client))
	return cmd
}

type clientFunc func() *api.Client

func listCmd(client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().List(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func getCmd(client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "get <user_id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := client().Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

func addCmd(client clientFunc) *cobra.Command {
	var u userFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := u.user()
			if err != nil {
				return err
			}
			resp, err := client().Create(cmd.Context(), user)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	u.register(cmd)
	return cmd
}

func updateCmd(client clientFunc) *cobra.Command {
	var u userFlags
	cmd := &cobra.Command{
		Use:   "update <user_id>",
		Short: "Replace a user's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			user, err := u.user()
			if err != nil {
				return err
			}
			user.UserID = id
			resp, err := client().Update(cmd.Context(), user)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	u.register(cmd)
	return cmd
}

func deleteCmd(client clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user_id>",
		Short: "Delete a user by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := client().Delete(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}

type userFlags struct {
	userName, firstName, lastName, email, status, department string
}

func (f *userFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.userName, "user", "u", "", "User name (required)")
	cmd.Flags().StringVarP(&f.firstName, "first-name", "f", "", "First name (required)")
	cmd.Flags().StringVarP(&f.lastName, "last-name", "l", "", "Last name (required)")
	cmd.Flags().StringVarP(&f.email, "email", "e", "", "Email (required)")
	cmd.Flags().StringVarP(&f.status, "status", "s", string(model.StatusActive), "Status: A, I, T or its label")
	cmd.Flags().StringVarP(&f.department, "department", "d", "", "Department (optional)")
	for _, name := range []string{"user", "first-name", "last-name", "email"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

func (f *userFlags) user() (model.User, error) {
	status, err := model.ParseStatus(f.status)
	if err != nil {
		return model.User{}, fmt.Errorf("--status %q: %w", f.status, err)
	}
	return model.User{
		UserName:   f.userName,
		FirstName:  f.firstName,
		LastName:   f.lastName,
		Email:      f.email,
		UserStatus: status,
		Department: f.department,
	}, nil
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.New("user_id must be a positive number")
	}
	return id, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

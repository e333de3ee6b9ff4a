package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yukikurage/migration-tracker/internal/models"
	"github.com/yukikurage/migration-tracker/internal/services"
	"github.com/yukikurage/migration-tracker/internal/utils"
)

func newCreateAdminCmd(load EnvLoader) *cobra.Command {
	var username, name, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := load()
			if err != nil {
				return err
			}

			if username == "" {
				username = env.Config.ProtectedAdmin
			}
			if username == "" {
				return fmt.Errorf("--username is required when PROTECTED_ADMIN is not set")
			}

			generated := password == ""
			if generated {
				if password, err = utils.GeneratePassword(); err != nil {
					return err
				}
			}

			user, err := env.userService().CreateUser(services.CreateUserInput{
				Username:    username,
				Name:        name,
				Password:    password,
				AccessLevel: models.AccessLevelAdmin,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created administrator %s (id %d)\n", user.Username, user.ID)
			if generated {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "temporary password: %s\n", password)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name (defaults to PROTECTED_ADMIN)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&password, "password", "", "initial password (generated when empty)")

	return cmd
}

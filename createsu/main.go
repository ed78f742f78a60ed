package main

import (
	"fmt"
	"os"

	"festival/config"
	"festival/repository"
	"festival/service"
	"festival/utils"

	"github.com/spf13/cobra"
)

func main() {
	if err := command().Execute(); err != nil {
		os.Exit(1)
	}
}

func command() *cobra.Command {
	var (
		username    string
		password    string
		permissions string
	)
	cmd := &cobra.Command{
		Use:   "createsu",
		Short: "Create an operator or reset its password",
		Long: `Create an operator account that may change festival data, or reset the password and
permissions of an existing one.

Examples:
  createsu --username admin --password secret
  OPERATOR_PASSWORD=secret createsu --username results-desk --permissions admin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv("OPERATOR_PASSWORD")
			}
			perms := utils.Map(utils.SplitTrimmed(permissions), func(p string) repository.Permission {
				return repository.Permission(p)
			})

			db, err := config.InitDB(config.Env(), &repository.Operator{})
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			operator, err := service.NewOperatorService(db).SaveOperator(username, password, perms)
			if err != nil {
				return err
			}
			cmd.Printf("operator %s saved with permissions [%s]\n", operator.Username, operator.Permissions)
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "operator username")
	cmd.Flags().StringVar(&password, "password", "", "operator password, defaults to $OPERATOR_PASSWORD")
	cmd.Flags().StringVar(&permissions, "permissions", string(repository.PermissionAdmin), "comma separated permissions")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

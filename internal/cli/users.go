package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/martijn/birthdays/internal/core/domain"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Inspect stored users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored users and their next birthday",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		users, err := services.UserRepo.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		if len(users) == 0 {
			fmt.Println("No users found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "USERNAME\tDATE OF BIRTH\tDAYS UNTIL BIRTHDAY")
		for _, user := range users {
			dob, err := time.Parse(domain.DateFormat, user.DateOfBirth)
			if err != nil {
				fmt.Fprintf(w, "%s\t%s\t?\n", user.Username, user.DateOfBirth)
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%d\n",
				user.Username,
				user.DateOfBirth,
				domain.DaysUntilBirthday(dob, time.Now()),
			)
		}
		w.Flush()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martijn/birthdays/internal/core/repository"
	"github.com/martijn/birthdays/internal/core/service"
	"github.com/martijn/birthdays/internal/infrastructure/sqlite"
	"github.com/martijn/birthdays/internal/logger"
	"github.com/martijn/birthdays/pkg/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "Birthdays - birthday greeting service",
	Long: `Birthdays is a small HTTP service that records users' dates of birth
and tells them how many days remain until their next birthday.

It provides:
- A REST API for storing and querying birthdays
- SQLite-backed persistence
- A CLI for inspecting stored users`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger.Setup(cfg.LogLevel)

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/birthdays/config.yml)")
}

// initServices initializes the database and services
func initServices() (*Services, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	userService := service.NewUserService(userRepo)

	return &Services{
		DB:          db,
		UserRepo:    userRepo,
		UserService: userService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB          *sqlite.DB
	UserRepo    repository.UserRepository
	UserService *service.UserService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}

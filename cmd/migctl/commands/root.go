package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yukikurage/migration-tracker/internal/config"
	"github.com/yukikurage/migration-tracker/internal/database"
	"github.com/yukikurage/migration-tracker/internal/repository"
	"github.com/yukikurage/migration-tracker/internal/services"
	"github.com/yukikurage/migration-tracker/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Env is what the commands need from the outside world.
type Env struct {
	Config *config.Config
	DB     *gorm.DB
	Logger *zap.Logger
	Clock  services.Clock
}

// EnvLoader builds the Env lazily so that commands like version work
// without a database.
type EnvLoader func() (*Env, error)

// DefaultEnv loads the configuration, connects to the database and runs
// migrations.
func DefaultEnv() (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := utils.NewLogger(cfg.IsProduction())
	if err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Warn("falling back to UTC", zap.Error(err))
	}

	if err := database.Connect(cfg, logger); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(logger); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Env{
		Config: cfg,
		DB:     database.GetDB(),
		Logger: logger,
		Clock:  services.NewClock(loc),
	}, nil
}

func (e *Env) projectService() *services.ProjectService {
	userRepo := repository.NewUserRepository(e.DB)
	return services.NewProjectService(repository.NewProjectRepository(e.DB), userRepo, e.Clock, e.Logger)
}

func (e *Env) dashboardService() *services.DashboardService {
	return services.NewDashboardService(repository.NewProjectRepository(e.DB), nil, e.Clock, e.Logger)
}

func (e *Env) userService() *services.UserService {
	return services.NewUserService(repository.NewUserRepository(e.DB), e.Config.ProtectedAdmin, e.Logger)
}

// NewRootCmd constructs the migctl root command.
func NewRootCmd(load EnvLoader) *cobra.Command {
	version := os.Getenv("MIGCTL_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "migctl",
		Short:         "migctl - administration for the migration tracker",
		Long:          "migctl bootstraps administrators and prints dashboard figures straight from the database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of migctl",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "migctl version %s\n", version)
		},
	})

	cmd.AddCommand(newCreateAdminCmd(load))
	cmd.AddCommand(newStatsCmd(load))
	cmd.AddCommand(newNextIDCmd(load))

	return cmd
}

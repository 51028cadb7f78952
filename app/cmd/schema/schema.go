package schema

import (
	"fmt"
	"github.com/ribgsilva/note-share/persistence/v1/schema"
	"github.com/ribgsilva/note-share/platform/database"
	"github.com/ribgsilva/note-share/platform/env"
	"github.com/ribgsilva/note-share/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Command returns the schema command group, it manages the notes table of the mysql store
func Command(log *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the notes schema of the mysql store",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "create",
		Short: "Creates the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(log, func() error {
				cmd.Println("creating schema")
				if err := schema.Create(cmd.Context(), sys.R.Database); err != nil {
					return fmt.Errorf("failed to create schema: %w", err)
				}
				cmd.Println("created schema")
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Deletes the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(log, func() error {
				cmd.Println("deleting schema")
				if err := schema.Drop(cmd.Context(), sys.R.Database); err != nil {
					return fmt.Errorf("failed to delete schema: %w", err)
				}
				cmd.Println("deleted schema")
				return nil
			})
		},
	})

	return cmd
}

// withDatabase runs f with sys.R.Database connected, reusing an already open connection
func withDatabase(log *zap.SugaredLogger, f func() error) error {
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/note?parseTime=true")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")

	sys.R.Log = log
	if sys.R.Database == nil {
		db, err := database.Open("mysql", sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
		if err != nil {
			return err
		}
		sys.R.Database = db
		defer func() {
			if err := db.Close(); err != nil {
				log.Errorf("could not close db conn gracefully: %s", err)
			}
			sys.R.Database = nil
		}()
	}
	return f()
}

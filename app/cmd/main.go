package main

import (
	"fmt"
	"github.com/ribgsilva/note-share/app/cmd/ident"
	"github.com/ribgsilva/note-share/app/cmd/schema"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
)

func main() {
	// empty logger
	log := zap.NewNop().Sugar()

	root := &cobra.Command{
		Use:           "notes-admin",
		Short:         "Admin commands for the note share service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(schema.Command(log), ident.Command())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

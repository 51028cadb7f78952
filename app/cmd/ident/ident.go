package ident

import (
	"github.com/ribgsilva/note-share/business/v1/ident"
	"github.com/spf13/cobra"
)

// Command returns the ident command group, it shows how identifiers are treated without touching any store
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ident",
		Short: "Inspect note identifiers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "normalize <raw>",
		Short: "Print the normalized form of a custom extension",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(ident.Normalize(args[0]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check <candidate>",
		Short: "Tell if a custom extension is legal once normalized",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			n := ident.Normalize(args[0])
			if ident.IsLegal(n) {
				cmd.Printf("%q is legal as %q\n", args[0], n)
				return
			}
			cmd.Printf("%q is not legal, a random id would be used\n", args[0])
		},
	})

	return cmd
}

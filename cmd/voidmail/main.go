package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/EC-WIN-24-NET/VoidMail/docs"
)

// @title VoidMail API
// @version 1.0
// @description Event catalogue reads and transactional email sending.
// @BasePath /
func main() {
	root := &cobra.Command{
		Use:           "voidmail",
		Short:         "VoidMail event and mail service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newSendMailCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

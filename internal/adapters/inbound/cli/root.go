package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fnwatchdog",
		Short:         "Keep package and file names on convention",
		Long:          "fnwatchdog checks the packages and files of your source roots against naming convention definitions and fails the build on violations.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the eventscout application
var rootCmd = &cobra.Command{
	Use:   "eventscout",
	Short: "MCP server for Google Calendar and Ticketmaster event discovery",
	Long: `eventscout is an MCP (Model Context Protocol) server that provides AI
assistants with Google Calendar event management and Ticketmaster event
discovery tools.

Calendar tools cover listing, reading, creating, updating, and deleting
events on the primary calendar. Ticketmaster tools cover concert search
within a time window and generic event search.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "eventscout version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}

package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/hassantayyab/cursor-mobile-chat/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	workspaceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "List discovered Cursor databases",
	Long:  `List every state.vscdb found in Cursor's workspace and global storage, with its derived workspace id.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		var paths []string
		if cfg.StoragePath != "" {
			paths = internal.FindDatabasesUnder(cfg.StoragePath)
		} else {
			paths, err = internal.FindDatabases()
			if err != nil {
				return fmt.Errorf("failed to discover databases: %w", err)
			}
		}

		if len(paths) == 0 {
			fmt.Println(headerStyle.Render("No Cursor databases found"))
			return nil
		}

		fmt.Println(headerStyle.Render("Found " + strconv.Itoa(len(paths)) + " database(s)"))
		fmt.Println()

		w := tabwriter.NewWriter(lipgloss.DefaultRenderer().Output(), 0, 0, 3, ' ', 0)
		_, _ = fmt.Fprintln(w, titleStyle.Render("Workspace")+"\t"+titleStyle.Render("Name")+"\t"+titleStyle.Render("Path")+"\t")

		for _, path := range paths {
			workspaceID, ok := internal.WorkspaceIDForPath(path)
			if !ok {
				workspaceID = "unknown"
			}
			name := internal.WorkspaceNameForPath(path)
			if name == "" {
				name = "-"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t\n",
				workspaceStyle.Render(workspaceID),
				countStyle.Render(name),
				pathStyle.Render(path))
		}

		_ = w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(databasesCmd)
}

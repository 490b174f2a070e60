package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"storefront.GO/cron"
)

var (
	jobName  string
	listJobs bool
)

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler or run a single job by name",
	Run: func(cmd *cobra.Command, args []string) {
		if listJobs {
			names := cron.Names()
			keys := make([]string, 0, len(names))
			for k := range names {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, names[k])
			}
			return
		}
		if jobName != "" {
			run, ok := cron.Lookup(strings.ToLower(jobName))
			if !ok {
				fmt.Printf("Unknown job: %s\n", jobName)
				os.Exit(1)
			}
			fmt.Printf("Running cron job: %s\n", jobName)
			run(args...)
			return
		}
		fmt.Println("Starting cron scheduler...")
		c := cron.StartCron()
		defer c.Stop()
		fmt.Println("Cron scheduler started. Press Ctrl+C to exit.")
		select {} // Block forever
	},
}

func init() {
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	cronStartCmd.Flags().BoolVarP(&listJobs, "list", "l", false, "List jobs with their schedules")
	rootCmd.AddCommand(cronStartCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config and token without connecting",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if _, err := cfg.ResolveToken(); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, t := range cfg.Triggers {
			fmt.Fprintf(out, "%s: %d responses\n", t.Phrase, len(t.Responses))
		}
		fmt.Fprintln(out, "config ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

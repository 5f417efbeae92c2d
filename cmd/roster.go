package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List pilots, drones or missions",
}

func init() {
	rosterCmd.AddCommand(
		&cobra.Command{Use: "pilots", Short: "List the pilot roster", RunE: listRoster("pilots")},
		&cobra.Command{Use: "drones", Short: "List the drone fleet", RunE: listRoster("drones")},
		&cobra.Command{Use: "missions", Short: "List the mission book", RunE: listRoster("missions")},
	)
	rootCmd.AddCommand(rosterCmd)
}

func listRoster(kind string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		defer svc.Close()

		var v any
		switch kind {
		case "pilots":
			v = svc.Store.ListPilots()
		case "drones":
			v = svc.Store.ListDrones()
		case "missions":
			v = svc.Store.ListMissions()
		}
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
}

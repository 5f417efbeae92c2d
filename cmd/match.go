package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var matchMission string

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank candidate pilots for a mission",
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchMission, "mission", "", "mission id")
	if err := matchCmd.MarkFlagRequired("mission"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	candidates := svc.Engine.RankCandidates(matchMission)
	if len(candidates) == 0 {
		fmt.Println("No candidates found.")
		return nil
	}
	out, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	checkMission string
	checkPilot   string
	checkDrone   string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Detect conflicts for a proposed assignment",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkMission, "mission", "", "mission id")
	checkCmd.Flags().StringVar(&checkPilot, "pilot", "", "pilot id")
	checkCmd.Flags().StringVar(&checkDrone, "drone", "", "drone id")
	if err := checkCmd.MarkFlagRequired("mission"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	conflicts := svc.Engine.DetectConflicts(checkMission, checkPilot, checkDrone)
	if len(conflicts) == 0 {
		fmt.Println("No conflicts detected.")
		return nil
	}
	out, err := json.MarshalIndent(conflicts, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

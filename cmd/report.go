package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var reportMission string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print fleet statistics for a mission",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportMission, "mission", "", "mission id")
	if err := reportCmd.MarkFlagRequired("mission"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	rep, err := svc.Engine.FleetReport(reportMission)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	reassignMission string
	reassignUrgent  bool
)

var reassignCmd = &cobra.Command{
	Use:   "reassign",
	Short: "Suggest pilots who could be pulled onto a mission",
	RunE:  runReassign,
}

func init() {
	reassignCmd.Flags().StringVar(&reassignMission, "mission", "", "mission id")
	reassignCmd.Flags().BoolVar(&reassignUrgent, "urgent", false, "treat the mission as urgent")
	if err := reassignCmd.MarkFlagRequired("mission"); err != nil {
		panic(err)
	}
	rootCmd.AddCommand(reassignCmd)
}

func runReassign(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	suggestions := svc.Engine.SuggestReassignments(reassignMission, reassignUrgent)
	if len(suggestions) == 0 {
		fmt.Println("No reassignment candidates.")
		return nil
	}
	for _, s := range suggestions {
		fmt.Println(s.String())
	}
	return nil
}

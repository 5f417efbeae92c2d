package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aerialops/skyops/core/engine"
)

var (
	assignMission  string
	assignResource string
	assignKind     string
	assignConfirm  bool
	assignOverride bool
)

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign a pilot or drone to a mission",
	RunE:  runAssign,
}

func init() {
	assignCmd.Flags().StringVar(&assignMission, "mission", "", "mission id")
	assignCmd.Flags().StringVar(&assignResource, "resource", "", "pilot or drone id")
	assignCmd.Flags().StringVar(&assignKind, "type", "pilot", "resource type: pilot or drone")
	assignCmd.Flags().BoolVar(&assignConfirm, "confirm", false, "execute the assignment instead of a dry run")
	assignCmd.Flags().BoolVar(&assignOverride, "override-soft", false, "proceed despite soft conflicts")
	for _, flag := range []string{"mission", "resource"} {
		if err := assignCmd.MarkFlagRequired(flag); err != nil {
			panic(err)
		}
	}
	rootCmd.AddCommand(assignCmd)
}

func runAssign(cmd *cobra.Command, args []string) error {
	kind, err := engine.ParseResourceKind(assignKind)
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	outcome := svc.Engine.Assign(assignMission, assignResource, kind, assignConfirm, assignOverride)
	out, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	if assignConfirm && !outcome.Success && !outcome.RequiresConfirmation {
		return fmt.Errorf("assignment failed: %s", outcome.Message)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect the level table",
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every level with its map node and unlock",
	RunE:  runLevelsList,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate every level",
	RunE:  runLevelsCheck,
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsCheckCmd)
}

func runLevelsList(cmd *cobra.Command, args []string) error {
	fc, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	levels, _, err := openLevels(fc.LevelTable)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	maxName := len("Name")
	for _, e := range levels.Table().Levels {
		maxName = max(maxName, len(e.Name))
	}
	fmt.Fprintf(out, "  %-3s %-*s  %-11s %s\n", "ID", maxName, "Name", "Node", "Unlock")
	for _, e := range levels.Table().Levels {
		node := fmt.Sprintf("%.0f,%.0f", e.Node[0], e.Node[1])
		fmt.Fprintf(out, "  %-3d %-*s  %-11s %d\n", e.ID, maxName, e.Name, node, e.Unlock)
	}
	return nil
}

func runLevelsCheck(cmd *cobra.Command, args []string) error {
	fc, logger, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	levels, _, err := openLevels(fc.LevelTable)
	if err != nil {
		return err
	}
	if err := levels.Check(); err != nil {
		return err
	}
	logger.Info("all levels valid", "count", len(levels.Table().Levels))
	return nil
}

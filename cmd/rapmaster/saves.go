package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/storage"
)

var deleteSlot int

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List save slots",
	Long: `Show every save slot with its career summary.

Examples:
  rapmaster saves
  rapmaster saves --delete 2`,
	RunE: runSaves,
}

func init() {
	savesCmd.Flags().IntVar(&deleteSlot, "delete", 0, "Delete the given slot instead of listing")
}

func runSaves(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath, storage.DefaultMaxSlots)
	if err != nil {
		return err
	}
	defer store.Close()

	if deleteSlot > 0 {
		if err := store.DeleteSlot(deleteSlot); err != nil {
			return err
		}
		fmt.Printf("Deleted slot %d.\n", deleteSlot)
		return nil
	}

	infos, err := store.ListSlots()
	if err != nil {
		return err
	}

	occupied := make(map[int]storage.SlotInfo, len(infos))
	for _, info := range infos {
		occupied[info.Slot] = info
	}

	fmt.Println("Save slots:")
	fmt.Println()
	for slot := 1; slot <= store.MaxSlots(); slot++ {
		info, ok := occupied[slot]
		if !ok {
			fmt.Printf("  %d. (empty)\n", slot)
			continue
		}
		fmt.Printf("  %d. %-20s W%d/%d  fame %-3d  $%-10.0f %s\n",
			slot, info.StageName, info.Week, info.Year, info.Fame, info.NetWorth,
			info.UpdatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	fmt.Println("Run 'rapmaster play --slot <n>' to continue a career.")
	return nil
}

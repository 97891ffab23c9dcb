package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Developerxgame/RapMaster-Simulator-Game-Design-8822-sub000/internal/storage"
)

var careerSlot int

var careerCmd = &cobra.Command{
	Use:   "career",
	Short: "Show a save slot summary",
	Long: `Print a summary of the career saved in the chosen slot.

Examples:
  rapmaster career
  rapmaster career --slot 2`,
	RunE: runCareer,
}

func init() {
	careerCmd.Flags().IntVar(&careerSlot, "slot", 1, "Save slot (1-3)")
}

func runCareer(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath, storage.DefaultMaxSlots)
	if err != nil {
		return err
	}
	defer store.Close()

	st, err := store.LoadSlot(careerSlot)
	if err != nil {
		if errors.Is(err, storage.ErrNoSave) {
			fmt.Printf("Slot %d is empty. Run 'rapmaster play --slot %d' to start a career.\n",
				careerSlot, careerSlot)
			return nil
		}
		return err
	}

	p := st.Player
	level := p.Level()

	fmt.Printf("%s - %s\n", p.StageName, level.Name)
	fmt.Println()
	fmt.Printf("  Week %d, %d (age %d, %s)\n", p.Week, p.Year, p.Age, p.City)
	fmt.Printf("  Fame %d  Reputation %d  Fans %d\n", p.Fame, p.Reputation, p.Fans)
	fmt.Printf("  Net worth: $%.2f\n", p.NetWorth)
	fmt.Println()
	fmt.Printf("  Tracks: %d  Albums: %d  Videos: %d  Collabs: %d\n",
		len(st.Tracks), len(st.Albums), len(st.Videos), len(st.Collabs))
	fmt.Printf("  Releases: %d  Concerts: %d  Posts: %d\n",
		len(st.Releases), len(st.Concerts), len(st.Posts))
	fmt.Printf("  Lifetime streams: %d  Album sales: %d\n",
		st.Stats.TotalStreams, st.Stats.TotalAlbumSales)
	fmt.Printf("  Lifetime earnings: $%.2f\n", st.Earnings.Total)

	if len(st.Releases) > 0 {
		best := st.Releases[0]
		for _, rel := range st.Releases[1:] {
			if rel.Views > best.Views {
				best = rel
			}
		}
		fmt.Println()
		fmt.Printf("  Biggest hit: %q (%d views", best.Title, best.Views)
		if best.ChartPosition > 0 {
			fmt.Printf(", peaked at #%d", best.ChartPosition)
		}
		fmt.Println(")")
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/impactbox/internal/scene"
	"github.com/vovakirdan/impactbox/internal/sim"
	"github.com/vovakirdan/impactbox/internal/storage"
)

var (
	flagRunScene string
	flagRunTicks int
	flagNoSave   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scene headless and record its checksum",
	Long: `Simulate a scene without a UI and print the final state checksum.
The checksum folds the box position, velocity and impact count, so two
runs of the same scene always agree. Results are stored in the run
database; a mismatch against the stored checksum for the same scene and
tick count is reported as a divergence.

Examples:
  impactbox run
  impactbox run --ticks 5000
  impactbox run --scene ./scenes/mine.yaml --no-save`,
	Run: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagRunScene, "scene", "", "Path to scene YAML")
	runCmd.Flags().IntVar(&flagRunTicks, "ticks", 0, "Tick count (0 = scene default)")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record this run")
}

func runRun(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "impactbox",
	})

	sc, err := scene.Load(flagRunScene)
	if err != nil {
		logger.Fatal("cannot load scene", "error", err)
	}

	ticks := flagRunTicks
	if ticks <= 0 {
		ticks = sc.Ticks
	}

	world := sim.New(sc)
	for range ticks {
		world.Step()
	}

	snap := world.Snapshot()
	checksum := snap.Hash()

	logger.Info("run complete",
		"scene", sc.Name,
		"ticks", ticks,
		"impacts", snap.Impacts,
		"checksum", fmt.Sprintf("%016x", checksum),
	)
	fmt.Printf("%016x\n", checksum)

	if flagNoSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("cannot open run database", "error", err)
		return
	}
	defer store.Close()

	prev, ok, err := store.LastChecksum(sc.Name, ticks)
	if err != nil {
		logger.Warn("cannot read previous checksum", "error", err)
	} else if ok && prev != checksum {
		logger.Error("determinism divergence",
			"scene", sc.Name,
			"ticks", ticks,
			"previous", fmt.Sprintf("%016x", prev),
			"current", fmt.Sprintf("%016x", checksum),
		)
	}

	if _, err := store.SaveRun(sc.Name, ticks, snap.Impacts, checksum); err != nil {
		logger.Warn("cannot save run", "error", err)
	}
}

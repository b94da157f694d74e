package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/HenryFBP/wayward-close-da-door/internal/engine"
	"github.com/HenryFBP/wayward-close-da-door/internal/infrastructure/storage"
	"github.com/HenryFBP/wayward-close-da-door/internal/sim"
	"github.com/HenryFBP/wayward-close-da-door/internal/version"
	"github.com/HenryFBP/wayward-close-da-door/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var scenarioPath, strategyName, storeDir string
	var verbose bool
	flag.StringVar(&scenarioPath, "scenario", "", "Path to a YAML scenario (empty for the built-in doorway)")
	flag.StringVar(&strategyName, "strategy", "direct", "How to close doors: direct or queued")
	flag.StringVar(&storeDir, "store", "", "Directory for persistent mod storage (empty keeps it in memory)")
	flag.BoolVar(&verbose, "verbose", false, "Trace every closer decision and storage access")
	flag.Parse()

	info := version.Info()
	logger.Log.WithFields(info.Fields()).Info("Starting door simulator...")

	cfg := engine.NewConfig()
	cfg.Verbose = verbose
	strategy, err := engine.ParseStrategy(strategyName)
	if err != nil {
		logger.Log.Fatal("Bad -strategy: ", err)
	}
	cfg.Strategy = strategy

	// 2. Сценарий
	var sc *sim.Scenario
	if scenarioPath != "" {
		sc, err = sim.LoadScenario(scenarioPath)
	} else {
		sc, err = sim.BuiltinScenario("doorway")
	}
	if err != nil {
		logger.Log.WithError(err).Error("Failed to load scenario")
		os.Exit(1)
	}

	world, player, err := sc.Build()
	if err != nil {
		logger.Log.WithError(err).Error("Failed to build scenario world")
		os.Exit(1)
	}

	// 3. Хранилище мода
	var backend storage.Backend = storage.NewMemoryBackend()
	if storeDir != "" {
		fb, err := storage.NewFileBackend(storeDir)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to open store")
			os.Exit(1)
		}
		backend = fb
	}
	store := storage.NewKVStore(cfg.Ident, backend)
	store.Verbose = verbose

	// 4. Хост + доводчик
	game := sim.NewGame(world)
	closer := engine.NewDoorCloser(cfg, engine.Deps{
		World:    world,
		Actions:  game,
		Renderer: game,
		Store:    store,
	})
	game.AddHook(closer)

	if err := game.Join(player); err != nil {
		logger.Log.WithError(err).Error("Player cannot join scenario world")
		os.Exit(1)
	}

	logger.Log.WithFields(logrus.Fields{
		"scenario": sc.Name,
		"strategy": cfg.Strategy,
		"steps":    len(sc.Steps),
	}).Info("🚪 Running scenario")

	rep := sc.Run(game, player)

	// 5. Отчет
	for _, d := range world.Doors() {
		logger.Log.WithFields(logrus.Fields{
			"door":    d.Type(),
			"pos":     d.Point().String(),
			"changes": len(d.History),
		}).Info("Door state")
	}

	var closed int
	if _, err := store.Retrieve(engine.StatDoorsClosed, &closed); err != nil {
		logger.Log.WithError(err).Warn("Failed to read door counter")
	}

	logger.Log.WithFields(logrus.Fields{
		"steps":       rep.Steps,
		"moved":       rep.Moved,
		"bumped":      rep.Bumped,
		"vetoed":      rep.Vetoed,
		"failed":      rep.Failed,
		"renders":     rep.Renders,
		"doorsClosed": closed,
		"closer":      closer.State(),
		"tick":        player.NextActionTick,
	}).Info("Done.")
}

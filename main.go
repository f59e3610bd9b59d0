package main

import (
	"fmt"
	"os"

	"github.com/DBC-Works/swiki/lib"
	"github.com/DBC-Works/swiki/lib/api"
	"github.com/DBC-Works/swiki/lib/cli"
	"github.com/DBC-Works/swiki/lib/db"
	"github.com/DBC-Works/swiki/lib/io"
	"github.com/DBC-Works/swiki/lib/page"
	"github.com/DBC-Works/swiki/lib/settings"
	"github.com/DBC-Works/swiki/lib/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func openStore(retrievedSettings settings.Settings, setupLogger *zap.SugaredLogger) db.DataStore {
	dataStore, err := utils.GetDB(retrievedSettings, setupLogger)
	if err != nil {
		setupLogger.Fatal("Error connecting to database: " + err.Error())
	}
	return dataStore
}

func runServer(retrievedSettings settings.Settings, setupLogger *zap.SugaredLogger) {
	setupLogger.Info("Starting swiki...")
	setupLogger.Info("Your swiki version is " + retrievedSettings.GitVersion)

	dataStore := openStore(retrievedSettings, setupLogger)
	defer dataStore.Close()

	validatorEvaluator := validator.New(validator.WithRequiredStructEnabled())
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             int(max(retrievedSettings.ImportMaxFileSize, 4*1024*1024)) + 64*1024,
	})

	initStore := &lib.InitStore{
		C:                 app,
		RetrievedSettings: &retrievedSettings,
		Store:             dataStore,
		PageManager:       page.NewManager(dataStore, setupLogger),
		Validator:         validatorEvaluator,
		Logger:            setupLogger,
		Importer:          io.NewImporter(validatorEvaluator, setupLogger),
	}
	api.InitAPI(initStore)

	fiberString := fmt.Sprintf("%s:%s", retrievedSettings.IP, retrievedSettings.Port)
	setupLogger.Info("Starting Web API on " + fiberString)
	if err := app.Listen(fiberString); err != nil {
		setupLogger.Errorf("Server stopped: %v", err)
	}
}

func runMerge(retrievedSettings settings.Settings, setupLogger *zap.SugaredLogger, args []string) error {
	dataStore := openStore(retrievedSettings, setupLogger)
	defer dataStore.Close()

	importer := io.NewImporter(validator.New(validator.WithRequiredStructEnabled()), setupLogger)
	return cli.RunMerge(setupLogger, args, page.NewManager(dataStore, setupLogger), importer, os.Stdout)
}

func main() {
	bootLogger := utils.SetupLogger("INFO")

	if len(os.Args) > 1 && os.Args[1] == "config" {
		os.Exit(settings.HandleConfigCommand(bootLogger, os.Args[2:], os.Stdout))
	}

	settings.InitSettings(bootLogger)
	retrievedSettings := settings.Displayed
	setupLogger := utils.SetupLogger(retrievedSettings.LogLevel)
	defer setupLogger.Sync()

	if len(os.Args) < 2 {
		runServer(retrievedSettings, setupLogger)
		return
	}

	var err error
	switch os.Args[1] {
	case "diff":
		err = cli.RunDiff(setupLogger, os.Args[2:], os.Stdout)
	case "merge":
		err = runMerge(retrievedSettings, setupLogger, os.Args[2:])
	default:
		fmt.Println("Unknown command:", os.Args[1])
		fmt.Println("Usage: swiki [diff|merge|config]")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

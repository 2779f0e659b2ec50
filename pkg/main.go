package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pkg "github.com/testepaprubenaecerco/Posts/pkg/internal"
	"github.com/fatih/color"

	"github.com/testepaprubenaecerco/Posts/pkg/internal/database"
	"github.com/testepaprubenaecerco/Posts/pkg/internal/http"
	"github.com/testepaprubenaecerco/Posts/pkg/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" ____           _\n|  _ \\ ___  ___| |_ ___\n| |_) / _ \\/ __| __/ __|\n|  __/ (_) \\__ \\ |_\\__ \\\n|_|   \\___/|___/\\__|___/"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Paprubene.Posts"), pkg.AppVersion)
	fmt.Printf("The minimal social feed backend\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")
	viper.SetDefault("port", 10000)
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "social.db")
	_ = viper.BindEnv("port", "PORT")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("No settings file was found, keep going with defaults...")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.DoAutoDatabaseCleanup)
	quartz.Start()

	// Server
	go http.NewServer().Listen()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}

package main

import (
	"context"
	"fmt"
	"os"
	"path"
	"runtime"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"schooldir/config"
	"schooldir/database"
	"schooldir/router"
	"schooldir/service"
	"schooldir/utils"
)

func init() {
	logrus.SetReportCaller(true)
	logrus.SetFormatter(&nested.Formatter{
		CustomCallerFormatter: func(f *runtime.Frame) string {
			filename := path.Base(f.File)
			return fmt.Sprintf(" (%s:%d)", filename, f.Line)
		},
		FieldsOrder:     []string{"component", "category"},
		HideKeys:        true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logrus.SetLevel(logrus.InfoLevel)
}

func main() {
	var port string
	var conf string
	var rootCmd = &cobra.Command{
		Use:   "schooldir",
		Short: "Trade school directory API",
		Run: func(cmd *cobra.Command, args []string) {
			logrus.Println("Please specify a mode: serve or seed")
		},
	}

	rootCmd.PersistentFlags().StringVarP(&port, "port", "p", "3000", "Port to run the server on")
	rootCmd.PersistentFlags().StringVarP(&conf, "conf", "c", "", "Path to configuration file")

	if err := viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port")); err != nil {
		logrus.Fatalf("failed to bind flag: %v", err)
	}
	if err := viper.BindPFlag("conf", rootCmd.PersistentFlags().Lookup("conf")); err != nil {
		logrus.Fatalf("failed to bind flag: %v", err)
	}

	var serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Run: func(cmd *cobra.Command, args []string) {
			config.Init(viper.GetString("conf"))
			database.InitDB()
			utils.InitValidator()

			engine := router.New()
			port := viper.GetString("port")
			logrus.Infof("Listening on :%s", port)
			if err := engine.Run(":" + port); err != nil {
				panic(err)
			}
		},
	}

	var seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with school fixtures and the admin user",
		Run: func(cmd *cobra.Command, args []string) {
			config.Init(viper.GetString("conf"))
			database.InitDB()

			if err := service.SeedDatabase(context.Background()); err != nil {
				logrus.Fatalf("seeding failed: %v", err)
			}
		},
	}

	rootCmd.AddCommand(serveCmd, seedCmd)
	if err := rootCmd.Execute(); err != nil {
		logrus.Println(err.Error())
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"restosim/internal/models"
	"restosim/internal/simulator"
	"restosim/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "restosim",
	Short: "Turn-based restaurant management simulation",
	Long:  `restosim is a CLI tool that simulates running a restaurant day by day: hire and fire staff, tune menu prices and quality, restock inventory, and watch randomly generated customers eat into your stock and pad your revenue.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		sim := simulator.NewSimulator(cfg)
		if cfg.Interactive {
			ui.New(sim, os.Stdin, os.Stdout).Run()
			return
		}
		sim.Run()
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.restosim.yaml)")

	rootCmd.Flags().Int64("seed", 0, "Random seed for simulation (0 uses current time)")
	rootCmd.Flags().String("restaurant-name", "", "Name of the restaurant (random if empty)")
	rootCmd.Flags().Int("days", 30, "Number of days to simulate in batch mode")
	rootCmd.Flags().Bool("interactive", false, "Run the interactive terminal game instead of batch mode")
	rootCmd.Flags().Bool("clamp-inventory", false, "Clamp inventory at zero on oversized decrements")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().String("output-file", "", "Output directory for day summaries (if not using Kafka)")

	viper.BindPFlags(rootCmd.Flags())

	// Flag names use dashes, config keys use underscores.
	viper.BindPFlag("restaurant_name", rootCmd.Flags().Lookup("restaurant-name"))
	viper.BindPFlag("clamp_inventory", rootCmd.Flags().Lookup("clamp-inventory"))
	viper.BindPFlag("kafka_enabled", rootCmd.Flags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka_broker_list", rootCmd.Flags().Lookup("kafka-broker-list"))
	viper.BindPFlag("output_file_path", rootCmd.Flags().Lookup("output-file"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".restosim")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "moai-search",
	Short: "Search and recommendations for the Moai home-cooking marketplace",
	Long: `moai-search ranks dishes and cooks for the Moai marketplace: filtered
full-text search with facets and suggestions, plus time-aware and
personalized recommendations. Prices are in Chilean pesos.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.json)")

	rootCmd.PersistentFlags().Int64("seed", 42, "Random seed for demo data generation")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("postgres-dsn", "", "Postgres DSN for the catalog (empty uses generated demo data)")
	rootCmd.PersistentFlags().String("redis-addr", "", "Redis address for catalog caching (empty disables the cache)")
	rootCmd.PersistentFlags().Bool("kafka-enabled", false, "Publish search analytics to Kafka")
	rootCmd.PersistentFlags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.PersistentFlags().String("output-file", "", "Analytics output path (if not using Kafka)")
	rootCmd.PersistentFlags().String("output-format", "json", "Analytics output format (console, json, parquet)")

	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("postgres_dsn", rootCmd.PersistentFlags().Lookup("postgres-dsn"))
	viper.BindPFlag("redis_addr", rootCmd.PersistentFlags().Lookup("redis-addr"))
	viper.BindPFlag("kafka_enabled", rootCmd.PersistentFlags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka_broker_list", rootCmd.PersistentFlags().Lookup("kafka-broker-list"))
	viper.BindPFlag("output_file_path", rootCmd.PersistentFlags().Lookup("output-file"))
	viper.BindPFlag("output_format", rootCmd.PersistentFlags().Lookup("output-format"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("config")
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

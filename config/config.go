package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "COCOA_CONFIG_FILE"

type consumers struct {
	EventsSaverGroup string `mapstructure:"events_saver_group"`
}

type topics struct {
	ShopperEvents      string `mapstructure:"shopper_events"`
	ActivityGroupTable string `mapstructure:"activity_group_table"`
}

type tlsFiles struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

type broker struct {
	SeedBrokers        []string  `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string  `mapstructure:"schema_registry_urls"`
	TLS                tlsFiles  `mapstructure:"tls"`
	Topics             topics    `mapstructure:"topics"`
	Consumers          consumers `mapstructure:"consumers"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	StateDir       string     `mapstructure:"state_dir"`
	SQLDB          string     `mapstructure:"sql_db"`
	Broker         broker     `mapstructure:"broker"`
}

// EventsEnabled reports whether the event pipeline should start.
// Without seed brokers the storefront records nothing and serves
// zero activity counts.
func (c Config) EventsEnabled() bool {
	return len(c.Broker.SeedBrokers) > 0
}

// BrokerTLSEnabled reports whether broker connections use mutual TLS.
func (c Config) BrokerTLSEnabled() bool {
	t := c.Broker.TLS
	return t.CA != "" && t.Cert != "" && t.Key != ""
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	StateDir=%q
	SQLDB=%q

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topics:
		ShopperEvents=%q
		ActivityGroupTable=%q
	Consumers:
		EventsSaverGroup=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.StateDir,
		c.SQLDB,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.Topics.ShopperEvents,
		c.Broker.Topics.ActivityGroupTable,
		c.Broker.Consumers.EventsSaverGroup,
	)
}

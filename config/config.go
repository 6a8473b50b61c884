package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

type Identity struct {
	Address   string
	Signature string
}

type Store struct {
	Address string
}

type Tpke struct {
	Threshold int
}

type Api struct {
	Address string
}

type Config struct {
	Identity Identity
	Store    Store
	Tpke     Tpke
	Api      Api
}

var defaultConfig = &Config{
	Identity: Identity{
		Address:   "0x1000000000000000000000000000000000000001",
		Signature: "",
	},
	Store: Store{
		Address: "0x2000000000000000000000000000000000000002",
	},
	Tpke: Tpke{
		Threshold: 3,
	},
	Api: Api{
		Address: "127.0.0.1:5555",
	},
}

var once sync.Once

var configPath = os.Getenv("HOME") + "/.harpocrates/config.yml"

func Path() string {
	return configPath
}

func Get() *Config {
	once.Do(func() {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			panic("cannot read config")
		}
		err := viper.Unmarshal(&defaultConfig)
		if err != nil {
			panic(fmt.Sprintf("error in read config, err: %s", err))
		}
	})
	return defaultConfig
}

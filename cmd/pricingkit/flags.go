package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags maps flag names onto config keys so flags take precedence over
// the config file and environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		flag := flags.Lookup(name)
		if flag == nil {
			panic(fmt.Sprintf("bind flag: unknown flag %q", name))
		}
		if err := v.BindPFlag(key, flag); err != nil {
			panic(fmt.Sprintf("bind flag %q: %v", name, err))
		}
	}
}

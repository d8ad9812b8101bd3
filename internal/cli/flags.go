package cli

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags binds each named flag to the config key of the same name.
func bindFlags(v *viper.Viper, lookup func(string) *pflag.Flag, keys ...string) {
	for _, key := range keys {
		if f := lookup(key); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

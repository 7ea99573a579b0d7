package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cfg holds the config layer cobra/pflag/viper build together: flags
// bound into v, an optional .hashlife.yaml, and HASHLIFE_* env vars,
// in the precedence order viper.BindPFlag establishes.
type cfg struct {
	v   *viper.Viper
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cfg{v: viper.New()}

	root := &cobra.Command{
		Use:           "hashlife",
		Short:         "A HashLife cellular automaton engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("rule", "", "life rule in B/S notation (default: the pattern's own rule, or B3/S23)")
	pf.Bool("verbose", false, "enable debug logging")
	pf.String("config", "", "path to a .hashlife.yaml config file")

	_ = c.v.BindPFlag("rule", pf.Lookup("rule"))
	_ = c.v.BindPFlag("verbose", pf.Lookup("verbose"))
	c.v.SetEnvPrefix("HASHLIFE")
	c.v.AutomaticEnv()

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if path, _ := pf.GetString("config"); path != "" {
			c.v.SetConfigFile(path)
		} else {
			c.v.SetConfigName(".hashlife")
			c.v.SetConfigType("yaml")
			c.v.AddConfigPath(".")
			if home, err := os.UserHomeDir(); err == nil {
				c.v.AddConfigPath(home)
			}
		}
		if err := c.v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return err
			}
		}

		level := zerolog.InfoLevel
		if c.v.GetBool("verbose") {
			level = zerolog.DebugLevel
		}
		c.log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			Level(level).
			With().Timestamp().Logger()
		return nil
	}

	root.AddCommand(newRunCmd(c), newRenderCmd(c), newViewCmd(c))
	return root
}

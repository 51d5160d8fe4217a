// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/alvinbaena/pwd-toolkit/internal/config"
	"github.com/alvinbaena/pwd-toolkit/internal/util"
	"github.com/alvinbaena/pwd-toolkit/pkg/hibp"
	"github.com/alvinbaena/pwd-toolkit/pkg/random"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pwdkit [COMMAND] [OPTIONS]",
		Short: "Check the strength of passwords and generate new ones",
		Long: "Estimate password strength, look passwords up in the Pwned Passwords (haveibeenpwned.com) range API " +
			"and generate random passwords and passphrases. Only the first 5 characters of the SHA1 hash of a " +
			"password ever leave this machine.",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print more information on the processing")
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Enable the profiling server (pprof) when running commands")
	rootCmd.PersistentFlags().Uint16Var(&pprofPort, "profile-port", 6060, "The port to use for the pprof server. Only used if the profile flag is set")
}

func Execute() error {
	return rootCmd.Execute()
}

// setup applies the global flags and loads the environment configuration.
func setup() (config.Config, error) {
	util.ApplyCliSettings(verbose, profile, pprofPort)
	return config.Load()
}

func newChecker(cfg config.Config) (*hibp.Checker, error) {
	return hibp.NewChecker(
		hibp.WithBaseURL(cfg.HibpURL),
		hibp.WithRetries(cfg.HibpRetries),
		hibp.WithCacheTTL(cfg.BreachCacheTTL),
	)
}

// sourceFor prefers the --source flag over RANDOM_SOURCE.
func sourceFor(cfg config.Config) (random.Source, error) {
	if source != "" {
		return random.ParseSource(source)
	}
	return random.ParseSource(cfg.RandomSource)
}

package main

import (
	"fmt"
	"os"

	"github.com/guided-traffic/jwt-secret/internal/config"
	"github.com/guided-traffic/jwt-secret/internal/secret"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Build information injected at build time
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"

	newGenerator = secret.NewGenerator
)

func newRootCmd(generator *secret.Generator) *cobra.Command {
	return &cobra.Command{
		Use:   "jwt-secret",
		Short: "Generate a random 256-bit JWT signing secret",
		Long: `jwt-secret generates 32 bytes from the operating system CSPRNG and prints
them encoded as standard base64 (with '+', '/' and '=' padding), the format
expected by jjwt's Decoders.BASE64 and Keys.hmacShaKeyFor.

Logging goes to stderr and can be tuned with JWTSECRET_LOG_LEVEL and
JWTSECRET_LOG_FORMAT.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, generator)
		},
	}
}

func initConfig() {
	config.InitConfig()

	cfg := config.LoadOrDefault()
	if err := cfg.ConfigureLogging(); err != nil {
		logrus.WithError(err).Warn("Failed to configure logging")
	}
}

func runGenerate(cmd *cobra.Command, generator *secret.Generator) error {
	logrus.WithFields(logrus.Fields{
		"version":   version,
		"commit":    commit,
		"buildTime": buildTime,
	}).Debug("jwt-secret build information")

	value, err := generator.Generate()
	if err != nil {
		return err
	}

	if err := secret.Verify(value); err != nil {
		return fmt.Errorf("generated secret failed verification: %w", err)
	}

	if err := secret.WriteSecret(cmd.OutOrStdout(), value); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"bits":     secret.KeySize * 8,
		"encoding": "base64-std",
	}).Info("Generated JWT secret")

	return nil
}

func main() {
	cobra.OnInitialize(initConfig)

	if err := newRootCmd(newGenerator()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

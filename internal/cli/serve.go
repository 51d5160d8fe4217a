// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alvinbaena/pwd-toolkit/internal/api"
	"github.com/alvinbaena/pwd-toolkit/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/likexian/selfca"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the strength, breach and generator API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCommand()
		},
	}
)

//goland:noinspection GoUnhandledErrorResult
func init() {
	serveCmd.Flags().BoolVar(&selfTLS, "self-tls", false,
		"If the server should use a self-signed certificate when starting. The certificate is renewed on each server restart")
	serveCmd.Flags().StringVar(&tlsCert, "tls-cert", "", "Path to the PEM encoded TLS certificate to be used by the server")
	serveCmd.Flags().StringVar(&tlsKey, "tls-key", "", "Path to the PEM encoded TLS private key to be used by the server")
	serveCmd.Flags().Uint16VarP(&port, "port", "p", 3100, "Port to be used by the server")
	serveCmd.Flags().StringSliceVar(&origins, "cors-origin", nil, "Allowed CORS origins. All origins are allowed if omitted")

	viper.BindPFlag("PORT", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("SELF_TLS", serveCmd.Flags().Lookup("self-tls"))
	viper.BindPFlag("TLS_CERT", serveCmd.Flags().Lookup("tls-cert"))
	viper.BindPFlag("TLS_KEY", serveCmd.Flags().Lookup("tls-key"))

	rootCmd.AddCommand(serveCmd)
}

func serveCommand() error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	srvCfg, err := config.LoadServer()
	if err != nil {
		return fmt.Errorf("server requires TLS configuration to start, "+
			"use either the --self-tls flag or set a certificate with the --tls-cert and --tls-key flags: %w", err)
	}

	if !verbose && !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	src, err := sourceFor(cfg)
	if err != nil {
		return err
	}
	checker, err := newChecker(cfg)
	if err != nil {
		return fmt.Errorf("error initializing API: %w", err)
	}
	defer checker.Close()

	srvAddr := fmt.Sprintf(":%s", srvCfg.Port)
	srv := &http.Server{
		Addr:              srvAddr,
		Handler:           api.NewRouter(api.RouterOptions{Checker: checker, Source: src, Origins: origins}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Msgf("starting TLS Server on address: %s", srvAddr)
		if srvCfg.TLSCert != "" && srvCfg.TLSKey != "" {
			// service connections with tls certs
			if err := srv.ListenAndServeTLS(srvCfg.TLSCert, srvCfg.TLSKey); err != nil && err != http.ErrServerClosed {
				log.Fatal().Err(err).Msg("error starting server")
			}
			return
		}

		log.Warn().Msgf("using auto self-signed certificate for TLS. This is not recommended for production. Please consider using your own certificates.")
		pair, err := selfSignedPair()
		if err != nil {
			log.Fatal().Err(err).Msg("error generating auto self-signed certificate")
		}
		srv.TLSConfig = &tls.Config{
			MinVersion:   tls.VersionTLS12,
			Certificates: []tls.Certificate{pair},
		}

		// service connections with tls config, no need to pass files
		if err = srv.ListenAndServeTLS("", ""); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("error starting server")
		}
	}()

	gracefulShutdown(srv)
	checker.LogStats()
	return nil
}

func selfSignedPair() (tls.Certificate, error) {
	caConfig := selfca.Certificate{
		IsCA:      true,
		KeySize:   2048,
		NotBefore: time.Now(),
		// 30 day self-signed cert.
		NotAfter: time.Now().Add(time.Duration(30*24) * time.Hour),
	}

	certificate, key, err := selfca.GenerateCertificate(caConfig)
	if err != nil {
		return tls.Certificate{}, err
	}

	return tls.X509KeyPair(
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certificate}),
		pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}),
	)
}

func gracefulShutdown(srv *http.Server) {
	// Wait for interrupt signal to gracefully shut down the server with
	// a timeout.
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall. SIGKILL but can't be a catch, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("server Shutdown.")
	}
	log.Info().Msg("server exiting...")
}

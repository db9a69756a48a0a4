// bot-atelier-server lets other people visit a saved museum over SSH.
// Build:
//
//	go build -o bot-atelier-server ./cmd/server
//
// Usage:
//
//	./bot-atelier-server [--config config.toml]
//
// Visit from any terminal:
//
//	ssh -p 2222 <host>
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"os"

	gossh "github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"

	"bot-atelier/internal/config"
	"bot-atelier/internal/logger"
	"bot-atelier/internal/spectate"
)

func main() {
	cfgPath := flag.String("config", "config.toml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	signer, err := loadOrCreateHostKey(cfg.Spectate.HostKey, log)
	if err != nil {
		log.Fatal("host key", zap.Error(err))
	}

	srv := spectate.New(cfg.Spectate.Addr, signer, cfg.Spectate.Save, log)
	log.Fatal("server stopped", zap.Error(srv.ListenAndServe()))
}

// loadOrCreateHostKey loads a PEM private key from path, or generates
// and persists a new ed25519 key when the file is absent or unreadable.
func loadOrCreateHostKey(path string, log *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("host key loaded", zap.String("path", path))
			return signer, nil
		}
	}

	log.Info("generating new ed25519 host key", zap.String("path", path))
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "bot-atelier spectate server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer, nil
}

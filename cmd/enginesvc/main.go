// Command enginesvc boots the sandbox orchestrator's NATS-facing service:
// it wires the Docker client, the container manager and pool, the session
// manager, and the execution engine together, then serves the façade's
// request/reply subjects until killed.
package main

import (
	"context"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"xcodeengine/internal/config"
	"xcodeengine/internal/container"
	"xcodeengine/internal/engine"
	"xcodeengine/internal/facade"
	"xcodeengine/internal/langs"
	"xcodeengine/internal/session"
	"xcodeengine/internal/telemetry"
)

func main() {
	cfg := config.Load()

	logger, err := telemetry.New(cfg.Environment, cfg.BetterStackUploadURL, cfg.BetterStackSourceToken)
	if err != nil {
		log.Fatalf("enginesvc: init logger: %v", err)
	}
	defer logger.Sync()
	top := logger.Named("enginesvc")

	dockerClient, err := container.NewDockerClient()
	if err != nil {
		top.Error("connect docker", err, nil)
		log.Fatal(err)
	}
	defer dockerClient.Close()

	containerManager, err := container.NewManager(dockerClient, cfg.ContainerNamePrefix, cfg.TempBaseDir, nil)
	if err != nil {
		top.Error("init container manager", err, nil)
		log.Fatal(err)
	}

	pool := container.NewPool(containerManager, cfg.PoolMinSize, cfg.PoolMaxSize, cfg.PoolIdleTimeout)
	sessions := session.NewManager()

	eng := engine.New(engine.Config{
		Registry:        langs.Default(),
		Containers:      containerManager,
		Pool:            pool,
		Sessions:        sessions,
		Logger:          logger,
		DefaultMemory:   cfg.DefaultMemoryLimit,
		DefaultCPUQuota: cfg.DefaultCPUQuota,
		DefaultTimeout:  cfg.DefaultExecTimeout,
	})

	if err := containerManager.Sweep(context.Background()); err != nil {
		top.Warn("startup sweep failed", map[string]any{"err": err.Error()})
	}

	svc := facade.NewService(eng)

	nc, err := nats.Connect(cfg.NatsURL)
	if err != nil {
		top.Error("connect nats", err, map[string]any{"url": cfg.NatsURL})
		log.Fatal(err)
	}
	defer nc.Close()

	if err := facade.Subscribe(nc, svc, logger.Named("facade")); err != nil {
		top.Error("subscribe", err, nil)
		log.Fatal(err)
	}

	top.Info("enginesvc ready", map[string]any{"nats": cfg.NatsURL, "pool_min": cfg.PoolMinSize, "pool_max": cfg.PoolMaxSize})

	// Periodic orphan sweep, recovering containers left behind by a crash
	// between this process's own restarts.
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if err := containerManager.Sweep(context.Background()); err != nil {
				top.Warn("periodic sweep failed", map[string]any{"err": err.Error()})
			}
		}
	}()

	select {}
}

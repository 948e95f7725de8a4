package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parking-garage/internal/config"
	"parking-garage/internal/logging"
	"parking-garage/internal/parking"
	"parking-garage/internal/server"
)

var (
	mode = flag.String("mode", "server", "Mode to run: cli, server, or both")
	port = flag.String("port", "", "Port for HTTP server (overrides APP_PORT)")
)

func main() {
	flag.Parse()

	cfg := config.Load()
	logging.Init(cfg.IsDevelopment())
	log := logging.Logger()

	if *port != "" {
		cfg.Port = *port
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	telemetry, err := parking.NewTelemetryProvider(cfg.OTelServiceName, cfg.OTelEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}

	service, err := buildService(cfg, telemetry)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build ticket service")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	switch *mode {
	case "cli":
		runCLI(ctx, cancel, service, telemetry, sigChan)
	case "server":
		runServer(ctx, cancel, cfg, service, telemetry, sigChan)
	case "both":
		runBoth(ctx, cancel, cfg, service, telemetry, sigChan)
	default:
		log.Fatal().Str("mode", *mode).Msg("invalid mode, must be cli, server, or both")
	}
}

// buildService assembles the lot, its floors, gates and stores. Each
// floor carries two bike slots, four car slots and two truck slots.
func buildService(cfg *config.Config, telemetry *parking.TelemetryProvider) (*parking.InstrumentedTicketService, error) {
	allowed := []parking.VehicleType{
		parking.VehicleTypeBike,
		parking.VehicleTypeCar,
		parking.VehicleTypeTruck,
		parking.VehicleTypeBus,
	}

	lot := parking.NewParkingLot(cfg.LotName, cfg.LotAddress, allowed, parking.StrategyByName(cfg.DefaultStrategy))

	for floorNumber := 1; floorNumber <= 3; floorNumber++ {
		floor := parking.NewFloor(floorNumber, allowed)
		slotNumber := 1
		for _, layout := range []struct {
			vehicleType parking.VehicleType
			count       int
		}{
			{parking.VehicleTypeBike, 2},
			{parking.VehicleTypeCar, 4},
			{parking.VehicleTypeTruck, 2},
		} {
			for i := 0; i < layout.count; i++ {
				if _, err := floor.AddSlot(slotNumber, layout.vehicleType); err != nil {
					return nil, err
				}
				slotNumber++
			}
		}
		if err := lot.AddFloor(floor); err != nil {
			return nil, err
		}
	}

	gates := parking.NewInMemoryGateStore()
	entry := parking.NewGate(1, parking.GateTypeEntry, lot.ID)
	exit := parking.NewGate(2, parking.GateTypeExit, lot.ID)
	lot.AddGate(entry)
	lot.AddGate(exit)
	gates.Save(entry)
	gates.Save(exit)

	service := parking.NewTicketService(
		lot,
		gates,
		parking.NewInMemoryVehicleStore(),
		parking.NewInMemoryTicketStore(),
		parking.NewInMemoryBillStore(),
		parking.NewDefaultTariff(),
	)

	return parking.NewInstrumentedTicketService(service, telemetry)
}

func runCLI(ctx context.Context, cancel context.CancelFunc, service *parking.InstrumentedTicketService, telemetry *parking.TelemetryProvider, sigChan chan os.Signal) {
	go func() {
		<-sigChan
		logging.Logger().Info().Msg("shutting down")
		cancel()
	}()

	shell := parking.NewShell(service, telemetry)
	shell.Run(ctx)

	shutdownTelemetry(telemetry)
}

func runServer(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, service *parking.InstrumentedTicketService, telemetry *parking.TelemetryProvider, sigChan chan os.Signal) {
	srv := server.NewServer(cfg.Port, service, cfg.OTelServiceName)

	go func() {
		<-sigChan
		logging.Logger().Info().Msg("received shutdown signal")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Logger().Error().Err(err).Msg("server shutdown error")
		}

		cancel()
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Logger().Error().Err(err).Msg("server error")
	}

	shutdownTelemetry(telemetry)
}

func runBoth(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, service *parking.InstrumentedTicketService, telemetry *parking.TelemetryProvider, sigChan chan os.Signal) {
	srv := server.NewServer(cfg.Port, service, cfg.OTelServiceName)

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.Start()
	}()

	cliDone := make(chan bool, 1)
	go func() {
		shell := parking.NewShell(service, telemetry)
		shell.Run(ctx)
		cliDone <- true
	}()

	go func() {
		<-sigChan
		logging.Logger().Info().Msg("received shutdown signal")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Logger().Error().Err(err).Msg("server shutdown error")
		}

		cancel()
	}()

	select {
	case err := <-serverDone:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Logger().Error().Err(err).Msg("server error")
		}
	case <-cliDone:
		logging.Logger().Info().Msg("CLI exited")
	case <-ctx.Done():
		logging.Logger().Info().Msg("context cancelled")
	}

	shutdownTelemetry(telemetry)
}

func shutdownTelemetry(telemetry *parking.TelemetryProvider) {
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logging.Logger().Error().Err(err).Msg("error shutting down telemetry")
	}
}

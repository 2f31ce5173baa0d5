// Package main implements the entry point for the labstreams application.
// Labstreams annotates laboratory device models with semantic dictionary
// references, records live process values and device events, and exports
// the captured data as spreadsheet and JSON artifacts.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/opcua-lads/labstreams/binder"
	"github.com/opcua-lads/labstreams/config"
	"github.com/opcua-lads/labstreams/devicemodel"
	"github.com/opcua-lads/labstreams/dictionary"
	"github.com/opcua-lads/labstreams/export"
	"github.com/opcua-lads/labstreams/metric"
	"github.com/opcua-lads/labstreams/recorder"
	"github.com/opcua-lads/labstreams/testutil"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "labstreams"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	// Run application with proper error handling
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run() error {
	// Parse and validate CLI flags
	cliCfg, logger, shouldExit, err := initializeCLI()
	if shouldExit || err != nil {
		return err
	}

	// Load and validate configuration
	cfg, err := initializeConfiguration(cliCfg)
	if err != nil {
		return err
	}

	if cliCfg.Validate {
		slog.Info("Configuration is valid")
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Setup metrics infrastructure
	registry := metric.NewMetricsRegistry()
	core := registry.CoreMetrics()
	core.ServiceStatus.WithLabelValues(appName).Set(1)
	if cfg.Metrics.Enabled {
		server := metric.NewServer(cfg.Metrics.Addr, cfg.Metrics.Path, registry)
		if err := server.Start(); err != nil {
			return fmt.Errorf("start metrics server: %w", err)
		}
		defer func() { _ = server.Stop() }()
	}

	// Build the annotated device model
	device, b, err := setupDeviceModel(cfg, logger, registry)
	if err != nil {
		return err
	}

	// Capture process values and device events
	sampled, events, cleanup, err := setupRecorders(cfg, cliCfg, logger, registry, device)
	if err != nil {
		core.ErrorsTotal.WithLabelValues(appName, "setup").Inc()
		core.ServiceStatus.WithLabelValues(appName).Set(2)
		return err
	}
	defer cleanup()

	runSampling(ctx, cliCfg, sampled, device)
	events.Stop()

	// Export the captured data
	if err := exportArtifacts(ctx, cfg, logger, registry, device, b, sampled, events); err != nil {
		core.ErrorsTotal.WithLabelValues(appName, "export").Inc()
		core.ServiceStatus.WithLabelValues(appName).Set(2)
		return err
	}

	core.ServiceStatus.WithLabelValues(appName).Set(0)
	return nil
}

// initializeCLI parses flags and sets up logging
func initializeCLI() (*CLIConfig, *slog.Logger, bool, error) {
	cliCfg := parseFlags()
	if err := validateFlags(cliCfg); err != nil {
		return nil, nil, false, fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		fmt.Printf("%s version %s\n", appName, Version)
		return nil, nil, true, nil
	}

	if cliCfg.ShowHelp {
		printDetailedHelp()
		return nil, nil, true, nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat)
	slog.SetDefault(logger)

	slog.Info("Starting labstreams (device recording and export)",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cliCfg.ConfigPath)

	return cliCfg, logger, false, nil
}

// initializeConfiguration loads and validates configuration
func initializeConfiguration(cliCfg *CLIConfig) (config.Config, error) {
	if cliCfg.ConfigPath == "" {
		slog.Info("No config file given, using defaults")
		return config.DefaultConfig(), nil
	}

	cfg, err := config.Load(cliCfg.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// setupDeviceModel builds the demo device model and annotates it with
// dictionary references.
func setupDeviceModel(
	cfg config.Config,
	logger *slog.Logger,
	registry *metric.MetricsRegistry,
) (*devicemodel.Node, *binder.Binder, error) {
	catalog := dictionary.NewCatalog(dictionary.NewDefaultNamespace(),
		dictionary.WithNamespaceURI(cfg.Dictionary.NamespaceURI),
		dictionary.WithLogger(logger),
		dictionary.WithMetrics(dictionary.NewMetrics(registry)),
	)

	device := testutil.SampleDevice()
	slog.Info("Built demo device model", "device", device.Name)

	b := binder.New(catalog, binder.WithLogger(logger))
	b.BindDefaultReferences(device)

	slog.Info("Annotated device model",
		"dictionary_installed", catalog.Installed(),
		"references", device.TotalReferences())

	return device, b, nil
}

// setupRecorders creates the sampled recorder over the demo sensors and an
// event recorder fed from NATS when configured, or from a local emitter
// otherwise. The returned cleanup releases the event source.
func setupRecorders(
	cfg config.Config,
	cliCfg *CLIConfig,
	logger *slog.Logger,
	registry *metric.MetricsRegistry,
	device *devicemodel.Node,
) (*recorder.Recorder, *recorder.EventRecorder, func(), error) {
	metrics := recorder.NewMetrics(registry)

	sampled := recorder.NewRecorder("", []*devicemodel.Value{
		testutil.SensorValue(device, "Temperature"),
		testutil.SensorValue(device, "Pressure"),
		testutil.HeaterValue(device, devicemodel.NameCurrentValue),
	},
		recorder.WithLogger(logger),
		recorder.WithMetrics(metrics),
		recorder.WithTrackOptions(recorder.TrackOptions{
			ShortNames: cfg.Recording.ShortTrackNames,
		}),
	)
	slog.Info("Created recorder", "id", sampled.ID(), "tracks", len(sampled.Tracks()))

	var source devicemodel.EventSource
	cleanup := func() {}

	if cfg.NATS.Enabled {
		slog.Info("Connecting to NATS", "url", cfg.NATS.URL, "subject", cfg.NATS.EventSubject)
		conn, err := nats.Connect(cfg.NATS.URL, nats.Name(appName))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect to NATS: %w", err)
		}
		source = recorder.NewNATSEventSource(conn, cfg.NATS.EventSubject, logger)
		cleanup = conn.Close
	} else {
		emitter := devicemodel.NewEventEmitter()
		go emitDemoEvents(emitter, cliCfg.SampleInterval)
		source = emitter
		cleanup = emitter.Close
	}

	events, err := recorder.NewEventRecorder("events",
		source, recorder.WithLogger(logger), recorder.WithMetrics(metrics))
	if err != nil {
		cleanup()
		return nil, nil, nil, fmt.Errorf("subscribe event recorder: %w", err)
	}

	return sampled, events, cleanup, nil
}

// emitDemoEvents feeds a handful of synthetic device events into the local
// emitter so that runs without a broker still produce an event sheet.
func emitDemoEvents(emitter *devicemodel.EventEmitter, interval time.Duration) {
	messages := []string{"run started", "setpoint reached", "sample drawn"}
	for i, msg := range messages {
		emitter.Emit(devicemodel.Event{
			Timestamp:  time.Now(),
			Severity:   1,
			Message:    msg,
			SourceName: "ReactorUnit",
		})
		if i < len(messages)-1 {
			time.Sleep(interval)
		}
	}
}

// runSampling captures the configured number of records, nudging the demo
// sensor values between samples so the export carries a visible trend.
func runSampling(ctx context.Context, cliCfg *CLIConfig, sampled *recorder.Recorder, device *devicemodel.Node) {
	temperature := testutil.SensorValue(device, "Temperature")

	for i := 0; i < cliCfg.SampleCount; i++ {
		record := sampled.CreateRecord()
		slog.Debug("Captured record", "index", i, "timestamp", record.Timestamp)

		reading := temperature.Read()
		temperature.Write(devicemodel.NumberVariant(reading.Number + 0.7))

		select {
		case <-ctx.Done():
			slog.Warn("Sampling interrupted", "records", len(sampled.Records()))
			return
		case <-time.After(cliCfg.SampleInterval):
		}
	}

	slog.Info("Sampling complete", "records", len(sampled.Records()))
}

// exportArtifacts writes the workbook and JSON report and registers the
// workbook as a result file on the demo device's finished run.
func exportArtifacts(
	ctx context.Context,
	cfg config.Config,
	logger *slog.Logger,
	registry *metric.MetricsRegistry,
	device *devicemodel.Node,
	b *binder.Binder,
	sampled *recorder.Recorder,
	events *recorder.EventRecorder,
) error {
	exporter := export.New(
		export.WithLogger(logger),
		export.WithMetrics(export.NewMetrics(registry)),
	)
	recorders := []recorder.RecordSet{sampled, events}

	workbookPath, err := exporter.WriteArtifact(ctx,
		cfg.Export.Directory, cfg.Export.WorkbookName, export.MimeTypeXLSX, recorders)
	if err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	reportPath, err := exporter.WriteArtifact(ctx,
		cfg.Export.Directory, cfg.Export.ReportName, export.MimeTypeJSON, recorders)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	slog.Info("Export complete", "workbook", workbookPath, "report", reportPath)

	// Register the workbook on the finished run so downstream consumers can
	// discover it through the device model.
	result := device.Child("ReactorUnit").
		Child(devicemodel.NameProgramManager).
		Child("Run-0001")
	if result == nil {
		slog.Warn("No finished run on device, skipping result file registration")
		return nil
	}

	if _, err := exporter.CreateResultFile(result,
		cfg.Export.WorkbookName, workbookPath, export.MimeTypeXLSX, b); err != nil {
		return fmt.Errorf("register result file: %w", err)
	}

	return nil
}

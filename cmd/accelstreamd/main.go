// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// accelstreamd configures a LIS3DH accelerometer and streams framed
// acceleration telemetry over a serial link until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tarm/serial"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/telemetrak/accelstream/internal/config"
	"github.com/telemetrak/accelstream/lis3dh"
	"github.com/telemetrak/accelstream/regbus"
	"github.com/telemetrak/accelstream/stream"
)

func main() {
	cfgPath := flag.String("config", "", "YAML configuration file")
	busName := flag.String("bus", "", "I2C bus name override")
	serialDev := flag.String("serial", "", `serial output override ("-" for stdout)`)
	verbose := flag.Bool("v", false, "log every bus transaction")
	flag.Parse()

	cfg := config.Default
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("config load failed: %v", err)
		}
	}
	if *busName != "" {
		cfg.Bus = *busName
	}
	if *serialDev != "" {
		cfg.Serial = *serialDev
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if _, err := host.Init(); err != nil {
		log.Fatalf("host init failed: %v", err)
	}
	bus, err := i2creg.Open(cfg.Bus)
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	// Diagnostics go to stderr so "-serial -" keeps stdout binary-clean.
	diag := os.Stderr

	// The device's boot procedure completes about 5 ms after power-up.
	time.Sleep(5 * time.Millisecond)

	for _, addr := range regbus.Scan(bus) {
		fmt.Fprintf(diag, "Device 0x%02X is connected\n", addr)
	}

	rng := lis3dh.Range4G
	if cfg.RangeG == 2 {
		rng = lis3dh.Range2G
	}
	odr := lis3dh.Ctrl1ODR100Hz
	if cfg.RateHz == 50 {
		odr = lis3dh.Ctrl1ODR50Hz
	}
	dev, err := lis3dh.New(bus, &lis3dh.Opts{Addr: cfg.Addr, Range: rng, ODR: odr})
	if err != nil {
		log.Fatalf("accelerometer setup failed: %v", err)
	}
	if *verbose {
		dev.EnableDebug(log.Printf)
	}
	dev.DumpRegisters(diag)

	out, closer, err := openOutput(cfg)
	if err != nil {
		log.Fatalf("telemetry output: %v", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := stream.New(dev, out, stream.Opts{
		Interval:     cfg.Interval(),
		PollInterval: cfg.PollInterval(),
		Logf:         log.Printf,
	})
	log.Printf("streaming %s at %d Hz to %s", dev, cfg.RateHz, cfg.Serial)
	if err := s.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	if err := dev.Halt(); err != nil {
		log.Printf("power down failed: %v", err)
	}
}

// openOutput returns the telemetry sink; "-" means stdout.
func openOutput(cfg config.Config) (io.Writer, io.Closer, error) {
	if cfg.Serial == "-" {
		return os.Stdout, nil, nil
	}
	port, err := serial.OpenPort(&serial.Config{Name: cfg.Serial, Baud: cfg.Baud})
	if err != nil {
		return nil, nil, err
	}
	return port, port, nil
}

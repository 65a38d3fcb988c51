// Command slconfig is the standalone diagnostic tool: it connects to a
// gateway once, fetches the full controller configuration, prints it, and
// exits. It shares the bridge with the web server, so one run also verifies
// discovery, login, and the command round trip.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"poolbridge"
	"poolbridge/internal/logger"
	"poolbridge/internal/screenlogic"
	"poolbridge/internal/service"
)

func main() {
	var (
		systemName = flag.String("system", "", "ScreenLogic system name (required)")
		password   = flag.String("password", "", "gateway password")
		address    = flag.String("addr", "", "gateway IP; skips mDNS discovery when set")
		port       = flag.Int("port", 80, "gateway port (with -addr)")
		timeout    = flag.Duration("timeout", 10*time.Second, "overall command timeout")
	)
	flag.Parse()

	if *systemName == "" {
		fmt.Fprintln(os.Stderr, "usage: slconfig -system <name> [-password <pw>] [-addr <ip>]")
		os.Exit(2)
	}

	log := logger.Get(logger.WarnLevel)

	var locator screenlogic.Locator
	if *address != "" {
		locator = screenlogic.StaticLocator{Addr: screenlogic.Addr{IP: *address, Port: *port}}
	} else {
		locator = screenlogic.NewMDNSLocator(*timeout)
	}

	bridge := service.NewGatewayBridge(locator, &screenlogic.WSDialer{}, *timeout, log)
	creds := poolbridge.Credentials{SystemName: *systemName, Password: *password}

	cfg, err := bridge.FetchConfig(context.Background(), creds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch config: %v\n", err)
		os.Exit(1)
	}

	printConfig(cfg)
}

func printConfig(cfg poolbridge.ControllerConfig) {
	fmt.Printf("Gateway: %s (firmware %s)\n\n", cfg.GatewayName, cfg.Version)

	fmt.Println("Bodies:")
	for _, b := range cfg.Bodies {
		fmt.Printf("  [%d] %-12s current %.1f°F  setpoint %.1f°F  heat mode %d\n",
			b.Index, b.Name, b.CurrentTempF, b.SetPointF, b.HeatMode)
	}

	fmt.Println("\nCircuits:")
	for _, c := range cfg.Circuits {
		name := c.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("  [%d] %-20s %s\n", c.ID, name, c.Function)
	}
}

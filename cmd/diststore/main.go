package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"diststore/internal/config"
	"diststore/internal/discovery"
	"diststore/internal/location"
	"diststore/internal/node"
)

const longUsage = `Starts a distributed key-value storage node on the designated port,
contacting the designated peer. In the absence of either, the node
probes ports 9900 and up on the local host: the first free port
becomes its own, and the first node announcing a matching service
becomes its peer. Without any peer it initiates a fresh network.

After joining, a node receives the key-value pairs it now owns from
its neighbors. On a clean exit it hands all of its items back to the
appropriate neighbors.`

var (
	hostFlag string
	portFlag int
	addrFlag string
)

var rootCmd = &cobra.Command{
	Use:          "diststore",
	Short:        "peer-to-peer distributed key-value storage node",
	Long:         longUsage,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&hostFlag, "host", "", "address:port of the initial peer (default: autodiscover)")
	rootCmd.Flags().IntVarP(&portFlag, "port", "p", 0, "server port (default: first free port from 9900)")
	rootCmd.Flags().StringVar(&addrFlag, "addr", "", "advertised address (default: resolved hostname)")
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if portFlag < 0 || portFlag > 65535 {
		return fmt.Errorf("port %d out of range", portFlag)
	}

	cfg := &config.Config{Addr: addrFlag, Port: uint16(portFlag), Peer: hostFlag}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := node.NewClient()
	localhost := location.Location{Address: "localhost", Port: config.DefaultPort}

	port := cfg.Port
	if port == 0 {
		free, err := discovery.PingUntilNotFound(ctx, client, localhost, config.ProbeRange)
		if err != nil {
			return fmt.Errorf("no free port: %w", err)
		}
		port = free.Port
	}

	var peer *location.Location
	if loc, ok, err := cfg.PeerLocation(); err != nil {
		return err
	} else if ok {
		peer = &loc
	} else if found, ok := discovery.FindMatchingService(ctx, client, localhost, node.ServiceStore, config.ProbeRange); ok {
		peer = &found
	} else {
		log.Println("no peer autodiscovered")
	}

	self := location.Location{Address: cfg.AdvertisedAddr(), Port: port}
	n := node.New(self, peer)
	if err := n.Start(ctx); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	n.Shutdown(shutdownCtx)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"diststore/internal/config"
	"diststore/internal/discovery"
	"diststore/internal/location"
	"diststore/internal/node"
)

const longUsage = `Talks to a storage node at the given peer, or to the first node
autodiscovered on the local host starting from the default port.
Commands are forwarded by the contacted node to the actual owner.`

var hostFlag string

var rootCmd = &cobra.Command{
	Use:          "distctl",
	Short:        "client for a distributed key-value storage network",
	Long:         longUsage,
	SilenceUsage: true,
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "look up a key anywhere on the ring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, client := cmd.Context(), node.NewClient()
		peer, err := resolvePeer(ctx, client)
		if err != nil {
			return err
		}
		value, err := client.Get(ctx, peer, args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var putCmd = &cobra.Command{
	Use:   "put <key> <value>",
	Short: "store a key anywhere on the ring",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, client := cmd.Context(), node.NewClient()
		peer, err := resolvePeer(ctx, client)
		if err != nil {
			return err
		}
		if err := client.Put(ctx, peer, args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("put %s, %s\n", args[0], args[1])
		return nil
	},
}

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "resolve a spread of single-letter keys across the ring",
	Long:  "Sends the keys A through Z for resolution and reports each value or its expected owner.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, client := cmd.Context(), node.NewClient()
		peer, err := resolvePeer(ctx, client)
		if err != nil {
			return err
		}
		for key := 'A'; key <= 'Z'; key++ {
			value, err := client.Get(ctx, peer, string(key))
			if err != nil {
				return err
			}
			if value != "" {
				fmt.Println(value)
				continue
			}
			owner, err := client.GetNode(ctx, peer, string(key))
			if err != nil {
				return err
			}
			fmt.Printf("none received from expected %s\n", owner)
		}
		return nil
	},
}

func resolvePeer(ctx context.Context, client *node.Client) (location.Location, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if hostFlag != "" {
		return location.Parse(hostFlag)
	}
	start := location.Location{Address: "localhost", Port: config.DefaultPort}
	peer, ok := discovery.FindMatchingService(ctx, client, start, node.ServiceStore, config.ProbeRange)
	if !ok {
		return location.Location{}, errors.New("no peer autodiscovered")
	}
	return peer, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "", "address:port of the peer to contact (default: autodiscover)")
	rootCmd.AddCommand(getCmd, putCmd, probeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

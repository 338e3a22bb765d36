package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/routeguided/internal/grpcclient"
	"github.com/inovacc/routeguided/internal/model"
	"github.com/spf13/cobra"
)

var clientAddr string

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Run a RouteGuide demo against a running server",
	Long: `Exercise all four RouteGuide RPCs against a running server:
a unary feature lookup, a server-streamed area query, a client-streamed
route summary and a bidirectional chat exchange.`,
	RunE: runClient,
}

func init() {
	rootCmd.AddCommand(clientCmd)

	clientCmd.Flags().StringVar(&clientAddr, "addr", "", "Server address (default: discover a local server)")
}

func runClient(_ *cobra.Command, _ []string) error {
	addr := clientAddr
	if addr == "" {
		addr = grpcclient.DiscoverServerAddress()
	}

	c, err := grpcclient.New(addr)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	// Unary lookup: one known point, one miss
	known := model.Point{Latitude: 409146138, Longitude: -746188906}

	f, err := c.GetFeature(known)
	if err != nil {
		return err
	}

	printFeature(f)

	f, err = c.GetFeature(model.Point{})
	if err != nil {
		return err
	}

	printFeature(f)

	// Server streaming: all features in one rectangle
	features, err := c.ListFeatures(
		model.Point{Latitude: 400000000, Longitude: -750000000},
		model.Point{Latitude: 420000000, Longitude: -730000000},
	)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Features inside rectangle: %d\n", len(features))

	for _, f := range features {
		printFeature(f)
	}

	// Client streaming: a short route across the known points
	summary, err := c.RecordRoute([]model.Point{
		{Latitude: 409146138, Longitude: -746188906},
		{Latitude: 413628156, Longitude: -749015468},
		{Latitude: 419999544, Longitude: -740371136},
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Route summary: %d points, %d features, %dm in %ds\n",
		summary.GetPointCount(), summary.GetFeatureCount(), summary.GetDistance(), summary.GetElapsedTime())

	// Bidirectional chat: the third note shares the first note's location
	echoed, err := c.RouteChat([]model.RouteNote{
		{Location: model.Point{Latitude: 1, Longitude: 1}, Message: "first"},
		{Location: model.Point{Latitude: 2, Longitude: 2}, Message: "second"},
		{Location: model.Point{Latitude: 1, Longitude: 1}, Message: "third"},
	})
	if err != nil {
		return err
	}

	for _, n := range echoed {
		_, _ = fmt.Fprintf(os.Stdout, "Echoed note %q at (%d, %d)\n", n.Message, n.Location.Latitude, n.Location.Longitude)
	}

	return nil
}

func printFeature(f model.Feature) {
	name := f.Name
	if name == "" {
		name = "(no feature)"
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s at (%d, %d)\n", name, f.Location.Latitude, f.Location.Longitude)
}

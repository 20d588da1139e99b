// Command huskymaps answers route and place-search queries against an
// OpenStreetMap XML extract.
//
//	huskymaps -config huskymaps.yaml route 47.6062,-122.3321 47.6205,-122.3493
//	huskymaps -osm seattle.osm search "Pike"
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/huskymaps/config"
	"github.com/katalvlaran/huskymaps/logging"
	"github.com/katalvlaran/huskymaps/routing"
	"github.com/katalvlaran/huskymaps/searching"
	"github.com/katalvlaran/huskymaps/streetmap"
	"github.com/paulmach/orb"
	"golang.org/x/exp/slog"
)

var errUsage = errors.New("usage: huskymaps [-config file] [-osm file] route LAT,LON LAT,LON | search PREFIX")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("huskymaps", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML configuration file")
	osmPath := fs.String("osm", "", "OSM XML extract (overrides source.osm)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	if *osmPath != "" {
		cfg.Source.OSM = *osmPath
	}
	if cfg.Source.OSM == "" {
		return fmt.Errorf("%w: no OSM source configured", errUsage)
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	logger := logging.New(stderr, level)

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}

	g, err := loadGraph(cfg.Source.OSM, logger)
	if err != nil {
		return err
	}

	switch rest[0] {
	case "route":
		if len(rest) != 3 {
			return errUsage
		}
		return route(g, rest[1], rest[2], append(cfg.RouterOptions(), routing.WithLogger(logger)), stdout)
	case "search":
		if len(rest) != 2 {
			return errUsage
		}
		return search(g, rest[1], stdout)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, rest[0])
	}
}

func loadGraph(path string, logger *slog.Logger) (*streetmap.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := streetmap.LoadOSM(f, streetmap.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("map loaded", slog.String("file", path), slog.Int("nodes", g.Len()), slog.Int("segments", g.EdgeCount()))

	return g, nil
}

func route(g *streetmap.Graph, from, to string, opts []routing.Option, w io.Writer) error {
	start, err := parseLatLon(from)
	if err != nil {
		return err
	}
	end, err := parseLatLon(to)
	if err != nil {
		return err
	}

	r, err := routing.New(g, opts...)
	if err != nil {
		return err
	}
	res, err := r.Route(start, end)
	if err != nil {
		return err
	}
	if err := routing.OutcomeError(res); err != nil {
		return err
	}

	nodes := r.Nodes(res.Path)
	for _, n := range nodes {
		fmt.Fprintf(w, "%d\t%.6f,%.6f\t%s\n", n.ID, n.Lat, n.Lon, n.Name)
	}
	fmt.Fprintf(w, "%d nodes, %.0f m\n", len(nodes), res.Distance)

	return nil
}

func search(g *streetmap.Graph, prefix string, w io.Writer) error {
	s, err := searching.New(g)
	if err != nil {
		return err
	}
	for _, name := range s.LocationsByPrefix(prefix) {
		n := s.Locations(name)[0]
		fmt.Fprintf(w, "%s\t%.6f,%.6f\n", name, n.Lat, n.Lon)
	}
	return nil
}

// parseLatLon reads "lat,lon" into an orb.Point (lon, lat).
func parseLatLon(s string) (orb.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return orb.Point{}, fmt.Errorf("%w: bad coordinate %q", errUsage, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("%w: bad latitude %q", errUsage, parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return orb.Point{}, fmt.Errorf("%w: bad longitude %q", errUsage, parts[1])
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return orb.Point{}, fmt.Errorf("%w: coordinate out of range %q", errUsage, s)
	}
	return orb.Point{lon, lat}, nil
}

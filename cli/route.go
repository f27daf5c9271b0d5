package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"conduit/connector"
	"conduit/core"
	"conduit/pathfinding"
)

// routeOpts holds the command-line flags for the route command.
type routeOpts struct {
	from        string
	to          string
	connType    string
	via         string
	obstacles   []string
	clearance   float64
	turnPenalty float64
}

// newRouteCmd creates the route command, which computes a single connector
// path from flags and prints the flat coordinate list.
func newRouteCmd() *cobra.Command {
	opts := routeOpts{
		connType:    string(core.ConnectorBent),
		clearance:   core.DefaultClearance,
		turnPenalty: core.DefaultTurnPenalty,
	}

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute a single connector path",
		Example: `  conduit route --from 0,0 --to 200,200
  conduit route --from 0,100 --to 200,100 --obstacle 80,50,40,100
  conduit route --from 0,0 --to 200,200 --via 100,300 --type bent`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "start point as x,y (required)")
	cmd.Flags().StringVar(&opts.to, "to", "", "end point as x,y (required)")
	cmd.Flags().StringVar(&opts.connType, "type", opts.connType, "connector type: straight, bent or curved")
	cmd.Flags().StringVar(&opts.via, "via", "", "waypoint the path must pass through, as x,y")
	cmd.Flags().StringArrayVar(&opts.obstacles, "obstacle", nil, "obstacle box as x,y,width,height (repeatable)")
	cmd.Flags().Float64Var(&opts.clearance, "clearance", opts.clearance, "padding kept around obstacles")
	cmd.Flags().Float64Var(&opts.turnPenalty, "turn-penalty", opts.turnPenalty, "extra cost per direction change")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runRoute(cmd *cobra.Command, opts *routeOpts) error {
	logger := loggerFromContext(cmd.Context())

	start, err := parsePoint(opts.from)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	end, err := parsePoint(opts.to)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	req := connector.Request{
		Type:        core.ConnectorType(opts.connType),
		Start:       start,
		End:         end,
		Clearance:   opts.clearance,
		TurnPenalty: opts.turnPenalty,
	}
	switch req.Type {
	case core.ConnectorStraight, core.ConnectorBent, core.ConnectorCurved:
	default:
		return fmt.Errorf("--type: unknown connector type %q", opts.connType)
	}

	if opts.via != "" {
		via, err := parsePoint(opts.via)
		if err != nil {
			return fmt.Errorf("--via: %w", err)
		}
		req.Via = &via
	}
	for _, raw := range opts.obstacles {
		o, err := parseObstacle(raw)
		if err != nil {
			return fmt.Errorf("--obstacle: %w", err)
		}
		req.Obstacles = append(req.Obstacles, o)
	}

	started := time.Now()
	var points []float64
	if req.Type == core.ConnectorBent {
		path := pathfinding.Route(req.Start, req.End, req.Obstacles, core.RouteOptions{
			Clearance:   opts.clearance,
			TurnPenalty: opts.turnPenalty,
			Via:         req.Via,
		})
		points = connector.Flatten(path.Points)
		logger.Debug("routed connector",
			"type", opts.connType,
			"obstacles", len(req.Obstacles),
			"points", len(points)/2,
			"cost", path.Cost,
			"elapsed", time.Since(started).Round(time.Microsecond))
	} else {
		points = connector.RenderPoints(req)
		logger.Debug("routed connector",
			"type", opts.connType,
			"obstacles", len(req.Obstacles),
			"points", len(points)/2,
			"elapsed", time.Since(started).Round(time.Microsecond))
	}

	printRouteSummary(cmd, req, points)
	return nil
}

func printRouteSummary(cmd *cobra.Command, req connector.Request, points []float64) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styleHeading.Render("Route"))
	fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("type:"), styleValue.Render(string(req.Type)))
	fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("points:"), styleValue.Render(strconv.Itoa(len(points)/2)))

	coords := make([]string, 0, len(points))
	for _, v := range points {
		coords = append(coords, strconv.FormatFloat(v, 'g', -1, 64))
	}
	fmt.Fprintf(out, "  %s %s\n", styleLabel.Render("coords:"), strings.Join(coords, ","))
}

// parsePoint parses "x,y" into a point.
func parsePoint(s string) (core.Point, error) {
	vals, err := parseFloats(s, 2)
	if err != nil {
		return core.Point{}, err
	}
	return core.Point{X: vals[0], Y: vals[1]}, nil
}

// parseObstacle parses "x,y,width,height" into an obstacle box.
func parseObstacle(s string) (core.Obstacle, error) {
	vals, err := parseFloats(s, 4)
	if err != nil {
		return core.Obstacle{}, err
	}
	return core.Obstacle{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

func parseFloats(s string, count int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != count {
		return nil, fmt.Errorf("expected %d comma-separated values, got %q", count, s)
	}
	vals := make([]float64, count)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q in %q", part, s)
		}
		vals[i] = v
	}
	return vals, nil
}

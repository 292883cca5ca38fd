package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gopoi/internal/tool"
	"github.com/philipparndt/gopoi/pkg/mesh"
	"github.com/philipparndt/gopoi/pkg/poi"
	"github.com/philipparndt/gopoi/version"
)

// viewOptions are the flags shared by every command that renders a view
type viewOptions struct {
	width      int
	height     int
	rotX       float64
	rotY       float64
	zoom       float64
	labels     string
	axisPolicy string
}

func (o *viewOptions) register(cmd *cobra.Command) {
	def := tool.DefaultConfig()
	flags := cmd.Flags()
	flags.IntVar(&o.width, "width", def.Width, "viewport width in pixels")
	flags.IntVar(&o.height, "height", def.Height, "viewport height in pixels")
	flags.Float64Var(&o.rotX, "rot-x", 0, "camera elevation in degrees")
	flags.Float64Var(&o.rotY, "rot-y", 0, "camera azimuth in degrees")
	flags.Float64Var(&o.zoom, "zoom", 0, "relative camera distance change (-0.5 halves the distance)")
	flags.StringVar(&o.labels, "labels", "", "label list, one expected point name per line")
	flags.StringVar(&o.axisPolicy, "axis-policy", "distance", "measurement axis choice: distance or span")
}

func (o *viewOptions) config() (tool.Config, error) {
	policy, err := poi.ParseAxisPolicy(o.axisPolicy)
	if err != nil {
		return tool.Config{}, err
	}
	if o.width <= 0 || o.height <= 0 {
		return tool.Config{}, fmt.Errorf("invalid viewport %dx%d", o.width, o.height)
	}
	if o.zoom <= -1 {
		return tool.Config{}, fmt.Errorf("zoom must be greater than -1, got %v", o.zoom)
	}

	return tool.Config{
		Width:      o.width,
		Height:     o.height,
		RotX:       o.rotX * math.Pi / 180,
		RotY:       o.rotY * math.Pi / 180,
		Zoom:       o.zoom,
		AxisPolicy: policy,
		LabelPath:  o.labels,
	}, nil
}

// session loads the model and builds a session from the view flags
func (o *viewOptions) session(cmd *cobra.Command, path string) (*tool.Session, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}

	m, err := mesh.Load(cmd.Context(), path)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	if m.IsEmpty() {
		return nil, fmt.Errorf("model %s has no triangles", path)
	}

	return tool.NewSession(m, cfg), nil
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "gopoi",
		Short: "Pick points of interest and measure surface distances on 3D models",
		Long: `gopoi renders STL, glTF and OpenSCAD models into a first-hit-point buffer
and runs the point fitting and surface measuring tools on it, either
interactively (view) or from scripted screen coordinates (pick, measure).`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			poi.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log measurement diagnostics")

	root.AddCommand(
		newRenderCmd(),
		newPickCmd(),
		newMeasureCmd(),
		newLabelsCmd(),
		newInfoCmd(),
		newViewCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package report

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/banshee-data/orientation.report/internal/frames"
)

// viridis-like gradient used for the delta RMSE colour scale.
var surfaceColours = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// RenderErrorSurface writes a standalone HTML page containing the
// interactive delta-RMSE surface over (unwrapped yaw, frame), with the
// unwrapped solution yaw path drawn along the zero plane. pathYaw and
// pathFrames must be aligned.
func RenderErrorSurface(w io.Writer, grid frames.SurfaceGrid, pathYaw []float64, pathFrames []int, title string) error {
	if len(pathYaw) != len(pathFrames) {
		return fmt.Errorf("solution path length mismatch: %d yaw vs %d frames", len(pathYaw), len(pathFrames))
	}

	data := make([]opts.Chart3DData, 0, len(grid.Frames)*len(grid.Yaw))
	maxDelta := 0.0
	for fi, f := range grid.Frames {
		for xi, x := range grid.Yaw {
			z := grid.Z[fi][xi]
			if math.IsNaN(z) {
				// "-" renders as an empty cell
				data = append(data, opts.Chart3DData{Value: []interface{}{x, f, "-"}})
				continue
			}
			if z > maxDelta {
				maxDelta = z
			}
			data = append(data, opts.Chart3DData{Value: []interface{}{x, f, z}})
		}
	}
	if maxDelta == 0 {
		maxDelta = 1
	}

	surface := charts.NewSurface3D()
	surface.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "1200px",
			Height:    "800px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("frames=%d yaw samples=%d", len(grid.Frames), len(grid.Yaw)),
		}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "Yaw (deg, unwrapped)", Type: "value"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Frame Index", Type: "value"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Delta Weighted RMSE", Type: "value"}),
		charts.WithGrid3DOpts(opts.Grid3D{BoxWidth: 100, BoxDepth: 200}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxDelta),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: surfaceColours},
		}),
	)
	surface.AddSeries("delta weighted RMSE", data)

	if len(pathYaw) > 0 {
		pathData := make([]opts.Chart3DData, len(pathYaw))
		for i := range pathYaw {
			pathData[i] = opts.Chart3DData{Value: []interface{}{pathYaw[i], pathFrames[i], 0.0}}
		}
		// Surface3D has no Overlap helper; appending a line3D series to
		// the same cartesian grid draws the path on the surface chart.
		surface.MultiSeries = append(surface.MultiSeries, charts.SingleSeries{
			Name:        "solution yaw path",
			Type:        types.ChartLine3D,
			CoordSystem: "cartesian3D",
			Data:        pathData,
		})
	}

	if err := surface.Render(w); err != nil {
		return fmt.Errorf("render error surface: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"image/color"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type ColorState struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

type CameraSaveState struct {
	TranslationX float64 `yaml:"x"`
	TranslationY float64 `yaml:"y"`
	Zoom         float64 `yaml:"zoom"`
	ZoomSpeed    float64 `yaml:"zoom_speed"`
	MinZoom      float64 `yaml:"min_zoom"`
	MaxZoom      float64 `yaml:"max_zoom"`
}

type AxesSaveState struct {
	Visible     bool   `yaml:"visible"`
	XLabel      string `yaml:"x_label"`
	YLabel      string `yaml:"y_label"`
	ShowNumbers bool   `yaml:"show_numbers"`
	ShowArrows  bool   `yaml:"show_arrows"`
}

type GridSaveState struct {
	Visible   bool    `yaml:"visible"`
	ShowMinor bool    `yaml:"show_minor"`
	Opacity   float64 `yaml:"opacity"`
}

// ObjectState is a flat union of the per-kind fields, discriminated by Kind.
type ObjectState struct {
	ID          string      `yaml:"id"`
	Kind        string      `yaml:"kind"`
	Layer       int         `yaml:"layer"`
	Visible     bool        `yaml:"visible"`
	Stroke      ColorState  `yaml:"stroke"`
	Fill        *ColorState `yaml:"fill,omitempty"`
	StrokeWidth float64     `yaml:"stroke_width"`
	Opacity     float64     `yaml:"opacity"`

	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
	X2     float64 `yaml:"x2,omitempty"`
	Y2     float64 `yaml:"y2,omitempty"`
	W      float64 `yaml:"w,omitempty"`
	H      float64 `yaml:"h,omitempty"`

	Expr      string  `yaml:"expr,omitempty"`
	XExpr     string  `yaml:"x_expr,omitempty"`
	YExpr     string  `yaml:"y_expr,omitempty"`
	DomainMin float64 `yaml:"domain_min,omitempty"`
	DomainMax float64 `yaml:"domain_max,omitempty"`
	Samples   int     `yaml:"samples,omitempty"`
}

type SceneState struct {
	Camera  CameraSaveState `yaml:"camera"`
	Axes    AxesSaveState   `yaml:"axes"`
	Grid    GridSaveState   `yaml:"grid"`
	Objects []ObjectState   `yaml:"objects"`
}

func SaveScene(g *Game, filename string) error {
	state := SceneState{
		Camera: CameraSaveState{
			TranslationX: g.camera.TargetTranslationX,
			TranslationY: g.camera.TargetTranslationY,
			Zoom:         g.camera.TargetZoom,
			ZoomSpeed:    g.camera.ZoomSpeed,
			MinZoom:      g.camera.MinZoom,
			MaxZoom:      g.camera.MaxZoom,
		},
		Axes: AxesSaveState{
			Visible:     g.showAxes,
			XLabel:      g.axes.XLabel,
			YLabel:      g.axes.YLabel,
			ShowNumbers: g.axes.ShowNumbers,
			ShowArrows:  g.axes.ShowArrows,
		},
		Grid: GridSaveState{
			Visible:   g.showGrid,
			ShowMinor: g.grid.ShowMinor,
			Opacity:   g.grid.Opacity,
		},
	}

	for _, obj := range g.scene.Objects() {
		st := ObjectState{
			ID:          obj.ID,
			Layer:       obj.Layer,
			Visible:     obj.Visible,
			Stroke:      toColorState(obj.Style.Stroke),
			StrokeWidth: obj.Style.StrokeWidth,
			Opacity:     obj.Style.Opacity,
		}
		if obj.Style.Fill != nil {
			fill := toColorState(*obj.Style.Fill)
			st.Fill = &fill
		}
		switch sh := obj.Shape.(type) {
		case *Circle:
			st.Kind = "circle"
			st.X, st.Y, st.Radius = sh.X, sh.Y, sh.Radius
		case *Segment:
			st.Kind = "segment"
			st.X, st.Y, st.X2, st.Y2 = sh.X1, sh.Y1, sh.X2, sh.Y2
		case *Rect:
			st.Kind = "rect"
			st.X, st.Y, st.W, st.H = sh.X, sh.Y, sh.W, sh.H
		case *FunctionGraph:
			st.Kind = "function"
			st.Expr = sh.Expr
			st.DomainMin, st.DomainMax = sh.DomainMin, sh.DomainMax
			st.Samples = sh.Samples
		case *ParametricCurve:
			st.Kind = "parametric"
			st.XExpr, st.YExpr = sh.XExpr, sh.YExpr
			st.DomainMin, st.DomainMax = sh.TMin, sh.TMax
			st.Samples = sh.Samples
		default:
			continue
		}
		state.Objects = append(state.Objects, st)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&state); err != nil {
		return err
	}
	return enc.Close()
}

// LoadScene replaces the camera, coordinate models and object list with the
// file contents. Objects that fail to rebuild (bad expression, unknown kind)
// are logged and skipped; the rest of the scene still loads.
func LoadScene(g *Game, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var state SceneState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return err
	}

	cam := NewCamera()
	if state.Camera.ZoomSpeed != 0 {
		cam.ZoomSpeed = state.Camera.ZoomSpeed
	}
	if state.Camera.MinZoom != 0 || state.Camera.MaxZoom != 0 {
		cam.MinZoom = state.Camera.MinZoom
		cam.MaxZoom = state.Camera.MaxZoom
	}
	if err := cam.Validate(); err != nil {
		return fmt.Errorf("load %s: %w", filename, err)
	}
	zoom := clamp(state.Camera.Zoom, cam.MinZoom, cam.MaxZoom)
	if state.Camera.Zoom == 0 {
		zoom = DefaultCameraZoom
	}
	cam.Zoom = zoom
	cam.TargetZoom = zoom
	cam.TranslationX = state.Camera.TranslationX
	cam.TranslationY = state.Camera.TranslationY
	cam.TargetTranslationX = state.Camera.TranslationX
	cam.TargetTranslationY = state.Camera.TranslationY
	// Force the coordinate models to rebuild on the next update.
	cam.PreviousZoom = zoom + 1
	g.camera = cam

	g.showAxes = state.Axes.Visible
	g.axes.XLabel = state.Axes.XLabel
	g.axes.YLabel = state.Axes.YLabel
	g.axes.ShowNumbers = state.Axes.ShowNumbers
	g.axes.ShowArrows = state.Axes.ShowArrows

	g.showGrid = state.Grid.Visible
	g.grid.ShowMinor = state.Grid.ShowMinor
	if state.Grid.Opacity > 0 {
		g.grid.Opacity = state.Grid.Opacity
	}

	g.scene = NewScene()
	for _, st := range state.Objects {
		obj, err := objectFromState(st)
		if err != nil {
			log.Printf("load: dropping object %s: %v", st.ID, err)
			continue
		}
		g.scene.Add(obj)
	}
	g.scene.Flush()
	return nil
}

func objectFromState(st ObjectState) (*MathObject, error) {
	obj := &MathObject{
		ID:      st.ID,
		Visible: st.Visible,
		Layer:   st.Layer,
		Style: Style{
			Stroke:      fromColorState(st.Stroke),
			StrokeWidth: st.StrokeWidth,
			Opacity:     st.Opacity,
		},
	}
	if obj.ID == "" {
		obj.ID = NewID()
	}
	if obj.Style.StrokeWidth == 0 {
		obj.Style.StrokeWidth = DefaultStrokeWidth
	}
	if obj.Style.Opacity == 0 {
		obj.Style.Opacity = 1.0
	}
	if st.Fill != nil {
		fill := fromColorState(*st.Fill)
		obj.Style.Fill = &fill
	}

	switch st.Kind {
	case "circle":
		obj.Shape = &Circle{X: st.X, Y: st.Y, Radius: st.Radius}
	case "segment":
		obj.Shape = &Segment{X1: st.X, Y1: st.Y, X2: st.X2, Y2: st.Y2}
	case "rect":
		obj.Shape = &Rect{X: st.X, Y: st.Y, W: st.W, H: st.H}
	case "function":
		graph := &FunctionGraph{
			Expr:      st.Expr,
			DomainMin: st.DomainMin,
			DomainMax: st.DomainMax,
			Samples:   st.Samples,
		}
		if graph.Samples < 2 {
			graph.Samples = DefaultGraphSamples
		}
		if err := graph.Resample(); err != nil {
			return nil, err
		}
		obj.Shape = graph
	case "parametric":
		curve := &ParametricCurve{
			XExpr:   st.XExpr,
			YExpr:   st.YExpr,
			TMin:    st.DomainMin,
			TMax:    st.DomainMax,
			Samples: st.Samples,
		}
		if curve.Samples < 2 {
			curve.Samples = DefaultGraphSamples
		}
		if err := curve.Resample(); err != nil {
			return nil, err
		}
		obj.Shape = curve
	default:
		return nil, fmt.Errorf("unknown kind %q", st.Kind)
	}
	return obj, nil
}

func toColorState(c color.RGBA) ColorState {
	return ColorState{R: c.R, G: c.G, B: c.B, A: c.A}
}

func fromColorState(cs ColorState) color.RGBA {
	return color.RGBA{cs.R, cs.G, cs.B, cs.A}
}

// Command scopesynth-ui is a software oscilloscope for the synth: it
// plays the shape as audio and draws the same XY samples on screen,
// with phosphor-style persistence and a graticule.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	scopesynth "github.com/cbegin/scopesynth-go"
	"github.com/cbegin/scopesynth-go/internal/midictl"
	"github.com/cbegin/scopesynth-go/internal/settings"
	"github.com/cbegin/scopesynth-go/internal/shape"
	"github.com/cbegin/scopesynth-go/internal/xyring"
)

const (
	windowW = 900
	windowH = 760

	scopeSize   = 640
	scopeMargin = 40

	// Upper bound on retained phosphor points; oldest fade out first.
	maxTracePoints = 60000
)

var (
	backgroundColor = color.RGBA{10, 14, 12, 255}
	graticuleColor  = color.RGBA{30, 60, 40, 255}
	graticuleAxis   = color.RGBA{45, 90, 60, 255}
	statusColor     = color.RGBA{140, 230, 160, 255}
)

var shapeKinds = []string{
	"circle", "square", "triangle", "pentagon", "hexagon", "star", "lissajous",
}

var waveforms = []string{"sine", "triangle", "square", "saw", "reverse-saw", "random"}

type tracePoint struct {
	x, y      float32
	intensity float64
}

type game struct {
	synth    *scopesynth.Synth
	snapshot *xyring.Snapshot
	recent   []xyring.Sample
	fresh    []xyring.Sample

	controller *midictl.Controller

	cfg      settings.Settings
	cfgPath  string
	shapeIdx int
	waveIdx  int

	trace []tracePoint

	status    string
	statusErr bool
}

func newGame(cfg settings.Settings, cfgPath string, controller *midictl.Controller) (*game, error) {
	synth, err := scopesynth.New(cfg.SampleRate, scopesynth.WithBackend(scopesynth.BackendEbiten))
	if err != nil {
		return nil, err
	}
	g := &game{
		synth:      synth,
		snapshot:   xyring.NewSnapshot(8192),
		controller: controller,
		cfg:        cfg,
		cfgPath:    cfgPath,
		status:     "space to play",
	}
	for i, kind := range shapeKinds {
		if kind == cfg.Shape.Kind {
			g.shapeIdx = i
		}
	}
	for i, w := range waveforms {
		if w == cfg.Effects.ScaleLFOWave {
			g.waveIdx = i
		}
	}
	synth.SetFrequency(cfg.Frequency)
	synth.SetVolume(cfg.Volume)
	if err := g.applyConfig(); err != nil {
		return nil, err
	}
	return g, nil
}

// applyConfig rebuilds the shape and effect chain from the settings
// and republishes them to the engine.
func (g *game) applyConfig() error {
	sh, err := scopesynth.BuildShape(g.cfg.Shape)
	if err != nil {
		return err
	}
	chain, err := scopesynth.BuildEffects(g.cfg.Effects)
	if err != nil {
		return err
	}
	g.synth.SetShape(sh)
	g.synth.SetEffects(chain)
	return nil
}

func (g *game) Update() error {
	g.handleKeys()
	if g.controller != nil {
		g.pollMIDI()
	}
	if err := g.synth.Err(); err != nil {
		g.setError(err.Error())
	}

	// Fade previously drawn points, then add only this frame's new
	// samples so each point enters the phosphor exactly once.
	g.decayTrace()
	drained := g.snapshot.Drain(g.synth.Ring())
	if n := drained; n > 0 {
		if n > 4096 {
			n = 4096
		}
		g.fresh = g.snapshot.Recent(g.fresh[:0], n)
		for _, s := range g.fresh {
			g.trace = append(g.trace, tracePoint{x: s.X, y: s.Y, intensity: g.cfg.Display.Intensity})
		}
	}
	if len(g.trace) > maxTracePoints {
		g.trace = append(g.trace[:0], g.trace[len(g.trace)-maxTracePoints:]...)
	}
	// The beam polyline always shows the newest window.
	g.recent = g.snapshot.Recent(g.recent[:0], 2048)
	return nil
}

func (g *game) decayTrace() {
	keep := g.trace[:0]
	for _, p := range g.trace {
		p.intensity *= g.cfg.Display.Persistence
		if p.intensity < 0.02 {
			continue
		}
		keep = append(keep, p)
	}
	g.trace = keep
}

func (g *game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.togglePlayback()
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.cfg.Display.Graticule = !g.cfg.Display.Graticule
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if g.cfg.Effects.RotationSpeed == 0 {
			g.cfg.Effects.RotationSpeed = 0.5
		} else {
			g.cfg.Effects.RotationSpeed = 0
		}
		g.reapply()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.cfg.Effects.ScaleLFO = !g.cfg.Effects.ScaleLFO
		g.reapply()
	case inpututil.IsKeyJustPressed(ebiten.KeyW):
		g.waveIdx = (g.waveIdx + 1) % len(waveforms)
		g.cfg.Effects.ScaleLFOWave = waveforms[g.waveIdx]
		g.reapply()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.saveSettings()
	}

	for i := 0; i < len(shapeKinds) && i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key(int(ebiten.KeyDigit1) + i)) {
			g.shapeIdx = i
			g.cfg.Shape.Kind = shapeKinds[i]
			g.reapply()
		}
	}
	// 0 selects a composite scene rather than a primitive.
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit0) {
		g.applyDemoScene()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.adjustFrequency(1.05)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.adjustFrequency(1 / 1.05)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.adjustVolume(0.05)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.adjustVolume(-0.05)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.cfg.Display.Zoom = math.Min(g.cfg.Display.Zoom*1.25, 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.cfg.Display.Zoom = math.Max(g.cfg.Display.Zoom/1.25, 0.25)
	}
}

func (g *game) togglePlayback() {
	if g.synth.Playing() {
		if err := g.synth.Stop(); err != nil {
			g.setError(err.Error())
			return
		}
		g.status = "stopped"
		return
	}
	if err := g.synth.Start(); err != nil {
		g.setError(err.Error())
		return
	}
	g.status = "playing"
	g.statusErr = false
}

func (g *game) reapply() {
	if err := g.applyConfig(); err != nil {
		g.setError(err.Error())
		return
	}
	g.statusErr = false
}

// applyDemoScene traces three weighted shapes in sequence: the circle
// gets half the beam time, the square and triangle a quarter each.
func (g *game) applyDemoScene() {
	scene := shape.NewScene("demo")
	if err := scene.AddWeighted(shape.NewCircle(0.4), 2); err != nil {
		g.setError(err.Error())
		return
	}
	scene.Add(shape.Square(0.7))
	if tri, err := shape.Regular(3, 0.4); err == nil {
		scene.Add(tri)
	}
	chain, err := scopesynth.BuildEffects(g.cfg.Effects)
	if err != nil {
		g.setError(err.Error())
		return
	}
	g.synth.SetShape(scene)
	g.synth.SetEffects(chain)
	g.status = "scene: circle/square/triangle (2:1:1)"
	g.statusErr = false
}

func (g *game) adjustFrequency(factor float64) {
	hz := g.synth.Frequency() * factor
	if hz < 1 {
		hz = 1
	}
	if hz > 2000 {
		hz = 2000
	}
	g.synth.SetFrequency(hz)
	g.cfg.Frequency = hz
}

func (g *game) adjustVolume(delta float64) {
	v := math.Max(0, math.Min(1, g.synth.Volume()+delta))
	g.synth.SetVolume(v)
	g.cfg.Volume = v
}

func (g *game) saveSettings() {
	if g.cfgPath == "" {
		g.setError("no settings path")
		return
	}
	if err := settings.Save(g.cfgPath, g.cfg); err != nil {
		g.setError(err.Error())
		return
	}
	g.status = "settings saved"
	g.statusErr = false
}

func (g *game) pollMIDI() {
	updates, err := g.controller.Poll()
	if err != nil {
		g.setError(err.Error())
		return
	}
	for _, u := range updates {
		switch u.Param {
		case midictl.Frequency:
			g.synth.SetFrequency(u.Value)
			g.cfg.Frequency = u.Value
		case midictl.Volume:
			g.synth.SetVolume(u.Value)
			g.cfg.Volume = u.Value
		case midictl.RotationSpeed:
			g.cfg.Effects.RotationSpeed = u.Value
			g.reapply()
		case midictl.ScaleLFOFreq:
			g.cfg.Effects.ScaleLFOFreq = u.Value
			g.reapply()
		case midictl.ScaleLFOMin:
			g.cfg.Effects.ScaleLFOMin = u.Value
			g.reapply()
		case midictl.ScaleLFOMax:
			g.cfg.Effects.ScaleLFOMax = u.Value
			g.reapply()
		case midictl.Intensity:
			g.cfg.Display.Intensity = u.Value
		case midictl.Persistence:
			g.cfg.Display.Persistence = u.Value
		case midictl.Zoom:
			g.cfg.Display.Zoom = u.Value
		}
	}
}

func (g *game) setError(msg string) {
	g.status = msg
	g.statusErr = true
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if g.cfg.Display.Graticule {
		g.drawGraticule(screen)
	}
	g.drawTrace(screen)
	g.drawStatus(screen)
}

// toScreen maps scope coordinates [-1,1] to pixels, honoring zoom.
func (g *game) toScreen(x, y float32) (float64, float64) {
	half := float64(scopeSize) / 2
	cx := float64(scopeMargin) + half
	cy := float64(scopeMargin) + half
	scale := half * g.cfg.Display.Zoom
	return cx + float64(x)*scale, cy - float64(y)*scale
}

func (g *game) drawGraticule(screen *ebiten.Image) {
	left := float64(scopeMargin)
	top := float64(scopeMargin)
	size := float64(scopeSize)

	// 10x10 division grid, brighter center axes.
	for i := 0; i <= 10; i++ {
		offset := size * float64(i) / 10
		col := graticuleColor
		if i == 5 {
			col = graticuleAxis
		}
		ebitenutil.DrawLine(screen, left+offset, top, left+offset, top+size, col)
		ebitenutil.DrawLine(screen, left, top+offset, left+size, top+offset, col)
	}
}

func (g *game) drawTrace(screen *ebiten.Image) {
	// Phosphor afterglow: older points dim toward the background.
	for _, p := range g.trace {
		px, py := g.toScreen(p.x, p.y)
		a := p.intensity
		col := color.RGBA{
			R: uint8(40 * a),
			G: uint8(255 * a),
			B: uint8(90 * a),
			A: 255,
		}
		ebitenutil.DrawRect(screen, px-1, py-1, 2, 2, col)
	}

	// The newest samples as a connected beam. A long jump means the
	// beam moved between scene segments; don't draw the retrace.
	if len(g.recent) < 2 {
		return
	}
	beam := color.RGBA{120, 255, 160, 255}
	px, py := g.toScreen(g.recent[0].X, g.recent[0].Y)
	for _, s := range g.recent[1:] {
		x, y := g.toScreen(s.X, s.Y)
		if math.Hypot(x-px, y-py) < float64(scopeSize)/4 {
			ebitenutil.DrawLine(screen, px, py, x, y, beam)
		}
		px, py = x, y
	}
}

func (g *game) drawStatus(screen *ebiten.Image) {
	y := scopeMargin + scopeSize + 16
	state := "stopped"
	if g.synth.Playing() {
		state = "playing"
	}
	dropped := g.synth.Ring().Dropped()
	line1 := fmt.Sprintf("%s  |  %s  %.1f Hz  vol %.2f  zoom %.2fx  dropped %d",
		state, g.cfg.Shape.Kind, g.synth.Frequency(), g.synth.Volume(), g.cfg.Display.Zoom, dropped)
	line2 := fmt.Sprintf("rotate %.2f rad/s  pulse %v (%s %.2f Hz)",
		g.cfg.Effects.RotationSpeed, g.cfg.Effects.ScaleLFO, g.cfg.Effects.ScaleLFOWave, g.cfg.Effects.ScaleLFOFreq)
	help := "space play/stop  1-7 shapes  0 scene  arrows freq/vol  r rotate  l pulse  w wave  g grid  -/= zoom  s save"

	g.drawText(screen, line1, scopeMargin, y)
	g.drawText(screen, line2, scopeMargin, y+18)
	g.drawText(screen, help, scopeMargin, y+36)
	g.drawText(screen, g.status, scopeMargin, y+60)
}

func (g *game) drawText(screen *ebiten.Image, msg string, x, y int) {
	col := statusColor
	if g.statusErr && msg == g.status {
		col = color.RGBA{240, 90, 90, 255}
	}
	// text.Draw takes the baseline, not the top of the line.
	text.Draw(screen, msg, basicfont.Face7x13, x, y+11, col)
}

func (g *game) Layout(outsideW, outsideH int) (int, int) {
	return windowW, windowH
}

func main() {
	var (
		cfgPath = flag.String("settings", "", "settings file (default: per-user config dir)")
		midiDev = flag.Int("midi", -2, "MIDI input device ID (-1 = system default, -2 = off)")
	)
	flag.Parse()

	path := *cfgPath
	if path == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			log.Fatal(err)
		}
		path = p
	}
	cfg, err := settings.Load(path)
	if err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}

	var controller *midictl.Controller
	if *midiDev >= -1 {
		mappings := make([]midictl.Mapping, 0, len(cfg.MIDI))
		for _, m := range cfg.MIDI {
			param, err := midictl.ParamByName(m.Param)
			if err != nil {
				log.Fatal(err)
			}
			mappings = append(mappings, midictl.Mapping{CC: m.CC, Param: param})
		}
		controller, err = midictl.Open(*midiDev, mappings)
		if err != nil {
			log.Fatal(err)
		}
		defer controller.Close()
	}

	g, err := newGame(cfg, path, controller)
	if err != nil {
		log.Fatal(err)
	}
	defer g.synth.Stop()

	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle("scopesynth")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

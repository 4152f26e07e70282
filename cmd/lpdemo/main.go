package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver

	"github.com/gridmidi/launchpad"
	"github.com/gridmidi/launchpad/internal/config"
	"github.com/gridmidi/launchpad/palette"
	"github.com/gridmidi/launchpad/protocol"
)

func main() {
	var (
		list        = flag.Bool("list", false, "list MIDI ports and exit")
		profileName = flag.String("profile", "", "connect using the named profile from the config file")
		configPath  = flag.String("config", "", "path to config.json (defaults to the user config dir)")
		mk1         = flag.Bool("mk1", false, "run the first-generation demo")
		text        = flag.String("text", "Hello Launchpad", "text for the MK2 scroll demo")
		debug       = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	defer launchpad.CloseDriver()

	if *list {
		for _, name := range launchpad.ListInputs() {
			log.Info().Str("port", name).Msg("input")
		}
		for _, name := range launchpad.ListOutputs() {
			log.Info().Str("port", name).Msg("output")
		}
		return
	}

	// ---- Profile selection ----
	cfg := loadConfig(*configPath)
	profile := selectProfile(cfg, *profileName, *mk1)
	if profile == nil {
		log.Fatal().Str("profile", *profileName).Msg("no usable profile")
	}
	log.Info().
		Str("profile", profile.Name).
		Str("match", profile.Match).
		Str("generation", string(profile.Generation)).
		Msg("connecting")

	switch profile.Generation {
	case config.GenerationMk1:
		runMk1Demo(profile.Match)
	case config.GenerationMk2:
		runMk2Demo(profile.Match, *text)
	default:
		log.Fatal().Str("generation", string(profile.Generation)).Msg("unknown generation")
	}
}

func loadConfig(path string) *config.Config {
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Warn().Err(err).Msg("config load failed; proceeding with defaults")
		cfg = config.Default()
	}
	return cfg
}

// selectProfile picks the profile to connect with: by name if given, by
// generation if -mk1 is set, otherwise the configured default.
func selectProfile(cfg *config.Config, name string, mk1 bool) *config.Profile {
	if name != "" {
		return cfg.FindProfile(name)
	}
	if mk1 {
		for i := range cfg.Profiles {
			if cfg.Profiles[i].Generation == config.GenerationMk1 {
				return &cfg.Profiles[i]
			}
		}
		return nil
	}
	return cfg.DefaultProfile()
}

// zlog adapts the global zerolog logger to the launchpad.Logger interface.
type zlog struct{}

func (zlog) Debug(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg(msg)
}

func (zlog) Info(msg string, keysAndValues ...interface{}) {
	log.Info().Fields(keysAndValues).Msg(msg)
}

func (zlog) Error(msg string, keysAndValues ...interface{}) {
	log.Error().Fields(keysAndValues).Msg(msg)
}

// runMk1Demo walks the first-generation surface: the flood brightness
// levels, a rolling sweep of every red/green level pair, a whole-surface
// color cycle, a fuzzy RGB checkerboard and a top row sweep.
func runMk1Demo(match string) {
	in, out, err := launchpad.FindPorts(match)
	if err != nil {
		log.Fatal().Err(err).Msg("device not found")
	}
	pad, err := launchpad.ConnectMk1(in, out, launchpad.WithLogger(zlog{}))
	if err != nil {
		log.Fatal().Err(err).Msg("connect failed")
	}
	defer pad.Close()
	log.Info().Str("ports", pad.String()).Msg("connected")

	if err := pad.Reset(); err != nil {
		log.Fatal().Err(err).Msg("reset failed")
	}

	for _, level := range []protocol.Brightness{
		protocol.BrightnessLow,
		protocol.BrightnessMedium,
		protocol.BrightnessHigh,
	} {
		if err := pad.LightAll(level); err != nil {
			log.Error().Err(err).Msg("flood failed")
		}
		time.Sleep(400 * time.Millisecond)
	}
	_ = pad.Reset()

	grid := make([]byte, 64)
	top := make([]byte, 8)
	right := make([]byte, 8)

	// Roll all sixteen red/green level pairs across the surface
	ramp := make([]byte, 0, 16)
	for g := byte(0); g < 4; g++ {
		for r := byte(0); r < 4; r++ {
			data, _ := protocol.Mk1LedData(r, g, false, true)
			ramp = append(ramp, data)
		}
	}
	for step := 0; step < 32; step++ {
		for i := range grid {
			grid[i] = ramp[(i+step)%len(ramp)]
		}
		for i := range top {
			top[i] = ramp[(i+step)%len(ramp)]
			right[i] = ramp[(i+step+4)%len(ramp)]
		}
		if err := pad.LightGrid(grid, top, right); err != nil {
			log.Error().Err(err).Msg("palette sweep failed")
		}
		time.Sleep(40 * time.Millisecond)
	}

	// Flood the surface red, through amber to green and back down
	cycle := [][2]byte{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {3, 2},
		{3, 3}, {2, 3}, {1, 3}, {0, 3}, {0, 2}, {0, 1},
	}
	for _, rg := range cycle {
		data, _ := protocol.Mk1LedData(rg[0], rg[1], false, true)
		for i := range grid {
			grid[i] = data
		}
		for i := range top {
			top[i] = data
			right[i] = data
		}
		if err := pad.LightGrid(grid, top, right); err != nil {
			log.Error().Err(err).Msg("color cycle failed")
		}
		time.Sleep(250 * time.Millisecond)
	}

	// Checkerboard of red and green, written to both buffers
	red := protocol.Mk1FuzzyData(255, 0, 0, false, true)
	green := protocol.Mk1FuzzyData(0, 255, 0, false, true)
	for i := range grid {
		grid[i] = red
		if (i/8+i%8)%2 == 0 {
			grid[i] = green
		}
	}
	for i := range top {
		top[i] = 0
		right[i] = 0
	}
	if err := pad.LightGrid(grid, top, right); err != nil {
		log.Error().Err(err).Msg("grid update failed")
	}
	time.Sleep(1200 * time.Millisecond)

	amber, _ := protocol.Mk1LedData(3, 3, false, true)
	for col := byte(0); col < 8; col++ {
		if err := pad.LightTop(col, amber); err != nil {
			log.Error().Err(err).Msg("top row sweep failed")
		}
		time.Sleep(120 * time.Millisecond)
	}
	time.Sleep(400 * time.Millisecond)

	_ = pad.Reset()
	log.Info().Msg("done")
}

// mustPos unwraps a position builder result, exiting on a bad coordinate.
func mustPos(pos byte, err error) byte {
	if err != nil {
		log.Fatal().Err(err).Msg("bad position")
	}
	return pos
}

// runMk2Demo sweeps the columns, clears by rows, floods the panel, draws
// an RGB fade, lights the diagonals and control strips, scrolls the text
// and then echoes presses until interrupted.
func runMk2Demo(match, text string) {
	in, out, err := launchpad.FindPorts(match)
	if err != nil {
		log.Fatal().Err(err).Msg("device not found")
	}
	pad, err := launchpad.ConnectMk2(in, out, launchpad.WithLogger(zlog{}))
	if err != nil {
		log.Fatal().Err(err).Msg("connect failed")
	}
	defer pad.Close()
	log.Info().Str("ports", pad.String()).Msg("connected")

	for col := byte(0); col <= 8; col++ {
		if err := pad.LightColumn(protocol.ColorColumn{Column: col, Color: palette.Blue}); err != nil {
			log.Error().Err(err).Msg("column sweep failed")
		}
		time.Sleep(80 * time.Millisecond)
	}

	for row := byte(0); row <= 8; row++ {
		if err := pad.LightRow(protocol.ColorRow{Row: row, Color: palette.Off}); err != nil {
			log.Error().Err(err).Msg("row clear failed")
		}
		time.Sleep(80 * time.Millisecond)
	}

	for _, color := range []byte{palette.Green, palette.Pink, palette.Yellow} {
		if err := pad.LightAll(color); err != nil {
			log.Error().Err(err).Msg("flood failed")
		}
		time.Sleep(700 * time.Millisecond)
	}

	// Fade the grid from red to blue, corner to corner
	leds := make([]protocol.RGBLed, 0, 64)
	for row := byte(1); row <= 8; row++ {
		for col := byte(1); col <= 8; col++ {
			mix := (row - 1) + (col - 1)
			leds = append(leds, protocol.RGBLed{
				Position: mustPos(protocol.GridPos(row, col)),
				Red:      63 - mix*4,
				Green:    0,
				Blue:     mix * 4,
			})
		}
	}
	if err := pad.LightRGBLEDs(leds); err != nil {
		log.Error().Err(err).Msg("rgb fade failed")
	}
	time.Sleep(1500 * time.Millisecond)

	// Both diagonals, then the right and top control strips
	var down, up, strip []protocol.ColorLed
	for i := byte(1); i <= 8; i++ {
		down = append(down, protocol.ColorLed{
			Position: mustPos(protocol.GridPos(i, i)),
			Color:    palette.Cyan,
		})
		up = append(up, protocol.ColorLed{
			Position: mustPos(protocol.GridPos(9-i, i)),
			Color:    palette.Red,
		})
		strip = append(strip, protocol.ColorLed{
			Position: mustPos(protocol.GridPos(i, 9)),
			Color:    palette.White,
		})
	}
	for col := byte(0); col < 8; col++ {
		strip = append(strip, protocol.ColorLed{
			Position: mustPos(protocol.TopPos(col)),
			Color:    palette.Orange,
		})
	}
	for _, batch := range [][]protocol.ColorLed{down, up, strip} {
		if err := pad.LightLEDs(batch); err != nil {
			log.Error().Err(err).Msg("batch failed")
		}
		time.Sleep(500 * time.Millisecond)
	}

	if err := pad.LightAll(palette.Off); err != nil {
		log.Error().Err(err).Msg("blank failed")
	}
	if err := pad.ScrollText(palette.Green, false, protocol.ScrollSlow+text); err != nil {
		log.Error().Err(err).Msg("scroll failed")
	}

	// ---- Echo presses until interrupted ----
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	log.Info().Msg("echoing pad presses, ctrl-c to quit")
	for {
		select {
		case s := <-sig:
			log.Info().Str("signal", s.String()).Msg("shutting down")
			_ = pad.LightAll(palette.Off)
			return
		case <-ticker.C:
			for _, ev := range pad.Poll() {
				led := protocol.ColorLed{Position: ev.Position(), Color: palette.Green}
				if ev.IsTopRow() {
					led.Color = palette.Orange
				}
				var err error
				switch {
				case !ev.Down():
					led.Color = palette.Off
					err = pad.LightLED(led)
				case ev.IsPad():
					err = pad.PulseSingle(led)
				default:
					err = pad.FlashSingle(led)
				}
				if err != nil {
					log.Error().Err(err).Uint8("position", ev.Position()).Msg("echo failed")
				}
			}
		}
	}
}

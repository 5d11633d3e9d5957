package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	goruntime "runtime"

	"github.com/madellimac/hulotte/internal/runtime"
)

// player is a command line audio player; the wav path is appended to Args.
type player struct {
	Name string
	Args []string
}

var (
	darwinPlayers = []player{{Name: "afplay"}}
	linuxPlayers  = []player{
		{Name: "paplay"},
		{Name: "aplay", Args: []string{"-q"}},
		{Name: "play", Args: []string{"-q"}},
	}
)

// Owl prints the banner and hoots through the first audio player found.
// WAV, when set, is played instead of the synthesized Preset.
type Owl struct {
	Out      io.Writer
	Runner   runtime.Runner
	LookPath func(string) (string, error)
	Preset   string
	WAV      string
	GOOS     string
}

// NewOwl returns an Owl writing to out and running players silently.
func NewOwl(out io.Writer, preset, wav string) *Owl {
	return &Owl{
		Out:    out,
		Runner: &runtime.ExecRunner{Stdout: io.Discard, Stderr: io.Discard},
		Preset: preset,
		WAV:    wav,
	}
}

func (o *Owl) Art(w io.Writer) { printArt(w) }

// Hoot plays the sound and returns once the player exits.
func (o *Owl) Hoot(ctx context.Context) {
	if err := o.play(ctx); err != nil {
		fmt.Fprint(o.Out, "\a")
	}
}

func (o *Owl) play(ctx context.Context) error {
	p, err := o.player()
	if err != nil {
		return err
	}

	wav := o.WAV
	if wav == "" {
		path, cleanup, err := o.synthesize()
		if err != nil {
			return err
		}
		defer cleanup()
		wav = path
	}

	cmd := runtime.Command{Name: p.Name, Args: append(append([]string{}, p.Args...), wav)}
	out, err := o.Runner.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if !out.Success() {
		return fmt.Errorf("%s exited with %d", p.Name, out.ExitCode)
	}
	return nil
}

func (o *Owl) player() (player, error) {
	lookPath := o.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	goos := o.GOOS
	if goos == "" {
		goos = goruntime.GOOS
	}

	candidates := linuxPlayers
	if goos == "darwin" {
		candidates = darwinPlayers
	}
	for _, p := range candidates {
		if _, err := lookPath(p.Name); err == nil {
			return p, nil
		}
	}
	return player{}, fmt.Errorf("no audio player found")
}

// synthesize writes the preset hoot to a temporary file.
func (o *Owl) synthesize() (string, func(), error) {
	name := o.Preset
	if _, ok := presets[name]; !ok {
		name = DefaultPreset
	}
	data, err := HootWAV(name)
	if err != nil {
		return "", nil, err
	}

	f, err := os.CreateTemp("", "hulotte-*.wav")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { os.Remove(f.Name()) }
	if _, err := f.Write(data); err != nil {
		f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return f.Name(), cleanup, nil
}

// Command otoplay is a tiny demo host for the engine package: it
// builds an Engine, gates a few notes from a Markov melody generator
// onto one track, and streams the mixed output to the default audio
// device via oto (or nowhere, in a headless build), mirroring the
// teacher's own cmd/ie32to64 convention of a thin binary over the core
// library.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	engine "github.com/mitchlabeetch/Intuitive-Music"
)

func main() {
	sampleRate := flag.Int("rate", 48000, "sample rate in Hz")
	blockSize := flag.Int("block", 512, "block size in frames")
	seconds := flag.Int("seconds", 8, "seconds to play before exiting")
	seed := flag.Uint64("seed", 42, "generator RNG seed")
	flag.Parse()

	eng, err := engine.NewEngine(float32(*sampleRate), *blockSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "otoplay: %v\n", err)
		os.Exit(1)
	}

	trackIdx, err := eng.AddTrack("lead", uint32(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "otoplay: %v\n", err)
		os.Exit(1)
	}
	track := eng.Track(trackIdx)

	eng.Transport().SetTempo(120)
	eng.Transport().Play()

	player, err := NewPlayer(*sampleRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "otoplay: %v\n", err)
		os.Exit(1)
	}
	defer player.Close()

	player.SetEngine(eng)
	player.Start()

	melody := engine.NewMarkovMelody(uint32(*seed))
	stepInterval := 250 * time.Millisecond

	deadline := time.Now().Add(time.Duration(*seconds) * time.Second)
	lastNote := -1
	for time.Now().Before(deadline) {
		if lastNote >= 0 {
			track.NoteOff(lastNote)
		}
		note := melody.Next()
		if note != engine.NoteRest {
			track.NoteOn(note, 0.8)
			lastNote = note
		} else {
			lastNote = -1
		}
		time.Sleep(stepInterval)
	}
	if lastNote >= 0 {
		track.NoteOff(lastNote)
	}
	time.Sleep(200 * time.Millisecond)
}

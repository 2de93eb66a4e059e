package main

import (
	"io"
	"math"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	sampleRate = 11025
	bitDepth   = 16
	amplitude  = 0.3
	fade       = 20 * time.Millisecond
	wavPCM     = 1
)

// Tone is a pure sine written as one bundled track.
type Tone struct {
	File   string
	Freq   float64
	Length time.Duration
}

var tones = []Tone{
	{File: "audio1.wav", Freq: 440, Length: 4 * time.Second},
	{File: "audio2.wav", Freq: 523.25, Length: 5 * time.Second},
	{File: "audio3.wav", Freq: 659.25, Length: 6 * time.Second},
}

// Samples renders the tone as 16-bit mono PCM with a linear fade at
// both ends so playback starts and stops without a click.
func (t Tone) Samples() []int {
	n := int(t.Length.Seconds() * sampleRate)
	ramp := int(fade.Seconds() * sampleRate)
	peak := amplitude * math.MaxInt16

	data := make([]int, n)
	for i := range data {
		gain := 1.0
		if i < ramp {
			gain = float64(i) / float64(ramp)
		} else if tail := n - 1 - i; tail < ramp {
			gain = float64(tail) / float64(ramp)
		}
		v := math.Sin(2 * math.Pi * t.Freq * float64(i) / sampleRate)
		data[i] = int(math.Round(v * gain * peak))
	}
	return data
}

// Write encodes the tone as a WAV file.
func (t Tone) Write(w io.WriteSeeker) error {
	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, wavPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           t.Samples(),
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"

	"github.com/colugomusic/audiorw/audio"
	"github.com/colugomusic/audiorw/formats/vorbis"
)

// Example demonstrates decoding an Ogg Vorbis file.
func Example() {
	in, err := audio.OpenFile("testdata/sample.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	dec, err := vorbis.Open(in)
	if err != nil {
		log.Fatal(err)
	}
	defer dec.Close()

	h := dec.Header()
	fmt.Printf("Sample Rate: %d Hz\n", h.SampleRate)
	fmt.Printf("Channels: %d\n", h.ChannelCount)
	fmt.Printf("Frames: %d\n", h.FrameCount)

	buf := make([]float32, 4096)
	n, _ := dec.ReadFrames(buf)
	fmt.Printf("Read %d frames\n", n)
}

// ExampleOpen_errorHandling shows how a failed probe surfaces.
func ExampleOpen_errorHandling() {
	_, err := vorbis.Open(audio.NewBytesReader([]byte("not an ogg container")))
	if err != nil {
		fmt.Println("open failed: input is not Ogg Vorbis")
		return
	}

	fmt.Println("Ogg Vorbis stream opened")
	// Output:
	// open failed: input is not Ogg Vorbis
}

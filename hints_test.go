// SPDX-License-Identifier: EPL-2.0

package audiorw

import (
	"slices"
	"testing"

	"github.com/colugomusic/audiorw/audio"
)

func TestHintForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		tryAll bool
		want   audio.FormatHint
		ok     bool
	}{
		{"song.flac", false, audio.Only(audio.FormatFLAC), true},
		{"song.mp3", false, audio.Only(audio.FormatMP3), true},
		{"song.ogg", false, audio.Only(audio.FormatOggVorbis), true},
		{"song.wav", false, audio.Only(audio.FormatWAV), true},
		{"song.flac", true, audio.First(audio.FormatFLAC), true},
		{"SONG.WAV", true, audio.First(audio.FormatWAV), true},
		{"/some/dir/take.03.Mp3", false, audio.Only(audio.FormatMP3), true},
		{"song.txt", false, audio.FormatHint{}, false},
		{"song.txt", true, audio.FormatHint{}, false},
		{"song", true, audio.FormatHint{}, false},
		{"", false, audio.FormatHint{}, false},
	}

	for _, tt := range tests {
		got, ok := HintForPath(tt.path, tt.tryAll)
		if ok != tt.ok || got != tt.want {
			t.Errorf("HintForPath(%q, %v) = %+v, %v, want %+v, %v",
				tt.path, tt.tryAll, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKnownFileExtensions(t *testing.T) {
	t.Parallel()

	want := []string{".flac", ".mp3", ".ogg", ".wav"}

	if got := KnownFileExtensions(); !slices.Equal(got, want) {
		t.Errorf("KnownFileExtensions() = %v, want %v", got, want)
	}
}

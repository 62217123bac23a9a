// SPDX-License-Identifier: EPL-2.0

package audiorw

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/colugomusic/audiorw/audio"
)

// knownExtensions maps lower-case file extensions to formats. The table is
// fixed; there is no registration.
var knownExtensions = map[string]audio.Format{
	".flac": audio.FormatFLAC,
	".mp3":  audio.FormatMP3,
	".ogg":  audio.FormatOggVorbis,
	".wav":  audio.FormatWAV,
}

// HintForPath derives a format hint from path's file extension, compared
// case-insensitively. tryAll selects the resolution strategy: true hints
// the extension's format first with fallback to the others, false hints it
// exclusively. Unknown or missing extensions yield no hint.
func HintForPath(path string, tryAll bool) (audio.FormatHint, bool) {
	f, ok := knownExtensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return audio.FormatHint{}, false
	}

	if tryAll {
		return audio.First(f), true
	}

	return audio.Only(f), true
}

// KnownFileExtensions returns the extensions HintForPath recognizes,
// sorted, each with its leading dot.
func KnownFileExtensions() []string {
	out := make([]string, 0, len(knownExtensions))
	for ext := range knownExtensions {
		out = append(out, ext)
	}

	slices.Sort(out)

	return out
}

package termimage

import (
	"encoding/base64"
	"fmt"

	"rice/logo"
)

func (e *Encoder) encodeITerm(path string) (logo.Artifact, error) {
	data, _, err := e.read(path)
	if err != nil {
		return logo.Artifact{}, err
	}

	seq := ITermSequence(data, ProtocolCols, ProtocolRows)
	if inTmux(e.env) {
		seq = tmuxPassthrough(seq)
	}
	return logo.ProtocolBlob([]byte(seq), ProtocolCols, ProtocolRows), nil
}

// ITermSequence returns the iTerm2 inline image command for data, sized in
// character cells with the aspect ratio preserved.
func ITermSequence(data []byte, cols, rows int) string {
	return fmt.Sprintf("\x1b]1337;File=width=%d;height=%d;inline=1;preserveAspectRatio=1:%s\a",
		cols, rows, base64.StdEncoding.EncodeToString(data))
}

package termimage

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	"rice/logo"
)

// kittyChunkSize is the largest base64 payload kitty accepts per command.
const kittyChunkSize = 4096

func (e *Encoder) encodeKitty(path string) (logo.Artifact, error) {
	data, format, err := e.read(path)
	if err != nil {
		return logo.Artifact{}, err
	}

	// f=100 tells kitty the payload is PNG.
	if format != "png" {
		if data, err = toPNG(data); err != nil {
			return logo.Artifact{}, fmt.Errorf("%w: %s: %w", logo.ErrImageFormatUnsupported, path, err)
		}
	}

	chunks := KittyChunks(data, ProtocolCols, ProtocolRows)
	if inTmux(e.env) {
		for i, c := range chunks {
			chunks[i] = tmuxPassthrough(c)
		}
	}
	return logo.ProtocolBlob([]byte(strings.Join(chunks, "")), ProtocolCols, ProtocolRows), nil
}

// KittyChunks returns the kitty graphics commands transmitting and displaying
// PNG data at cols x rows cells. The base64 payload is split over as many
// commands as needed; every command but the last carries m=1.
func KittyChunks(pngData []byte, cols, rows int) []string {
	payload := base64.StdEncoding.EncodeToString(pngData)

	var out []string
	for first := true; first || payload != ""; first = false {
		n := min(len(payload), kittyChunkSize)
		chunk := payload[:n]
		payload = payload[n:]

		more := 0
		if payload != "" {
			more = 1
		}

		var ctrl string
		if first {
			ctrl = fmt.Sprintf("a=T,f=100,t=d,q=2,S=%d,c=%d,r=%d,m=%d", len(pngData), cols, rows, more)
		} else {
			ctrl = fmt.Sprintf("m=%d", more)
		}
		out = append(out, "\x1b_G"+ctrl+";"+chunk+"\x1b\\")
	}
	return out
}

func toPNG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

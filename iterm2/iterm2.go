// Package iterm2 displays canvases inline in terminals that implement the
// iTerm2 inline image protocol.
//
// The canvas is sent as a binary PPM (P6) picture, base64 encoded inside an
// OSC 1337 File sequence:
//
//	ESC ]1337;File=inline=1[;width=N%]:<base64>BEL
//
// No terminal capability detection is done; the sequence is always written.
package iterm2

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"

	"termcanvas/canvas"
)

const (
	esc = "\x1b"
	bel = "\x07"

	fileInline = esc + "]1337;File=inline=1"
)

// Options are the display hints sent along with the image. A nil *Options
// sends none.
type Options struct {
	// Width is the display width as a percentage of the terminal width.
	// It must not be negative.
	Width int
}

// AppendPPM appends the P6 encoding of c to dst and returns the extended
// buffer.
func AppendPPM(dst []byte, c *canvas.Canvas) []byte {
	dst = append(dst, "P6\n"...)
	dst = strconv.AppendInt(dst, int64(c.Width()), 10)
	dst = append(dst, ' ')
	dst = strconv.AppendInt(dst, int64(c.Height()), 10)
	dst = append(dst, "\n255\n"...)

	for _, col := range c.Pixels() {
		r, g, b := col.RGB()
		dst = append(dst, r, g, b)
	}
	return dst
}

// Dump writes c to w as a single inline image line.
func Dump(w io.Writer, c *canvas.Canvas, o *Options) error {
	if o != nil && o.Width < 0 {
		return fmt.Errorf("invalid display width: %d%%", o.Width)
	}

	// bufio keeps the first write error and reports it from Flush
	bw := bufio.NewWriter(w)

	bw.WriteString(fileInline)
	if o != nil {
		fmt.Fprintf(bw, ";width=%d%%", o.Width)
	}
	bw.WriteByte(':')

	enc := base64.NewEncoder(base64.StdEncoding, bw)
	if _, err := enc.Write(AppendPPM(nil, c)); err != nil {
		return fmt.Errorf("could not write %dx%d image: %w", c.Width(), c.Height(), err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("could not write %dx%d image: %w", c.Width(), c.Height(), err)
	}

	bw.WriteString(bel + "\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not write %dx%d image: %w", c.Width(), c.Height(), err)
	}
	return nil
}

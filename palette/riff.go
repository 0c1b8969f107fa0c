package palette

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/riff"
)

/*
A PAL file is a RIFF form of type "PAL " holding one or more "data" chunks:

typedef struct tagLOGPALETTE {
  WORD         palVersion;      // 0x0300
  WORD         palNumEntries;
  PALETTEENTRY palPalEntry[1];
} LOGPALETTE;

typedef struct tagPALETTEENTRY {
  BYTE peRed;
  BYTE peGreen;
  BYTE peBlue;
  BYTE peFlags;
} PALETTEENTRY;
*/

var (
	riffType = riff.FourCC{'R', 'I', 'F', 'F'}
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

const palVersion = 0x0300

// ReadFrom reads all palettes of a RIFF PAL stream.
func ReadFrom(r io.Reader) ([]color.Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	} else if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %q", string(formType[:]))
	}

	return readChunks(rd, "PAL")
}

func readChunks(r *riff.Reader, ident string) ([]color.Palette, error) {
	var res []color.Palette

	for i := 0; ; i++ {
		id, size, data, err := r.Next()
		if errors.Is(err, io.EOF) {
			return res, nil
		} else if err != nil {
			return res, fmt.Errorf("could not read chunk %s#%d: %w", ident, i, err)
		}

		chunk := fmt.Sprintf("%s#%d", ident, i)
		switch id {
		case riff.LIST:
			listType, list, err := riff.NewListReader(size, data)
			if err != nil {
				return res, fmt.Errorf("could not read list in chunk %s: %w", chunk, err)
			} else if listType != palType {
				return res, fmt.Errorf("unsupported list type in chunk %s: %q", chunk, string(listType[:]))
			}

			nested, err := readChunks(list, chunk)
			res = append(res, nested...)
			if err != nil {
				return res, err
			}
		case dataType:
			pal, err := readPalette(data, chunk)
			if err != nil {
				return res, err
			}
			res = append(res, pal)
		default:
			return res, fmt.Errorf("unsupported chunk type in %s: %q", chunk, string(id[:]))
		}
	}
}

func readPalette(r io.Reader, chunk string) (color.Palette, error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, fmt.Errorf("could not read palette header from chunk %s: %w", chunk, err)
	}

	if ver := binary.LittleEndian.Uint16(head[:2]); ver != palVersion {
		return nil, fmt.Errorf("unsupported palette version in chunk %s: %#04x", chunk, ver)
	}

	count := int(binary.LittleEndian.Uint16(head[2:]))
	entries := make([]byte, 4*count)
	if _, err := io.ReadFull(r, entries); err != nil {
		return nil, fmt.Errorf("could not read %d colors from chunk %s: %w", count, chunk, err)
	}

	pal := make(color.Palette, count)
	for i := range pal {
		e := entries[4*i:]
		pal[i] = color.RGBA{R: e[0], G: e[1], B: e[2], A: 0xFF}
	}
	return pal, nil
}

// WriteTo writes pals as a RIFF PAL stream with one data chunk per palette
// and returns the number of bytes written.
func WriteTo(w io.Writer, pals []color.Palette) (int64, error) {
	size := 4
	for i, pal := range pals {
		if len(pal) > 0xFFFF {
			return 0, fmt.Errorf("palette %d has too many colors: %d", i, len(pal))
		}
		size += 8 + 4 + 4*len(pal) // chunk header + version and count + entries
	}

	buf := make([]byte, 0, 8+size)
	buf = append(buf, riffType[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(size))
	buf = append(buf, palType[:]...)

	for _, pal := range pals {
		buf = append(buf, dataType[:]...)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(4+4*len(pal)))
		buf = binary.LittleEndian.AppendUint16(buf, palVersion)
		buf = binary.LittleEndian.AppendUint16(buf, uint16(len(pal)))
		for _, col := range pal {
			c := color.RGBAModel.Convert(col).(color.RGBA)
			buf = append(buf, c.R, c.G, c.B, 0x00)
		}
	}

	n, err := w.Write(buf)
	if err != nil {
		return int64(n), fmt.Errorf("could not write palette file: %w", err)
	}
	return int64(n), nil
}

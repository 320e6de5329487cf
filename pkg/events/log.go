package events

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"io"

	"github.com/gridforge/mazecore/pkg/common"
)

// magic and version identify the .events binary stream (spec §4.5).
var magic = [4]byte{'M', 'E', 'V', 'T'}

const version uint16 = 1

// WriteLog serializes events to w in the .events format: magic, version,
// then (kind u8, x u32, y u32, aux u32) records terminated by kind=0xFF,
// optionally zlib-compressed as a whole stream (spec §4.5).
func WriteLog(w io.Writer, evts []Event, compress bool) error {
	var buf bytes.Buffer
	for _, e := range evts {
		if err := writeRecord(&buf, e.Kind, e.X, e.Y, e.Aux); err != nil {
			return common.NewIOError("writing event record", err)
		}
	}
	if err := writeRecord(&buf, terminator, 0, 0, 0); err != nil {
		return common.NewIOError("writing event terminator", err)
	}

	if _, err := w.Write(magic[:]); err != nil {
		return common.NewIOError("writing event log magic", err)
	}
	if err := binary.Write(w, binary.LittleEndian, version); err != nil {
		return common.NewIOError("writing event log version", err)
	}

	if !compress {
		_, err := w.Write(buf.Bytes())
		if err != nil {
			return common.NewIOError("writing event log payload", err)
		}
		return nil
	}

	zw := zlib.NewWriter(w)
	if _, err := zw.Write(buf.Bytes()); err != nil {
		return common.NewIOError("writing compressed event log payload", err)
	}
	if err := zw.Close(); err != nil {
		return common.NewIOError("closing compressed event log writer", err)
	}
	return nil
}

func writeRecord(w io.Writer, kind Kind, x, y, aux uint32) error {
	var rec [13]byte
	rec[0] = byte(kind)
	binary.LittleEndian.PutUint32(rec[1:5], x)
	binary.LittleEndian.PutUint32(rec[5:9], y)
	binary.LittleEndian.PutUint32(rec[9:13], aux)
	_, err := w.Write(rec[:])
	return err
}

// ReadLog parses an .events stream, transparently handling both the
// compressed and uncompressed payload layouts (readers must accept either,
// spec §4.5).
func ReadLog(r io.Reader) ([]Event, error) {
	var gotMagic [4]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return nil, common.NewIOError("reading event log magic", err)
	}
	if gotMagic != magic {
		return nil, common.NewIOError("bad event log magic", nil)
	}
	var v uint16
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return nil, common.NewIOError("reading event log version", err)
	}
	if v != version {
		return nil, common.NewIOError("unsupported event log version", nil)
	}

	payload := io.Reader(bufio.NewReader(r))
	// Peek for a zlib header (0x78) without requiring the caller to tell us
	// whether the stream was compressed; falls back to raw framing otherwise.
	br := bufio.NewReader(payload)
	head, err := br.Peek(2)
	if err == nil && len(head) == 2 && head[0] == 0x78 {
		zr, zerr := zlib.NewReader(br)
		if zerr != nil {
			return nil, common.NewIOError("opening compressed event log", zerr)
		}
		defer zr.Close()
		return decodeRecords(zr)
	}
	return decodeRecords(br)
}

func decodeRecords(r io.Reader) ([]Event, error) {
	var out []Event
	for {
		var rec [13]byte
		if _, err := io.ReadFull(r, rec[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, common.NewIOError("event log truncated before terminator", err)
			}
			return nil, common.NewIOError("reading event record", err)
		}
		kind := Kind(rec[0])
		if kind == terminator {
			return out, nil
		}
		out = append(out, Event{
			Kind: kind,
			X:    binary.LittleEndian.Uint32(rec[1:5]),
			Y:    binary.LittleEndian.Uint32(rec[5:9]),
			Aux:  binary.LittleEndian.Uint32(rec[9:13]),
		})
	}
}

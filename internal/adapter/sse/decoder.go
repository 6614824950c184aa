package sse

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// maxLineBytes bounds a single line of the stream. The event a longer
// line belongs to is dropped.
const maxLineBytes = 1 << 20

// Event is one dispatched text/event-stream event.
type Event struct {
	// Name is the value of the last event field, empty for the default
	// "message" type.
	Name string
	ID   string
	Data []byte
}

// Decoder splits a text/event-stream body into events. Only the framing is
// handled here: the retry field is ignored because reconnect timing is
// owned by the stream client.
type Decoder struct {
	r       *bufio.Reader
	started bool
	// skipLF is set after a CR so that the LF of a CRLF pair is dropped
	// when it arrives, without waiting for it.
	skipLF bool
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Next blocks until the next event is dispatched. An event still being
// assembled when the stream ends is discarded and the read error (io.EOF
// for a clean end) is returned. An event containing an oversized line is
// skipped whole.
func (d *Decoder) Next() (Event, error) {
	var (
		name      string
		id        string
		data      bytes.Buffer
		hasData   bool
		oversized bool
	)
	for {
		line, ok, err := d.readLine()
		if err != nil {
			return Event{}, err
		}
		if !ok {
			oversized = true
			continue
		}
		if line == "" {
			if !hasData || oversized {
				name = ""
				data.Reset()
				hasData, oversized = false, false
				continue
			}
			payload := bytes.TrimSuffix(data.Bytes(), []byte{'\n'})
			return Event{Name: name, ID: id, Data: append([]byte(nil), payload...)}, nil
		}
		if line[0] == ':' {
			continue
		}

		field, value := line, ""
		if i := strings.IndexByte(line, ':'); i >= 0 {
			field, value = line[:i], line[i+1:]
			value = strings.TrimPrefix(value, " ")
		}
		switch field {
		case "event":
			name = value
		case "data":
			data.WriteString(value)
			data.WriteByte('\n')
			hasData = true
		case "id":
			if !strings.ContainsRune(value, 0) {
				id = value
			}
		}
	}
}

// readLine returns the next line without its terminator. Lines end in
// LF, CR or CRLF. ok is false for a line longer than maxLineBytes, whose
// content is discarded.
func (d *Decoder) readLine() (line string, ok bool, err error) {
	var buf []byte
	overflow := false
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return "", false, err
		}
		if d.skipLF {
			d.skipLF = false
			if b == '\n' {
				continue
			}
		}
		switch b {
		case '\r':
			d.skipLF = true
			fallthrough
		case '\n':
			if overflow {
				return "", false, nil
			}
			return d.finish(buf), true, nil
		}
		if overflow {
			continue
		}
		if len(buf) >= maxLineBytes {
			overflow = true
			buf = nil
			continue
		}
		buf = append(buf, b)
	}
}

func (d *Decoder) finish(line []byte) string {
	s := string(line)
	if !d.started {
		d.started = true
		s = strings.TrimPrefix(s, "\uFEFF")
	}
	return s
}

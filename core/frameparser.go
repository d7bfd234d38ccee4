package core

// FrameMaxLines bounds the number of lines a single frame may carry
// before the blank-line terminator.
const FrameMaxLines = 12

// Frame is a committed, ordered sequence of lines bounded by a blank
// line in the input stream.
type Frame struct {
	lines [FrameMaxLines]Line
	n     uint8
}

// Len returns the number of lines in the frame.
func (f *Frame) Len() int {
	return int(f.n)
}

// Line returns the i-th line of the frame. Callers must keep i < Len.
func (f *Frame) Line(i int) Line {
	return f.lines[i]
}

func (f *Frame) reset() {
	f.n = 0
}

func (f *Frame) append(s []byte) {
	if f.n >= FrameMaxLines {
		// Overflow line dropped silently.
		return
	}
	f.lines[f.n].Set(s)
	f.n++
}

// FrameParser is a streaming, byte-at-a-time state machine that turns a
// raw byte stream into complete Frames, bounded by blank lines. It owns
// its staging buffers and never allocates.
type FrameParser struct {
	lineBuf [LineWidth]byte
	lineLen uint8
	frame   Frame
}

// Feed consumes one byte of input. When the byte completes a frame (a
// blank line after at least one non-empty line), it returns the
// completed frame and true. A blank line on an already-empty frame
// commits nothing and returns nil and false. The returned Frame is a
// snapshot, safe to keep across later calls to Feed.
func (p *FrameParser) Feed(b byte) (*Frame, bool) {
	switch b {
	case '\r':
		// Ignored unconditionally.
		return nil, false

	case '\n':
		if p.lineLen == 0 {
			if p.frame.Len() == 0 {
				// Commit on an already-empty frame is a no-op.
				return nil, false
			}
			committed := p.frame
			p.frame.reset()
			return &committed, true
		}
		p.frame.append(p.lineBuf[:p.lineLen])
		p.lineLen = 0
		return nil, false

	default:
		if p.lineLen < LineWidth {
			p.lineBuf[p.lineLen] = b
			p.lineLen++
		}
		// Else: byte dropped silently, line truncated.
		return nil, false
	}
}

// Package rle reads and writes patterns in the run-length encoded text format
// used by most Life software.
//
// A file is a set of optional "#N", "#C" and "#O" metadata lines, a header
// "x = <width>, y = <height>, rule = <rule>", and a body of runs: "<n>b" for
// dead cells, "<n>o" for live cells and "<n>$" for row ends, terminated by
// "!". A missing count means one.
package rle

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"game-of-life/pkg/sims/life"
)

var (
	// ErrMissingHeader is returned when no "x = ..., y = ..." line precedes the body.
	ErrMissingHeader = errors.New("rle: missing header line")
	// ErrInvalidDimensions is returned for zero or negative pattern sizes.
	ErrInvalidDimensions = errors.New("rle: width and height must be greater than 0")
	// ErrSyntax is wrapped by every *SyntaxError.
	ErrSyntax = errors.New("rle: syntax error")
)

// SyntaxError reports a malformed header or body token.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("rle: line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Pattern is a decoded RLE file. Cells is indexed [y][x].
type Pattern struct {
	Name    string
	Comment string
	Author  string
	Width   int
	Height  int
	Rule    string
	Cells   [][]bool
}

// New returns an empty pattern of the given size using the Life rule.
func New(name string, w, h int) *Pattern {
	return &Pattern{Name: name, Width: w, Height: h, Rule: life.RuleString, Cells: makeCells(w, h)}
}

func makeCells(w, h int) [][]bool {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([][]bool, h)
	for y := range cells {
		cells[y] = make([]bool, w)
	}
	return cells
}

// FromGrid captures the full grid, including dead borders.
func FromGrid(g *life.Grid, name string) *Pattern {
	p := New(name, g.Width(), g.Height())
	for _, pt := range g.AliveCells() {
		p.Cells[pt.Y][pt.X] = true
	}
	return p
}

// Population counts live cells.
func (p *Pattern) Population() int {
	n := 0
	for _, row := range p.Cells {
		for _, c := range row {
			if c {
				n++
			}
		}
	}
	return n
}

// Grid builds a grid exactly the size of the pattern.
func (p *Pattern) Grid() (*life.Grid, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	g := life.New(p.Width, p.Height)
	p.Stamp(g, 0, 0)
	return g, nil
}

// Stamp sets the pattern's live cells on g at the given offset. Dead cells
// leave g untouched; cells outside g are dropped.
func (p *Pattern) Stamp(g *life.Grid, xOffset, yOffset int) {
	for y, row := range p.Cells {
		for x, alive := range row {
			if alive {
				g.SetCell(xOffset+x, yOffset+y, life.Alive)
			}
		}
	}
}

const maxLineWidth = 70

// Marshal returns the encoded form of p.
func Marshal(p *Pattern) []byte {
	var buf bytes.Buffer
	_ = Encode(&buf, p)
	return buf.Bytes()
}

// Encode writes p to w.
func Encode(w io.Writer, p *Pattern) error {
	bw := bufio.NewWriter(w)
	if p.Name != "" {
		fmt.Fprintf(bw, "#N %s\n", p.Name)
	}
	if p.Comment != "" {
		for _, line := range strings.Split(p.Comment, "\n") {
			fmt.Fprintf(bw, "#C %s\n", line)
		}
	}
	if p.Author != "" {
		fmt.Fprintf(bw, "#O %s\n", p.Author)
	}
	rule := p.Rule
	if rule == "" {
		rule = life.RuleString
	}
	fmt.Fprintf(bw, "x = %d, y = %d, rule = %s\n", p.Width, p.Height, rule)

	lw := &lineWrapper{w: bw}
	pendingRows := 0
	for _, row := range p.Cells {
		tokens := encodeRow(row)
		if len(tokens) == 0 {
			pendingRows++
			continue
		}
		if pendingRows > 0 {
			lw.token(runToken(pendingRows, '$'))
		}
		for _, tok := range tokens {
			lw.token(tok)
		}
		pendingRows = 1
	}
	lw.token("!")
	lw.flush()
	return bw.Flush()
}

// encodeRow returns the run tokens for one row with trailing dead cells
// dropped.
func encodeRow(row []bool) []string {
	end := len(row)
	for end > 0 && !row[end-1] {
		end--
	}
	var tokens []string
	for i := 0; i < end; {
		j := i
		for j < end && row[j] == row[i] {
			j++
		}
		tag := byte('b')
		if row[i] {
			tag = 'o'
		}
		tokens = append(tokens, runToken(j-i, tag))
		i = j
	}
	return tokens
}

func runToken(n int, tag byte) string {
	if n == 1 {
		return string(tag)
	}
	return strconv.Itoa(n) + string(tag)
}

// lineWrapper keeps body lines under maxLineWidth without splitting a run.
type lineWrapper struct {
	w   *bufio.Writer
	col int
}

func (l *lineWrapper) token(tok string) {
	if l.col > 0 && l.col+len(tok) > maxLineWidth {
		l.w.WriteByte('\n')
		l.col = 0
	}
	l.w.WriteString(tok)
	l.col += len(tok)
}

func (l *lineWrapper) flush() {
	if l.col > 0 {
		l.w.WriteByte('\n')
	}
}

// Unmarshal decodes an RLE document held in memory.
func Unmarshal(data []byte) (*Pattern, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one pattern from r.
func Decode(r io.Reader) (*Pattern, error) {
	p := &Pattern{Rule: life.RuleString}
	sc := bufio.NewScanner(r)
	lineNo := 0
	haveHeader := false
	var d *bodyDecoder
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !haveHeader {
			if strings.HasPrefix(line, "#") {
				p.comment(line)
				continue
			}
			if err := p.header(line, lineNo); err != nil {
				return nil, err
			}
			haveHeader = true
			d = &bodyDecoder{p: p}
			continue
		}
		done, err := d.feed(line, lineNo)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("rle: read: %w", err)
	}
	if !haveHeader {
		return nil, ErrMissingHeader
	}
	return p, nil
}

func (p *Pattern) comment(line string) {
	switch {
	case strings.HasPrefix(line, "#N"):
		p.Name = strings.TrimSpace(line[2:])
	case strings.HasPrefix(line, "#C"), strings.HasPrefix(line, "#c"):
		text := strings.TrimSpace(line[2:])
		if p.Comment == "" {
			p.Comment = text
		} else {
			p.Comment += "\n" + text
		}
	case strings.HasPrefix(line, "#O"):
		p.Author = strings.TrimSpace(line[2:])
	}
}

func (p *Pattern) header(line string, lineNo int) error {
	cleaned := strings.ReplaceAll(line, " ", "")
	seenX, seenY := false, false
	for _, part := range strings.Split(cleaned, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("malformed header field %q", part)}
		}
		switch strings.ToLower(key) {
		case "x":
			n, err := strconv.Atoi(value)
			if err != nil {
				return &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("invalid width %q", value)}
			}
			p.Width, seenX = n, true
		case "y":
			n, err := strconv.Atoi(value)
			if err != nil {
				return &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("invalid height %q", value)}
			}
			p.Height, seenY = n, true
		case "rule":
			p.Rule = value
		}
	}
	if !seenX || !seenY {
		return ErrMissingHeader
	}
	if p.Width <= 0 || p.Height <= 0 || p.Width > MaxSide || p.Height > MaxSide {
		return ErrInvalidDimensions
	}
	p.Cells = makeCells(p.Width, p.Height)
	return nil
}

// MaxSide is the largest width or height a header may declare.
const MaxSide = 1 << 14

// bodyDecoder carries run state across body lines; a count may end one
// line and its tag start the next. Counts are capped at MaxSide and
// positions at the pattern size, so neither can overflow.
type bodyDecoder struct {
	p     *Pattern
	x, y  int
	count int
}

func (d *bodyDecoder) feed(line string, lineNo int) (bool, error) {
	for _, ch := range line {
		switch {
		case ch >= '0' && ch <= '9':
			d.count = d.count*10 + int(ch-'0')
			if d.count > MaxSide {
				return false, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("run count exceeds %d", MaxSide)}
			}
		case ch == 'b':
			d.x = min(d.x+d.take(), d.p.Width)
		case ch == 'o':
			end := min(d.x+d.take(), d.p.Width)
			if d.y < d.p.Height {
				for x := d.x; x < end; x++ {
					d.p.Cells[d.y][x] = true
				}
			}
			d.x = end
		case ch == '$':
			d.y = min(d.y+d.take(), d.p.Height)
			d.x = 0
		case ch == '!':
			if d.count != 0 {
				return false, &SyntaxError{Line: lineNo, Msg: "count not followed by a tag"}
			}
			return true, nil
		case ch == ' ' || ch == '\t':
			if d.count != 0 {
				return false, &SyntaxError{Line: lineNo, Msg: "count not followed by a tag"}
			}
		default:
			return false, &SyntaxError{Line: lineNo, Msg: fmt.Sprintf("invalid character %q", ch)}
		}
	}
	return false, nil
}

func (d *bodyDecoder) take() int {
	n := d.count
	d.count = 0
	if n == 0 {
		return 1
	}
	return n
}

// ReadFile decodes the pattern stored at path.
func ReadFile(path string) (*Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// WriteFile encodes p to path, replacing any existing file.
func WriteFile(path string, p *Pattern) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package swatchgen

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/brandquad/swatchgen/colorutils"
	"go.uber.org/zap"
)

// Reasons a survey line is rejected.
var (
	errTooFewFields = errors.New("expected a name and a hex code")
	errMissingName  = errors.New("missing name")
	errLineTooLong  = errors.New("line too long")
)

// maxLineLength caps a survey line; longer lines are rejected unparsed.
const maxLineLength = 64 * 1024

var commentMarkers = []string{"#", "//"}

// Parser reads survey lines. Malformed lines are counted and skipped.
type Parser struct {
	logger *zap.Logger
	stats  Stats
}

func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// Stats returns the counters collected so far.
func (p *Parser) Stats() Stats {
	return p.stats
}

// Parse consumes r and returns the accepted entries in input order. Only a
// read error is returned.
func (p *Parser) Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	reader := bufio.NewReader(r)

	line := 0
	for {
		text, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return entries, err
		}
		if text != "" {
			line++
			text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
			if entry, ok := p.Line(text, line); ok {
				entries = append(entries, entry)
			}
		}
		if err == io.EOF {
			return entries, nil
		}
	}
}

// Line handles a single raw line and reports whether it produced an entry.
func (p *Parser) Line(raw string, line int) (Entry, bool) {
	p.stats.Lines++

	if len(raw) > maxLineLength {
		p.stats.Rejected++
		p.logger.Debug("skip line", zap.Int("line", line), zap.Int("length", len(raw)), zap.Error(errLineTooLong))
		return Entry{}, false
	}

	text := strings.TrimSpace(decodeLine(raw))
	if text == "" {
		p.stats.Blank++
		return Entry{}, false
	}
	if isComment(text) {
		p.stats.Comments++
		return Entry{}, false
	}

	entry, err := ParseLine(text)
	if err != nil {
		p.stats.Rejected++
		p.logger.Debug("skip line", zap.Int("line", line), zap.String("text", text), zap.Error(err))
		return Entry{}, false
	}
	entry.Line = line
	p.stats.Accepted++
	return entry, true
}

func isComment(text string) bool {
	for _, marker := range commentMarkers {
		if strings.HasPrefix(text, marker) {
			return true
		}
	}
	return false
}

// ParseLine splits a trimmed, non-comment line into a name and a hex code.
// Tab separated lines take the first field as the name and the second as the
// code. Otherwise the code is picked by hexTokenIndex and everything before
// it is the name.
func ParseLine(text string) (Entry, error) {
	var name, code string

	if strings.Contains(text, "\t") {
		fields := strings.FieldsFunc(text, func(r rune) bool { return r == '\t' })
		fields = trimFields(fields)
		if len(fields) < 2 {
			return Entry{}, errTooFewFields
		}
		name, code = fields[0], fields[1]
	} else {
		tokens := strings.Fields(text)
		if len(tokens) < 2 {
			return Entry{}, errTooFewFields
		}
		at := hexTokenIndex(tokens)
		name, code = strings.Join(tokens[:at], " "), tokens[at]
	}

	hex, err := colorutils.NormalizeHex(code)
	if err != nil {
		return Entry{}, err
	}
	id := Identifier(name)
	if id == "" {
		return Entry{}, errMissingName
	}

	return Entry{
		RawName:    name,
		Identifier: id,
		Hex:        hex,
	}, nil
}

// hexTokenIndex finds the code in a whitespace split line. When the line ends
// in a run of hex-shaped tokens the first of them is the code, so
// "red ff0000 00ff00" is Red = ff0000. Otherwise the last hex-shaped token
// wins, so "red ff0000 extra" is Red = ff0000 as well. Index 0 is always name.
func hexTokenIndex(tokens []string) int {
	isHex := func(s string) bool {
		_, err := colorutils.NormalizeHex(s)
		return err == nil
	}

	run := len(tokens)
	for run > 1 && isHex(tokens[run-1]) {
		run--
	}
	if run < len(tokens) {
		return run
	}
	for i := len(tokens) - 1; i > 0; i-- {
		if isHex(tokens[i]) {
			return i
		}
	}
	return len(tokens) - 1
}

func trimFields(fields []string) []string {
	out := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

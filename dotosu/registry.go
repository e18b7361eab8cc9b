package dotosu

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type NewDecoderFunc func(header string, opts Options) (*Decoder, error)

var (
	registryLock sync.RWMutex
	decoders     = map[string]NewDecoderFunc{}
	rulesets     = map[int]NewParserFunc{}
)

func init() {
	for v := 5; v <= LATEST_VERSION; v++ {
		RegisterDecoder(fmt.Sprintf("%s%d", VERSION_MARKER, v), NewLegacyDecoder)
	}
}

const LATEST_VERSION = 14

// RegisterDecoder associates an exact first line with a decoder.
func RegisterDecoder(header string, fn NewDecoderFunc) {
	registryLock.Lock()
	defer registryLock.Unlock()
	decoders[header] = fn
}

// RegisterRuleset makes a hit object parser available for a [General] Mode value.
func RegisterRuleset(mode int, fn NewParserFunc) {
	registryLock.Lock()
	defer registryLock.Unlock()
	rulesets[mode] = fn
}

func registeredRulesets() map[int]NewParserFunc {
	registryLock.RLock()
	defer registryLock.RUnlock()
	return maps.Clone(rulesets)
}

// NewDecoder picks a decoder from the header line.
func NewDecoder(header string, opts Options) (*Decoder, error) {
	registryLock.RLock()
	fn, ok := decoders[header]
	registryLock.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, header)
	}
	return fn(header, opts)
}

// ---------- Public API ----------

func DecodeFile(path string) (*Beatmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// newReader drops a UTF-8 byte order mark, which editors like to prepend.
func newReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

func Decode(r io.Reader) (*Beatmap, error) {
	return DecodeWithOptions(r, Options{})
}

// DecodeWithOptions reads a whole beatmap from r. A leading byte order mark is
// skipped.
func DecodeWithOptions(r io.Reader, opts Options) (*Beatmap, error) {
	sc := bufio.NewScanner(newReader(r))
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, MAX_LINE)

	var header string
	n := 0
	for sc.Scan() {
		n++
		if line := strings.TrimSpace(sc.Text()); line != "" {
			header = line
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	d, err := NewDecoder(header, opts)
	if err != nil {
		return nil, err
	}
	return d.decodeLines(sc, n)
}

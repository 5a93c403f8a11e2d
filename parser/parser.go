package parser

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/erraggy/jsontools"
	"github.com/erraggy/jsontools/jsonerrors"
)

const (
	// defaultMaxDepth bounds nesting so hostile input cannot exhaust the stack.
	defaultMaxDepth = 1000
	// defaultMaxSourceSize bounds URL fetches to 10 MiB.
	defaultMaxSourceSize = 10 << 20
)

// Parser normalizes JSON and YAML documents into Node trees.
// All input representations converge on the same canonical Node type,
// so everything downstream of the parser is monomorphic over Node.
type Parser struct {
	// UserAgent is the User-Agent string used when fetching URLs.
	// Defaults to "jsontools" if not set
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with 30-second timeout is created.
	// When set, InsecureSkipVerify is ignored (configure TLS on your client's transport).
	HTTPClient *http.Client
	// InsecureSkipVerify disables TLS certificate verification for URL input
	// Use with caution - only enable for testing or internal servers with self-signed certs
	InsecureSkipVerify bool
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger

	// Resource limits (0 means use default)

	// MaxDepth is the maximum nesting depth accepted before parsing fails.
	// Default: 1000
	MaxDepth int
	// MaxSourceSize is the maximum size in bytes accepted from a URL fetch.
	// Default: 10MB
	MaxSourceSize int64
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		UserAgent: jsontools.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

func (p *Parser) maxDepth() int {
	if p.MaxDepth > 0 {
		return p.MaxDepth
	}
	return defaultMaxDepth
}

func (p *Parser) maxSourceSize() int64 {
	if p.MaxSourceSize > 0 {
		return p.MaxSourceSize
	}
	return defaultMaxSourceSize
}

// SourceFormat represents the format of the source document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the normalized document and metadata about its source.
//
// The Document tree is immutable; a ParseResult may be shared freely across
// concurrent comparisons.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of the method
	// and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// SourceEncoding is the byte encoding the source arrived in, e.g. "UTF-8"
	// or "UTF-16LE". Wide encodings are transcoded before parsing.
	SourceEncoding string
	// Document is the normalized document tree
	Document *Node
	// Warnings contains non-fatal issues, such as YAML scalars whose tag has
	// no JSON meaning and was carried through as a string
	Warnings []string
	// LoadTime is the time taken to load the source data (file, URL, etc.)
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// Parse parses a document from a file path or URL.
// For URLs (http:// or https://), the content is fetched and parsed.
// For local files, the file is read and parsed.
func (p *Parser) Parse(sourcePath string) (*ParseResult, error) {
	var data []byte
	var err error
	var format SourceFormat
	var loadTime time.Duration

	if isURL(sourcePath) {
		var contentType string
		loadStart := time.Now()
		data, contentType, err = p.fetchURL(sourcePath)
		loadTime = time.Since(loadStart)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromURL(sourcePath, contentType)
	} else {
		loadStart := time.Now()
		data, err = os.ReadFile(sourcePath)
		loadTime = time.Since(loadStart)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to read file: %w", err)
		}
		format = detectFormatFromPath(sourcePath)
	}

	res, err := p.parseBytes(data)
	if err != nil {
		return nil, fillErrorSource(err, sourcePath)
	}

	res.SourcePath = sourcePath
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))
	// Extension and Content-Type win over content sniffing for the metadata.
	if format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// ParseReader parses a document from an io.Reader.
// Note: since there is no actual source path, ParseResult.SourcePath is set
// to ParseReader.yaml or ParseReader.json based on the detected format.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	return res, nil
}

// ParseBytes parses a document from a byte slice.
// Note: since there is no actual source path, ParseResult.SourcePath is set
// to ParseBytes.yaml or ParseBytes.json based on the detected format.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytes(data)
	if err != nil {
		return nil, err
	}
	res.SourceSize = int64(len(data))
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	return res, nil
}

// ParseString parses a document from a string.
// Note: since there is no actual source path, ParseResult.SourcePath is set
// to ParseString.yaml or ParseString.json based on the detected format.
func (p *Parser) ParseString(s string) (*ParseResult, error) {
	res, err := p.parseBytes([]byte(s))
	if err != nil {
		return nil, err
	}
	res.SourceSize = int64(len(s))
	res.SourcePath = "ParseString." + string(res.SourceFormat)
	return res, nil
}

// parseBytes is the common parsing core: transcode to UTF-8, sniff the
// format, and route to the JSON or YAML decoder. YAML is a superset of
// JSON, so anything not clearly JSON goes through the YAML decoder.
func (p *Parser) parseBytes(data []byte) (*ParseResult, error) {
	result := &ParseResult{}

	utf8Data, enc, err := normalizeEncoding(data)
	if err != nil {
		return nil, err
	}
	result.SourceEncoding = string(enc)

	format := detectFormatFromContent(utf8Data)
	p.log().Debug("parsing document", "format", format, "size", len(data), "encoding", enc)

	if format == SourceFormatJSON {
		doc, err := decodeJSON(utf8Data, p.maxDepth())
		if err != nil {
			return nil, err
		}
		result.Document = doc
		result.SourceFormat = SourceFormatJSON
		return result, nil
	}

	doc, warnings, err := decodeYAML(utf8Data, p.maxDepth())
	if err != nil {
		return nil, err
	}
	result.Document = doc
	result.Warnings = warnings
	result.SourceFormat = SourceFormatYAML
	for _, w := range warnings {
		p.log().Warn("yaml conversion", "detail", w)
	}
	return result, nil
}

// fillErrorSource stamps the originating source onto a ParseError that
// does not carry one yet.
func fillErrorSource(err error, source string) error {
	var pe *jsonerrors.ParseError
	if errors.As(err, &pe) && pe.Source == "" {
		pe.Source = source
	}
	return err
}

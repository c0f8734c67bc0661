// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

// Package archive extracts streaming-history documents from a Spotify
// export archive.
//
// Spotify has shipped the "Extended streaming history" export under several
// naming conventions over the years (MyData/endsong_N.json, then
// Streaming_History_Audio_*.json under a "Spotify Extended Streaming
// History" folder). The extractor matches any of the known markers and
// requires each matched document to parse as a JSON array of raw records.
//
// The load contract is all-or-nothing: a single malformed document aborts
// the whole extraction with ErrMalformedArchive, and an archive with zero
// matching entries yields ErrNoHistoryFiles. There is no partial-success
// path.
package archive

import (
	"archive/tar"
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"

	"github.com/alexgasconn/spotifystats/internal/logging"
)

var (
	// ErrNoHistoryFiles indicates the archive contains no recognizable
	// streaming-history documents. User-recoverable: the usual cause is
	// requesting the basic account export instead of the extended one.
	ErrNoHistoryFiles = errors.New("no streaming history files found in archive; request the \"Extended streaming history\" export from Spotify")

	// ErrMalformedArchive indicates the archive or one of its history
	// documents could not be read or parsed. The whole load is aborted.
	ErrMalformedArchive = errors.New("malformed archive")
)

// historyMarkers are the path fragments that identify a history document
// across export format revisions. A matching entry must also carry the
// .json extension.
var historyMarkers = []string{
	"Streaming_History_Audio_",
	"endsong_",
	"Spotify Extended Streaming History",
}

// RawRecord is one unparsed export record. Field names vary across export
// revisions, so it stays a loose key-value map until normalization.
type RawRecord map[string]any

// Document is one extracted history file: its path inside the archive and
// its decoded records.
type Document struct {
	Name    string
	Records []RawRecord
}

// ExtractFile opens the archive at path and extracts its history documents.
// ZIP is the format Spotify ships; gzip-compressed tarballs are accepted
// for re-packed exports. The format is chosen by file extension.
func ExtractFile(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("Error closing archive file")
		}
	}()

	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz") {
		return ExtractTarball(f)
	}

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat archive: %w", err)
	}
	return ExtractZip(f, info.Size())
}

// ExtractZip extracts history documents from a ZIP archive.
func ExtractZip(r io.ReaderAt, size int64) ([]Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedArchive, err)
	}

	var docs []Document
	for _, entry := range zr.File {
		if !isHistoryFile(entry.Name) {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %s", ErrMalformedArchive, entry.Name, err)
		}
		data, err := io.ReadAll(rc)
		closeErr := rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %s", ErrMalformedArchive, entry.Name, err)
		}
		if closeErr != nil {
			logging.Warn().Err(closeErr).Str("entry", entry.Name).Msg("Error closing archive entry")
		}

		doc, err := decodeDocument(entry.Name, data)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return finishExtraction(docs)
}

// ExtractTarball extracts history documents from a gzip-compressed tarball.
func ExtractTarball(r io.Reader) ([]Document, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedArchive, err)
	}
	defer func() {
		if closeErr := gz.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("Error closing gzip reader")
		}
	}()

	var docs []Document
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedArchive, err)
		}
		if hdr.Typeflag != tar.TypeReg || !isHistoryFile(hdr.Name) {
			continue
		}

		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %s", ErrMalformedArchive, hdr.Name, err)
		}

		doc, err := decodeDocument(hdr.Name, data)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return finishExtraction(docs)
}

// isHistoryFile reports whether an archive entry path names a history
// document: a recognized marker fragment plus the .json extension.
func isHistoryFile(name string) bool {
	if !strings.HasSuffix(name, ".json") {
		return false
	}
	for _, marker := range historyMarkers {
		if strings.Contains(name, marker) {
			return true
		}
	}
	return false
}

// decodeDocument parses one history document as a JSON array of records.
func decodeDocument(name string, data []byte) (Document, error) {
	var records []RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return Document{}, fmt.Errorf("%w: document %s: %s", ErrMalformedArchive, name, err)
	}
	return Document{Name: name, Records: records}, nil
}

// finishExtraction applies the zero-match policy and fixes document order.
// Archive iteration order is not guaranteed to be stable across formats, so
// documents sort by name to keep extraction deterministic.
func finishExtraction(docs []Document) ([]Document, error) {
	if len(docs) == 0 {
		return nil, ErrNoHistoryFiles
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })

	total := 0
	for _, doc := range docs {
		total += len(doc.Records)
	}
	logging.Debug().
		Int("documents", len(docs)).
		Int("records", total).
		Msg("Extracted history documents")

	return docs, nil
}

// Package digest computes hex-encoded digests of text and files.
package digest

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"log/slog"
	"os"

	"github.com/bamsammich/digest/internal/platform"
	"github.com/bamsammich/digest/internal/stats"
)

// ChunkSize is the number of bytes read from a file per digest update.
const ChunkSize = 4096

// Hasher computes digests, logging progress to its logger.
type Hasher struct {
	logger *slog.Logger
	stats  *stats.Collector
}

// NewHasher returns a Hasher that logs to logger and records file reads in
// collector. Either may be nil.
func NewHasher(logger *slog.Logger, collector *stats.Collector) *Hasher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Hasher{logger: logger, stats: collector}
}

// HashText returns the hex digest of text's UTF-8 bytes.
func (h *Hasher) HashText(text string, alg Algorithm) (string, error) {
	h.logger.Info("hashing text", "algorithm", alg.String())

	d, err := h.newDigest(alg)
	if err != nil {
		return "", err
	}
	d.Write([]byte(text)) //nolint:errcheck // hash.Hash.Write never returns an error
	return hex.EncodeToString(d.Sum(nil)), nil
}

// HashFile returns the hex digest of the contents of the regular file at
// path, reading it in ChunkSize blocks.
func (h *Hasher) HashFile(path string, alg Algorithm) (string, error) {
	d, err := h.newDigest(alg)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		h.logger.Error("file not found", "path", path)
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	h.logger.Info("hashing file", "path", path, "algorithm", alg.String())

	f, err := os.Open(path)
	if err != nil {
		h.logger.Error("open failed", "path", path, "error", err)
		return "", fmt.Errorf("%w: open %s: %w", ErrRead, path, err)
	}
	defer f.Close()

	platform.AdviseSequential(f)

	if err := h.stream(d, f); err != nil {
		h.logger.Error("read failed", "path", path, "error", err)
		return "", fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	return hex.EncodeToString(d.Sum(nil)), nil
}

// stream feeds r to d in ChunkSize pieces. Only the final chunk may be short.
func (h *Hasher) stream(d hash.Hash, r io.Reader) error {
	buf := make([]byte, ChunkSize)
	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			d.Write(buf[:n]) //nolint:errcheck // hash.Hash.Write never returns an error
			if h.stats != nil {
				h.stats.AddChunk(n)
			}
		}
		switch {
		case err == nil:
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return nil
		default:
			return err
		}
	}
}

func (h *Hasher) newDigest(alg Algorithm) (hash.Hash, error) {
	d, err := alg.New()
	if err != nil {
		h.logger.Error("invalid hashing algorithm", "algorithm", alg.String())
		return nil, err
	}
	return d, nil
}

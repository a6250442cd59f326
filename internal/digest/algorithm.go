package digest

import (
	"crypto/md5"  //nolint:gosec // G501: md5 is a selectable checksum, not used for security
	"crypto/sha1" //nolint:gosec // G505: sha1 is a selectable checksum, not used for security
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Algorithm identifies one of the supported digest functions.
// The zero value is not a valid algorithm.
type Algorithm int

const (
	MD5 Algorithm = iota + 1
	SHA1
	SHA224
	SHA256
	SHA384
	SHA512
	SHA512_224
	SHA512_256
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
	BLAKE2b
	BLAKE2s
	BLAKE3
	XXH64
)

// Default is used when no algorithm is chosen.
const Default = SHA256

type algorithmInfo struct {
	name string
	size int // digest size in bytes
	new  func() (hash.Hash, error)
}

func wrap(fn func() hash.Hash) func() (hash.Hash, error) {
	return func() (hash.Hash, error) { return fn(), nil }
}

var algorithms = map[Algorithm]algorithmInfo{
	MD5:        {"md5", md5.Size, wrap(md5.New)},
	SHA1:       {"sha1", sha1.Size, wrap(sha1.New)},
	SHA224:     {"sha224", sha256.Size224, wrap(sha256.New224)},
	SHA256:     {"sha256", sha256.Size, wrap(sha256.New)},
	SHA384:     {"sha384", sha512.Size384, wrap(sha512.New384)},
	SHA512:     {"sha512", sha512.Size, wrap(sha512.New)},
	SHA512_224: {"sha512_224", sha512.Size224, wrap(sha512.New512_224)},
	SHA512_256: {"sha512_256", sha512.Size256, wrap(sha512.New512_256)},
	SHA3_224:   {"sha3_224", 28, wrap(sha3.New224)},
	SHA3_256:   {"sha3_256", 32, wrap(sha3.New256)},
	SHA3_384:   {"sha3_384", 48, wrap(sha3.New384)},
	SHA3_512:   {"sha3_512", 64, wrap(sha3.New512)},
	BLAKE2b:    {"blake2b", blake2b.Size, func() (hash.Hash, error) { return blake2b.New512(nil) }},
	BLAKE2s:    {"blake2s", blake2s.Size, func() (hash.Hash, error) { return blake2s.New256(nil) }},
	BLAKE3:     {"blake3", 32, func() (hash.Hash, error) { return blake3.New(), nil }},
	XXH64:      {"xxh64", 8, func() (hash.Hash, error) { return xxhash.New(), nil }},
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, len(algorithms))
	for a := MD5; a <= XXH64; a++ {
		out = append(out, a)
	}
	return out
}

// Names returns the canonical identifiers of all supported algorithms.
func Names() []string {
	all := Algorithms()
	names := make([]string, len(all))
	for i, a := range all {
		names[i] = a.String()
	}
	return names
}

// ParseAlgorithm resolves an algorithm identifier. Matching is
// case-insensitive and accepts '-' in place of '_' (SHA3-256, sha512-256).
func ParseAlgorithm(name string) (Algorithm, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for a, info := range algorithms {
		if info.name == norm {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (choose from %s)", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
}

func (a Algorithm) String() string {
	if info, ok := algorithms[a]; ok {
		return info.name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	_, ok := algorithms[a]
	return ok
}

// Size returns the digest length in bytes, or 0 for an invalid algorithm.
func (a Algorithm) Size() int {
	return algorithms[a].size
}

// New returns a fresh hash.Hash for a.
func (a Algorithm) New() (hash.Hash, error) {
	info, ok := algorithms[a]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
	}
	h, err := info.new()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnknownAlgorithm, a, err)
	}
	return h, nil
}

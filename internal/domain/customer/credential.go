package customer

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/commercerack/backend/internal/domain/shared"
	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. These match the library's recommended defaults for
// interactive logins; changing them only affects newly derived hashes since
// the parameters travel inside the encoded string.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// phcB64 is the padding-free base64 variant mandated by the PHC string format
var phcB64 = base64.RawStdEncoding

// HashPassword derives an Argon2id hash from the password with a fresh random
// salt. It returns the full PHC-encoded hash and the encoded salt separately;
// the legacy schema persists the salt as its own column.
func HashPassword(password string) (hash, salt string, err error) {
	rawSalt := make([]byte, argonSaltLen)
	if _, err := rand.Read(rawSalt); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), rawSalt, argonTime, argonMemory, argonThreads, argonKeyLen)

	salt = phcB64.EncodeToString(rawSalt)
	hash = fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		salt, phcB64.EncodeToString(key))

	return hash, salt, nil
}

// VerifyPassword checks a candidate password against a PHC-encoded Argon2id
// hash using a constant-time comparison. An unparsable stored hash yields
// CorruptCredential; a mismatch is simply false.
func VerifyPassword(encoded, candidate string) (bool, error) {
	params, rawSalt, key, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	derived := argon2.IDKey([]byte(candidate), rawSalt, params.time, params.memory, params.threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, derived) == 1, nil
}

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
}

func decodeHash(encoded string) (argonParams, []byte, []byte, error) {
	var params argonParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return params, nil, nil, shared.ErrCorruptCredential
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return params, nil, nil, shared.ErrCorruptCredential
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads); err != nil {
		return params, nil, nil, shared.ErrCorruptCredential
	}

	rawSalt, err := phcB64.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, shared.ErrCorruptCredential
	}

	key, err := phcB64.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return params, nil, nil, shared.ErrCorruptCredential
	}

	return params, rawSalt, key, nil
}

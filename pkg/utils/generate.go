package utils

import (
	"crypto/rand"
	"math/big"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const objectNameAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// objectExt is the only extension shape copied into an object key.
var objectExt = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// GenerateObjectName returns a random base36 name of n characters.
func GenerateObjectName(n int) string {
	if n <= 0 {
		n = 11
	}

	max := big.NewInt(int64(len(objectNameAlphabet)))
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing is not recoverable here, fall back to uuids
			return hexName(n)
		}
		sb.WriteByte(objectNameAlphabet[idx.Int64()])
	}
	return sb.String()
}

// hexName concatenates uuids without dashes until it has n characters.
func hexName(n int) string {
	var sb strings.Builder
	sb.Grow(n + 32)
	for sb.Len() < n {
		sb.WriteString(strings.ReplaceAll(uuid.NewString(), "-", ""))
	}
	return sb.String()[:n]
}

// GenerateObjectKey builds "<prefix>/<random>.<ext>" keeping the extension of
// the uploaded file name when it is short and alphanumeric. Anything else is
// dropped so the key stays URL safe.
func GenerateObjectKey(prefix, fileName string) string {
	name := GenerateObjectName(11)
	if ext := strings.ToLower(path.Ext(fileName)); objectExt.MatchString(ext) {
		name += ext
	}

	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

package service

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pudu-fleet-gateway/internal/core/ports"
)

const contentTypeJSON = "application/json"

// PuduSignatureService implements ports.CloudSigner using the Pudu
// Open Platform HMAC-SHA1 scheme. Credentials are fixed at
// construction and never mutate.
type PuduSignatureService struct {
	appKey    string
	appSecret string
	now       func() time.Time
}

// NewPuduSignatureService creates a signer for the given application
// credentials.
func NewPuduSignatureService(appKey, appSecret string) *PuduSignatureService {
	return &PuduSignatureService{appKey: appKey, appSecret: appSecret, now: time.Now}
}

// Sign produces the x-date, content digest and Authorization header for
// one outbound request. The timestamp is captured fresh on every call,
// so signatures are never reusable across requests.
func (s *PuduSignatureService) Sign(method, signingPath string, body []byte) ports.Signature {
	return s.signAt(method, signingPath, body, s.now())
}

// signAt is the deterministic core of Sign, split out so tests can pin
// the clock.
func (s *PuduSignatureService) signAt(method, signingPath string, body []byte, t time.Time) ports.Signature {
	date := t.UTC().Format(http.TimeFormat)

	digest := ""
	if method == http.MethodPost {
		digest = ContentDigest(body)
	}

	// Six lines, exactly this order. Only x-date is a signed header,
	// per the headers="x-date" declaration: the Language header must
	// never enter the signing string.
	signingString := strings.Join([]string{
		"x-date: " + date,
		method,
		contentTypeJSON,
		contentTypeJSON,
		digest,
		signingPath,
	}, "\n")

	mac := hmac.New(sha1.New, []byte(s.appSecret))
	mac.Write([]byte(signingString))
	sig := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return ports.Signature{
		Date:          date,
		ContentDigest: digest,
		Authorization: fmt.Sprintf(`hmac id="%s", algorithm="hmac-sha1", headers="x-date", signature="%s"`, s.appKey, sig),
	}
}

// ContentDigest renders the MD5 of body as lowercase hex and
// base64-encodes the ASCII bytes of that hex string. The double
// encoding (hex, then base64 — not base64 of the raw 16 digest bytes)
// is the vendor's wire contract.
func ContentDigest(body []byte) string {
	sum := md5.Sum(body)
	hexSum := hex.EncodeToString(sum[:])
	return base64.StdEncoding.EncodeToString([]byte(hexSum))
}

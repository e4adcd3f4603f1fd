package util

import (
	"regexp"

	"github.com/sirupsen/logrus"
)

var signaturePattern = regexp.MustCompile(`signature=[0-9a-fA-F]+`)

func ContinueOrFatal(err error) {
	if err != nil {
		logrus.Fatal(err)
	}
}

// RedactSignature strips the HMAC signature from a query payload so request
// logging never leaks material derived from the API secret.
func RedactSignature(payload string) string {
	return signaturePattern.ReplaceAllString(payload, "signature=REDACTED")
}

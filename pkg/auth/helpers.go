package auth

import (
	"bytes"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/glog"
)

// jwtCert on jwt key
type jwtCert struct {
	KID string `json:"kid,omitempty"`
	Kty string `json:"kty,omitempty"`
	Alg string `json:"alg,omitempty"`
	Use string `json:"use,omitempty"`
	N   string `json:"n,omitempty"`
	E   string `json:"e,omitempty"`
}

// jwtKeys a list of JwtCerts
type jwtKeys struct {
	Keys []jwtCert `json:"keys"`
}

// downloadPublicKeys download public keys from URL.
func downloadPublicKeys(url string, cas *x509.CertPool) (map[string]*rsa.PublicKey, error) {
	client := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				RootCAs: cas,
			},
		},
	}
	glog.V(5).Infof("Getting JWK public key from %s", url)
	res, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return parsePublicKeys(body)
}

// readPublicKeysFile reads public keys from a local JWKS file.
func readPublicKeysFile(file string) (map[string]*rsa.PublicKey, error) {
	body, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return parsePublicKeys(body)
}

func parsePublicKeys(body []byte) (map[string]*rsa.PublicKey, error) {
	var certs jwtKeys
	if err := json.Unmarshal(body, &certs); err != nil {
		return nil, err
	}

	keyMap := map[string]*rsa.PublicKey{}
	for _, c := range certs.Keys {
		pemStr, err := certToPEM(c)
		if err != nil {
			return nil, err
		}

		keyMap[c.KID], err = jwt.ParseRSAPublicKeyFromPEM([]byte(pemStr))
		if err != nil {
			return nil, err
		}
	}

	return keyMap, nil
}

// certToPEM convert JWT object to PEM
func certToPEM(c jwtCert) (string, error) {
	var out bytes.Buffer

	// Check key type.
	if c.Kty != "RSA" {
		return "", fmt.Errorf("invalid key type: %s", c.Kty)
	}

	// Decode the base64 bytes for e and n.
	nb, err := base64.RawURLEncoding.DecodeString(c.N)
	if err != nil {
		return "", err
	}
	eb, err := base64.RawURLEncoding.DecodeString(c.E)
	if err != nil {
		return "", err
	}

	// Generate new public key
	pk := &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: int(new(big.Int).SetBytes(eb).Int64()),
	}

	der, err := x509.MarshalPKIXPublicKey(pk)
	if err != nil {
		return "", err
	}

	block := &pem.Block{
		Type:  "RSA PUBLIC KEY",
		Bytes: der,
	}

	// Output pem as string
	err = pem.Encode(&out, block)
	if err != nil {
		return "", err
	}

	return out.String(), nil
}

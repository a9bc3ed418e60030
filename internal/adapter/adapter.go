package adapter

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// MakeTLSConfig builds the mutual TLS config for broker connections.
// All args are filepaths. Broken certificate material is fatal.
func MakeTLSConfig(ca, cert, key string) *tls.Config {
	const op = "adapter.MakeTLSConfig"

	caPEM, err := os.ReadFile(ca)
	if err != nil {
		panic(fmt.Errorf("%s: failed to read CA certificate file: %w", op, err))
	}

	caPool := x509.NewCertPool()
	if !caPool.AppendCertsFromPEM(caPEM) {
		panic(fmt.Errorf("%s: failed to parse CA certificate", op))
	}

	clientCert, err := tls.LoadX509KeyPair(cert, key)
	if err != nil {
		panic(fmt.Errorf("%s: failed to load client key pair: %w", op, err))
	}

	return &tls.Config{
		RootCAs:      caPool,
		ClientCAs:    caPool,
		Certificates: []tls.Certificate{clientCert},
		ClientAuth:   tls.RequireAndVerifyClientCert,
	}
}

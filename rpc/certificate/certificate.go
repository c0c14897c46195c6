// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Get - verify that a certificate and key pair is valid
// and return the TLS configuration and certificate fingerprint
//
// certificate and key are the PEM contents, not file names
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if nil != err {
		log.Errorf("%s: certificate/key pair error: %s", name, err)
		return nil, [32]byte{}, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	return tlsConfiguration, fingerprint(keyPair.Certificate[0]), nil
}

// fingerprint - compute the SHA3-256 fingerprint of a DER certificate
//
// FreeBSD: openssl x509 -outform DER -in gumballd-local-rpc.crt | sha3sum -a 256
func fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/postly/fault"
	"github.com/bitmark-inc/postly/util"
)

// validity of generated certificates
const validity = 10 * 365 * 24 * time.Hour

// Get - TLS configuration from PEM encoded certificate and key files
// and the fingerprint of the certificate
func Get(log *logger.L, name string, certificateFileName string, keyFileName string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	if !util.EnsureFileExists(certificateFileName) {
		log.Errorf("%s certificate: %q does not exist", name, certificateFileName)
		return nil, fin, fault.ErrCertificateFileNotFound
	}
	if !util.EnsureFileExists(keyFileName) {
		log.Errorf("%s private key: %q does not exist", name, keyFileName)
		return nil, fin, fault.ErrKeyNotFound
	}

	keyPair, err := tls.LoadX509KeyPair(certificateFileName, keyFileName)
	if nil != err {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Fingerprint - SHA3-256 of a DER certificate
//
// openssl x509 -outform DER -in postlyd-local-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}

// Generate - create a self-signed certificate and private key
//
// existing files are never overwritten
func Generate(name string, certificateFileName string, keyFileName string, extraHosts []string) error {

	if util.EnsureFileExists(certificateFileName) {
		return fault.ErrCertificateFileExists
	}
	if util.EnsureFileExists(keyFileName) {
		return fault.ErrKeyFileExists
	}

	org := "postlyd self signed cert for: " + name
	validUntil := time.Now().Add(validity)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, false, extraHosts)
	if nil != err {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); nil != err {
		return err
	}

	if err = ioutil.WriteFile(keyFileName, key, 0600); nil != err {
		os.Remove(certificateFileName)
		return err
	}

	return nil
}

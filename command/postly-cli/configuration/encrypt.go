// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/bitmark-inc/go-argon2"

	"github.com/bitmark-inc/postly/account"
	"github.com/bitmark-inc/postly/fault"
)

const (
	keyLength    = 32
	countBytes   = 2
	maxSeedBytes = 1024
)

// decryptIdentity - check if password unlocks data in the configuration file
func decryptIdentity(password string, identity *Identity) (*Private, error) {

	salt := new(Salt)
	err := salt.UnmarshalText([]byte(identity.Salt))
	if nil != err || "" == identity.Data {
		return nil, fault.ErrNotPrivateKey
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return nil, err
	}

	seed, err := decryptSeed(identity.Data, key)
	if nil != err {
		return nil, fault.ErrInvalidPassword
	}

	// the seed checksum is what detects a wrong password
	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, fault.ErrInvalidPassword
	}
	if privateKey.Account().String() != identity.Account {
		return nil, fault.ErrInvalidPassword
	}

	return &Private{
		PrivateKey:  privateKey,
		Seed:        seed,
		Description: identity.Description,
	}, nil
}

func hashPassword(password string) (*Salt, []byte, error) {
	salt, err := MakeSalt()
	if nil != err {
		return nil, nil, err
	}

	key, err := generateKey(password, salt)
	if nil != err {
		return nil, nil, err
	}

	return salt, key, nil
}

// argon2i password hash as an AES-256 key
func generateKey(password string, salt *Salt) ([]byte, error) {

	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     keyLength,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	return argon2.Hash(ctx, []byte(password), salt.Bytes())
}

// iv ++ AES-CBC(length(2, big endian) ++ seed ++ zero padding) as hex
func encryptSeed(seed string, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if nil != err {
		return "", err
	}

	n := len(seed)
	if 0 == n || n > maxSeedBytes {
		return "", fault.ErrInvalidSeedLength
	}

	padding := aes.BlockSize - (n+countBytes)%aes.BlockSize
	if aes.BlockSize == padding {
		padding = 0
	}

	plaintext := make([]byte, countBytes+n+padding)
	binary.BigEndian.PutUint16(plaintext, uint16(n))
	copy(plaintext[countBytes:], seed)

	ciphertext := make([]byte, aes.BlockSize+len(plaintext))
	iv := ciphertext[:aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); nil != err {
		return "", err
	}
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext[aes.BlockSize:], plaintext)

	return hex.EncodeToString(ciphertext), nil
}

func decryptSeed(data string, key []byte) (string, error) {
	ciphertext, err := hex.DecodeString(data)
	if nil != err {
		return "", err
	}
	if len(ciphertext) < 2*aes.BlockSize || 0 != len(ciphertext)%aes.BlockSize {
		return "", fault.ErrInvalidSeedLength
	}

	block, err := aes.NewCipher(key)
	if nil != err {
		return "", err
	}

	iv := ciphertext[:aes.BlockSize]
	plaintext := make([]byte, len(ciphertext)-aes.BlockSize)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext[aes.BlockSize:])

	n := int(binary.BigEndian.Uint16(plaintext))
	if n+countBytes > len(plaintext) {
		return "", fault.ErrInvalidSeedLength
	}

	return string(plaintext[countBytes : countBytes+n]), nil
}

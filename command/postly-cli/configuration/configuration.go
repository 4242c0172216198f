// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - postly-cli identity and connection file
package configuration

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/postly/account"
	"github.com/bitmark-inc/postly/address"
	"github.com/bitmark-inc/postly/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	Network         string              `json:"network"`
	Connect         string              `json:"connect"`
	Program         string              `json:"program"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// Private - decrypted identity
type Private struct {
	PrivateKey  *account.PrivateKey `json:"-"`
	Seed        string              `json:"seed"`
	Description string              `json:"description"`
}

// InfoIdentity - restricted view of one identity (excludes private items)
type InfoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	Location    string `json:"location"`
}

// Info - restricted view of configuration
type Info struct {
	DefaultIdentity string         `json:"default_identity"`
	Network         string         `json:"network"`
	Connect         string         `json:"connect"`
	Program         string         `json:"program"`
	Identities      []InfoIdentity `json:"identities"`
}

// New - empty configuration for a network
func New(network string, connect string, program string) *Configuration {
	return &Configuration{
		Network:    network,
		Connect:    connect,
		Program:    program,
		Identities: make(map[string]Identity),
	}
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	err = json.NewDecoder(f).Decode(options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// Save - write to a temporary file then rename over the original,
// the previous version is kept with a ".bk" suffix
func Save(filename string, configuration *Configuration) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	b, err := json.MarshalIndent(configuration, "", "  ")
	if nil != err {
		return err
	}

	err = ioutil.WriteFile(tempFile, append(b, '\n'), 0600)
	if nil != err {
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(filename, previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}

	return os.Rename(tempFile, filename)
}

// ProgramID - the program namespace the identities post under
func (config *Configuration) ProgramID() (address.Location, error) {
	return address.FromBase58(config.Program)
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.ErrUnknownIdentity
	}

	return &id, nil
}

// Account - find identity for a given name and convert to an account
func (config *Configuration) Account(name string) (*account.Account, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return account.AccountFromBase58(id.Account)
}

// Private - find identity decrypt all data for a given name
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity
func (config *Configuration) AddIdentity(name string, description string, seed string, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityAlreadyExists
	}

	private, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return err
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptSeed(seed, secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     private.Account().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}

	return nil
}

// Info - identities sorted by name without any private data
func (config *Configuration) Info() (*Info, error) {
	info := &Info{
		DefaultIdentity: config.DefaultIdentity,
		Network:         config.Network,
		Connect:         config.Connect,
		Program:         config.Program,
		Identities:      make([]InfoIdentity, 0, len(config.Identities)),
	}

	for name, id := range config.Identities {
		acc, err := account.AccountFromBase58(id.Account)
		if nil != err {
			return nil, err
		}
		info.Identities = append(info.Identities, InfoIdentity{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			Location:    acc.Location().String(),
		})
	}

	sort.Slice(info.Identities, func(i, j int) bool {
		return info.Identities[i].Name < info.Identities[j].Name
	})

	return info, nil
}

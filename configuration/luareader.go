// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
)

const tagName = "gluamapper"

// ParseConfigurationFile - execute a Lua file and map the table it
// returns onto the structure pointed to by config
//
// fields not present in the table keep their current values so
// callers should preload defaults
func ParseConfigurationFile(fileName string, config interface{}) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// arg[0] = configuration file name
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fmt.Errorf("configuration: %q did not return a table", fileName)
	}

	return MapTable(table, config)
}

// MapTable - assign the contents of a Lua table to a structure using
// the "gluamapper" field tags
func MapTable(table *lua.LTable, config interface{}) error {
	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string {
				return s
			},
			TagName: tagName,
		},
	}
	return mapper.Map(table, config)
}

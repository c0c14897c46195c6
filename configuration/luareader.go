// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/gumball-inc/gumballd/fault"
)

// field names are taken verbatim from the "gluamapper" struct tags
var mapper = gluamapper.Mapper{
	Option: gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	},
}

// ParseConfigurationFile - execute a Lua file and map the table it
// returns onto a configuration structure
//
// the script sees the global "arg" table with arg[0] set to its own
// file name, mirroring the Lua command line convention
func ParseConfigurationFile(fileName string, config interface{}) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	err := L.DoFile(fileName)
	if nil != err {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.InvalidStructure
	}

	return mapper.Map(table, config)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2022 Gumball Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gumball-inc/gumballd/contract"
	"github.com/gumball-inc/gumballd/rpc/gumball"
)

// Query - run one read-only query
//
// answers come back space padded; strip the padding and decode to a
// generic map so any answer shell can be displayed
func (client *Client) Query(message contract.QueryMsg) (map[string]interface{}, error) {

	body, err := json.Marshal(message)
	if nil != err {
		return nil, err
	}

	if client.verbose {
		fmt.Fprintf(client.handle, "query: %s\n", body)
	}

	var reply gumball.QueryReply
	err = client.client.Call("Gumball.Query", &gumball.QueryArguments{Message: body}, &reply)
	if nil != err {
		return nil, err
	}

	var answer map[string]interface{}
	err = json.Unmarshal(bytes.TrimRight(reply.Answer, " "), &answer)
	if nil != err {
		return nil, err
	}

	return answer, nil
}

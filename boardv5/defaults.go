// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package boardv5

import "github.com/db47h/jumperless/netmgr"

// DefaultNodes returns the board-v5 nodes bound to each of the seven
// reserved special nets at boot, grounded on original_source
// jumperless-firmware/src/nets.rs's Default impl. Board v5 has no
// SUPPLY_3V3 node, and its SUPPLY_5v node is not bound here: TOP_RAIL and
// BOTTOM_RAIL fill the two supply-rail slots instead.
func DefaultNodes() netmgr.SpecialNodes[Node] {
	return netmgr.SpecialNodes[Node]{
		{NodeGND},
		{NodeTOP_RAIL},
		{NodeBOTTOM_RAIL},
		{NodeDAC0},
		{NodeDAC1},
		{NodeISENSE_PLUS},
		{NodeISENSE_MINUS},
	}
}

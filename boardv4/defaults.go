// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package boardv4

import "github.com/db47h/jumperless/netmgr"

// DefaultNodes returns the board-v4 nodes bound to each of the seven
// reserved special nets at boot, grounded on original_source
// jumperless-firmware/src/nets.rs's Default impl (GND, SUPPLY_5V,
// SUPPLY_3V3, DAC0, DAC1, ISENSE_PLUS, ISENSE_MINUS — the ADC/Sense
// slots correspond to the current-sense lines ISENSE_PLUS/ISENSE_MINUS
// on a real board).
func DefaultNodes() netmgr.SpecialNodes[Node] {
	return netmgr.SpecialNodes[Node]{
		{NodeGND},
		{NodeSUPPLY_5V},
		{NodeSUPPLY_3V3},
		{NodeDAC0},
		{NodeDAC1},
		{NodeISENSE_PLUS},
		{NodeISENSE_MINUS},
	}
}

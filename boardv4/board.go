// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// This file was auto-generated from a board spec definition (board v4).
package boardv4

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/db47h/jumperless"
)

// Node identifies a named point on this board revision.
type Node uint8

const (
	Node_1 Node = 0
	Node_2 Node = 1
	Node_3 Node = 2
	Node_4 Node = 3
	Node_5 Node = 4
	Node_6 Node = 5
	Node_7 Node = 6
	Node_8 Node = 7
	Node_9 Node = 8
	Node_10 Node = 9
	Node_11 Node = 10
	Node_12 Node = 11
	Node_13 Node = 12
	Node_14 Node = 13
	Node_15 Node = 14
	Node_16 Node = 15
	Node_17 Node = 16
	Node_18 Node = 17
	Node_19 Node = 18
	Node_20 Node = 19
	Node_21 Node = 20
	Node_22 Node = 21
	Node_23 Node = 22
	Node_24 Node = 23
	Node_25 Node = 24
	Node_26 Node = 25
	Node_27 Node = 26
	Node_28 Node = 27
	Node_29 Node = 28
	Node_30 Node = 29
	Node_31 Node = 30
	Node_32 Node = 31
	Node_33 Node = 32
	Node_34 Node = 33
	Node_35 Node = 34
	Node_36 Node = 35
	Node_37 Node = 36
	Node_38 Node = 37
	Node_39 Node = 38
	Node_40 Node = 39
	Node_41 Node = 40
	Node_42 Node = 41
	Node_43 Node = 42
	Node_44 Node = 43
	Node_45 Node = 44
	Node_46 Node = 45
	Node_47 Node = 46
	Node_48 Node = 47
	Node_49 Node = 48
	Node_50 Node = 49
	Node_51 Node = 50
	Node_52 Node = 51
	Node_53 Node = 52
	Node_54 Node = 53
	Node_55 Node = 54
	Node_56 Node = 55
	Node_57 Node = 56
	Node_58 Node = 57
	Node_59 Node = 58
	Node_60 Node = 59
	NodeNANO_A0 Node = 60
	NodeNANO_D1 Node = 61
	NodeNANO_A2 Node = 62
	NodeNANO_D3 Node = 63
	NodeNANO_A4 Node = 64
	NodeNANO_D5 Node = 65
	NodeNANO_A6 Node = 66
	NodeNANO_D7 Node = 67
	NodeNANO_D11 Node = 68
	NodeNANO_D9 Node = 69
	NodeNANO_D13 Node = 70
	NodeNANO_RESET Node = 71
	NodeDAC0 Node = 72
	NodeDAC1 Node = 73
	NodeADC0 Node = 74
	NodeADC1 Node = 75
	NodeADC2 Node = 76
	NodeADC3 Node = 77
	NodeSUPPLY_3V3 Node = 78
	NodeGND Node = 79
	NodeNANO_D0 Node = 80
	NodeNANO_A1 Node = 81
	NodeNANO_D2 Node = 82
	NodeNANO_A3 Node = 83
	NodeNANO_D4 Node = 84
	NodeNANO_A5 Node = 85
	NodeNANO_D6 Node = 86
	NodeNANO_A7 Node = 87
	NodeNANO_D8 Node = 88
	NodeNANO_D10 Node = 89
	NodeNANO_D12 Node = 90
	NodeNANO_AREF Node = 91
	NodeSUPPLY_5V Node = 92
	NodeISENSE_MINUS Node = 93
	NodeISENSE_PLUS Node = 94
	NodeRP_UART_TX Node = 95
	NodeRP_UART_RX Node = 96
	NodeRP_GPIO0 Node = 97
)

// ID implements jumperless.Node.
func (n Node) ID() uint8 { return uint8(n) }

var nodeNames = map[Node]string{
	Node_1: "1",
	Node_2: "2",
	Node_3: "3",
	Node_4: "4",
	Node_5: "5",
	Node_6: "6",
	Node_7: "7",
	Node_8: "8",
	Node_9: "9",
	Node_10: "10",
	Node_11: "11",
	Node_12: "12",
	Node_13: "13",
	Node_14: "14",
	Node_15: "15",
	Node_16: "16",
	Node_17: "17",
	Node_18: "18",
	Node_19: "19",
	Node_20: "20",
	Node_21: "21",
	Node_22: "22",
	Node_23: "23",
	Node_24: "24",
	Node_25: "25",
	Node_26: "26",
	Node_27: "27",
	Node_28: "28",
	Node_29: "29",
	Node_30: "30",
	Node_31: "31",
	Node_32: "32",
	Node_33: "33",
	Node_34: "34",
	Node_35: "35",
	Node_36: "36",
	Node_37: "37",
	Node_38: "38",
	Node_39: "39",
	Node_40: "40",
	Node_41: "41",
	Node_42: "42",
	Node_43: "43",
	Node_44: "44",
	Node_45: "45",
	Node_46: "46",
	Node_47: "47",
	Node_48: "48",
	Node_49: "49",
	Node_50: "50",
	Node_51: "51",
	Node_52: "52",
	Node_53: "53",
	Node_54: "54",
	Node_55: "55",
	Node_56: "56",
	Node_57: "57",
	Node_58: "58",
	Node_59: "59",
	Node_60: "60",
	NodeNANO_A0: "NANO_A0",
	NodeNANO_D1: "NANO_D1",
	NodeNANO_A2: "NANO_A2",
	NodeNANO_D3: "NANO_D3",
	NodeNANO_A4: "NANO_A4",
	NodeNANO_D5: "NANO_D5",
	NodeNANO_A6: "NANO_A6",
	NodeNANO_D7: "NANO_D7",
	NodeNANO_D11: "NANO_D11",
	NodeNANO_D9: "NANO_D9",
	NodeNANO_D13: "NANO_D13",
	NodeNANO_RESET: "NANO_RESET",
	NodeDAC0: "DAC0",
	NodeDAC1: "DAC1",
	NodeADC0: "ADC0",
	NodeADC1: "ADC1",
	NodeADC2: "ADC2",
	NodeADC3: "ADC3",
	NodeSUPPLY_3V3: "SUPPLY_3V3",
	NodeGND: "GND",
	NodeNANO_D0: "NANO_D0",
	NodeNANO_A1: "NANO_A1",
	NodeNANO_D2: "NANO_D2",
	NodeNANO_A3: "NANO_A3",
	NodeNANO_D4: "NANO_D4",
	NodeNANO_A5: "NANO_A5",
	NodeNANO_D6: "NANO_D6",
	NodeNANO_A7: "NANO_A7",
	NodeNANO_D8: "NANO_D8",
	NodeNANO_D10: "NANO_D10",
	NodeNANO_D12: "NANO_D12",
	NodeNANO_AREF: "NANO_AREF",
	NodeSUPPLY_5V: "SUPPLY_5V",
	NodeISENSE_MINUS: "ISENSE_MINUS",
	NodeISENSE_PLUS: "ISENSE_PLUS",
	NodeRP_UART_TX: "RP_UART_TX",
	NodeRP_UART_RX: "RP_UART_RX",
	NodeRP_GPIO0: "RP_GPIO0",
}

// String implements fmt.Stringer.
func (n Node) String() string {
	if s, ok := nodeNames[n]; ok {
		return s
	}
	return "Node(" + strconv.Itoa(int(n)) + ")"
}

var nodeByName = func() map[string]Node {
	m := make(map[string]Node, len(nodeNames))
	for n, s := range nodeNames {
		m[s] = n
	}
	return m
}()

// ParseNode looks up a Node by its String() form.
func ParseNode(s string) (Node, error) {
	if n, ok := nodeByName[s]; ok {
		return n, nil
	}
	return 0, errors.Errorf("unknown node %q", s)
}

var nodePorts = []jumperless.NodePort[Node]{
	{Node_1, jumperless.Port{jumperless.ChipL, jumperless.DimX, 8}},
	{Node_2, jumperless.Port{jumperless.ChipA, jumperless.DimY, 1}},
	{Node_3, jumperless.Port{jumperless.ChipA, jumperless.DimY, 2}},
	{Node_4, jumperless.Port{jumperless.ChipA, jumperless.DimY, 3}},
	{Node_5, jumperless.Port{jumperless.ChipA, jumperless.DimY, 4}},
	{Node_6, jumperless.Port{jumperless.ChipA, jumperless.DimY, 5}},
	{Node_7, jumperless.Port{jumperless.ChipA, jumperless.DimY, 6}},
	{Node_8, jumperless.Port{jumperless.ChipA, jumperless.DimY, 7}},
	{Node_9, jumperless.Port{jumperless.ChipB, jumperless.DimY, 1}},
	{Node_10, jumperless.Port{jumperless.ChipB, jumperless.DimY, 2}},
	{Node_11, jumperless.Port{jumperless.ChipB, jumperless.DimY, 3}},
	{Node_12, jumperless.Port{jumperless.ChipB, jumperless.DimY, 4}},
	{Node_13, jumperless.Port{jumperless.ChipB, jumperless.DimY, 5}},
	{Node_14, jumperless.Port{jumperless.ChipB, jumperless.DimY, 6}},
	{Node_15, jumperless.Port{jumperless.ChipB, jumperless.DimY, 7}},
	{Node_16, jumperless.Port{jumperless.ChipC, jumperless.DimY, 1}},
	{Node_17, jumperless.Port{jumperless.ChipC, jumperless.DimY, 2}},
	{Node_18, jumperless.Port{jumperless.ChipC, jumperless.DimY, 3}},
	{Node_19, jumperless.Port{jumperless.ChipC, jumperless.DimY, 4}},
	{Node_20, jumperless.Port{jumperless.ChipC, jumperless.DimY, 5}},
	{Node_21, jumperless.Port{jumperless.ChipC, jumperless.DimY, 6}},
	{Node_22, jumperless.Port{jumperless.ChipC, jumperless.DimY, 7}},
	{Node_23, jumperless.Port{jumperless.ChipD, jumperless.DimY, 1}},
	{Node_24, jumperless.Port{jumperless.ChipD, jumperless.DimY, 2}},
	{Node_25, jumperless.Port{jumperless.ChipD, jumperless.DimY, 3}},
	{Node_26, jumperless.Port{jumperless.ChipD, jumperless.DimY, 4}},
	{Node_27, jumperless.Port{jumperless.ChipD, jumperless.DimY, 5}},
	{Node_28, jumperless.Port{jumperless.ChipD, jumperless.DimY, 6}},
	{Node_29, jumperless.Port{jumperless.ChipD, jumperless.DimY, 7}},
	{Node_30, jumperless.Port{jumperless.ChipL, jumperless.DimX, 9}},
	{Node_31, jumperless.Port{jumperless.ChipL, jumperless.DimX, 10}},
	{Node_32, jumperless.Port{jumperless.ChipE, jumperless.DimY, 1}},
	{Node_33, jumperless.Port{jumperless.ChipE, jumperless.DimY, 2}},
	{Node_34, jumperless.Port{jumperless.ChipE, jumperless.DimY, 3}},
	{Node_35, jumperless.Port{jumperless.ChipE, jumperless.DimY, 4}},
	{Node_36, jumperless.Port{jumperless.ChipE, jumperless.DimY, 5}},
	{Node_37, jumperless.Port{jumperless.ChipE, jumperless.DimY, 6}},
	{Node_38, jumperless.Port{jumperless.ChipE, jumperless.DimY, 7}},
	{Node_39, jumperless.Port{jumperless.ChipF, jumperless.DimY, 1}},
	{Node_40, jumperless.Port{jumperless.ChipF, jumperless.DimY, 2}},
	{Node_41, jumperless.Port{jumperless.ChipF, jumperless.DimY, 3}},
	{Node_42, jumperless.Port{jumperless.ChipF, jumperless.DimY, 4}},
	{Node_43, jumperless.Port{jumperless.ChipF, jumperless.DimY, 5}},
	{Node_44, jumperless.Port{jumperless.ChipF, jumperless.DimY, 6}},
	{Node_45, jumperless.Port{jumperless.ChipF, jumperless.DimY, 7}},
	{Node_46, jumperless.Port{jumperless.ChipG, jumperless.DimY, 1}},
	{Node_47, jumperless.Port{jumperless.ChipG, jumperless.DimY, 2}},
	{Node_48, jumperless.Port{jumperless.ChipG, jumperless.DimY, 3}},
	{Node_49, jumperless.Port{jumperless.ChipG, jumperless.DimY, 4}},
	{Node_50, jumperless.Port{jumperless.ChipG, jumperless.DimY, 5}},
	{Node_51, jumperless.Port{jumperless.ChipG, jumperless.DimY, 6}},
	{Node_52, jumperless.Port{jumperless.ChipG, jumperless.DimY, 7}},
	{Node_53, jumperless.Port{jumperless.ChipH, jumperless.DimY, 1}},
	{Node_54, jumperless.Port{jumperless.ChipH, jumperless.DimY, 2}},
	{Node_55, jumperless.Port{jumperless.ChipH, jumperless.DimY, 3}},
	{Node_56, jumperless.Port{jumperless.ChipH, jumperless.DimY, 4}},
	{Node_57, jumperless.Port{jumperless.ChipH, jumperless.DimY, 5}},
	{Node_58, jumperless.Port{jumperless.ChipH, jumperless.DimY, 6}},
	{Node_59, jumperless.Port{jumperless.ChipH, jumperless.DimY, 7}},
	{Node_60, jumperless.Port{jumperless.ChipL, jumperless.DimX, 11}},
	{NodeNANO_A0, jumperless.Port{jumperless.ChipI, jumperless.DimX, 0}},
	{NodeNANO_D1, jumperless.Port{jumperless.ChipI, jumperless.DimX, 1}},
	{NodeNANO_A2, jumperless.Port{jumperless.ChipI, jumperless.DimX, 2}},
	{NodeNANO_D3, jumperless.Port{jumperless.ChipI, jumperless.DimX, 3}},
	{NodeNANO_A4, jumperless.Port{jumperless.ChipI, jumperless.DimX, 4}},
	{NodeNANO_D5, jumperless.Port{jumperless.ChipI, jumperless.DimX, 5}},
	{NodeNANO_A6, jumperless.Port{jumperless.ChipI, jumperless.DimX, 6}},
	{NodeNANO_D7, jumperless.Port{jumperless.ChipI, jumperless.DimX, 7}},
	{NodeNANO_D11, jumperless.Port{jumperless.ChipI, jumperless.DimX, 8}},
	{NodeNANO_D9, jumperless.Port{jumperless.ChipI, jumperless.DimX, 9}},
	{NodeNANO_D13, jumperless.Port{jumperless.ChipI, jumperless.DimX, 10}},
	{NodeNANO_RESET, jumperless.Port{jumperless.ChipI, jumperless.DimX, 11}},
	{NodeDAC0, jumperless.Port{jumperless.ChipI, jumperless.DimX, 12}},
	{NodeDAC0, jumperless.Port{jumperless.ChipL, jumperless.DimX, 7}},
	{NodeDAC1, jumperless.Port{jumperless.ChipL, jumperless.DimX, 6}},
	{NodeDAC1, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 12}},
	{NodeADC0, jumperless.Port{jumperless.ChipL, jumperless.DimX, 2}},
	{NodeADC1, jumperless.Port{jumperless.ChipL, jumperless.DimX, 3}},
	{NodeADC1, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 13}},
	{NodeADC2, jumperless.Port{jumperless.ChipL, jumperless.DimX, 4}},
	{NodeADC2, jumperless.Port{jumperless.ChipK, jumperless.DimX, 15}},
	{NodeADC3, jumperless.Port{jumperless.ChipL, jumperless.DimX, 5}},
	{NodeADC0, jumperless.Port{jumperless.ChipI, jumperless.DimX, 13}},
	{NodeSUPPLY_3V3, jumperless.Port{jumperless.ChipI, jumperless.DimX, 14}},
	{NodeGND, jumperless.Port{jumperless.ChipI, jumperless.DimX, 15}},
	{NodeNANO_D0, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 0}},
	{NodeNANO_A1, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 1}},
	{NodeNANO_D2, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 2}},
	{NodeNANO_A3, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 3}},
	{NodeNANO_D4, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 4}},
	{NodeNANO_A5, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 5}},
	{NodeNANO_D6, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 6}},
	{NodeNANO_A7, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 7}},
	{NodeNANO_D8, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 8}},
	{NodeNANO_D10, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 9}},
	{NodeNANO_D12, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 10}},
	{NodeNANO_AREF, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 11}},
	{NodeSUPPLY_5V, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 14}},
	{NodeGND, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 15}},
	{NodeNANO_A0, jumperless.Port{jumperless.ChipK, jumperless.DimX, 0}},
	{NodeNANO_A1, jumperless.Port{jumperless.ChipK, jumperless.DimX, 1}},
	{NodeNANO_A2, jumperless.Port{jumperless.ChipK, jumperless.DimX, 2}},
	{NodeNANO_A3, jumperless.Port{jumperless.ChipK, jumperless.DimX, 3}},
	{NodeNANO_D2, jumperless.Port{jumperless.ChipK, jumperless.DimX, 4}},
	{NodeNANO_D3, jumperless.Port{jumperless.ChipK, jumperless.DimX, 5}},
	{NodeNANO_D4, jumperless.Port{jumperless.ChipK, jumperless.DimX, 6}},
	{NodeNANO_D5, jumperless.Port{jumperless.ChipK, jumperless.DimX, 7}},
	{NodeNANO_D6, jumperless.Port{jumperless.ChipK, jumperless.DimX, 8}},
	{NodeNANO_D7, jumperless.Port{jumperless.ChipK, jumperless.DimX, 9}},
	{NodeNANO_D8, jumperless.Port{jumperless.ChipK, jumperless.DimX, 10}},
	{NodeNANO_D9, jumperless.Port{jumperless.ChipK, jumperless.DimX, 11}},
	{NodeNANO_D10, jumperless.Port{jumperless.ChipK, jumperless.DimX, 12}},
	{NodeNANO_D11, jumperless.Port{jumperless.ChipK, jumperless.DimX, 13}},
	{NodeNANO_D12, jumperless.Port{jumperless.ChipK, jumperless.DimX, 14}},
	{NodeISENSE_MINUS, jumperless.Port{jumperless.ChipL, jumperless.DimX, 0}},
	{NodeISENSE_PLUS, jumperless.Port{jumperless.ChipL, jumperless.DimX, 1}},
	{NodeRP_UART_TX, jumperless.Port{jumperless.ChipL, jumperless.DimX, 12}},
	{NodeRP_UART_RX, jumperless.Port{jumperless.ChipL, jumperless.DimX, 13}},
	{NodeSUPPLY_5V, jumperless.Port{jumperless.ChipL, jumperless.DimX, 14}},
	{NodeRP_GPIO0, jumperless.Port{jumperless.ChipL, jumperless.DimX, 15}},
}

var lanes = []jumperless.Lane{
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 0}, jumperless.Port{jumperless.ChipI, jumperless.DimY, 0}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 1}, jumperless.Port{jumperless.ChipJ, jumperless.DimY, 0}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 2}, jumperless.Port{jumperless.ChipB, jumperless.DimX, 0}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 3}, jumperless.Port{jumperless.ChipB, jumperless.DimX, 1}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 4}, jumperless.Port{jumperless.ChipC, jumperless.DimX, 0}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 5}, jumperless.Port{jumperless.ChipC, jumperless.DimX, 1}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 6}, jumperless.Port{jumperless.ChipD, jumperless.DimX, 0}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 7}, jumperless.Port{jumperless.ChipD, jumperless.DimX, 1}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 8}, jumperless.Port{jumperless.ChipE, jumperless.DimX, 0}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 9}, jumperless.Port{jumperless.ChipK, jumperless.DimY, 0}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 10}, jumperless.Port{jumperless.ChipF, jumperless.DimX, 0}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 11}, jumperless.Port{jumperless.ChipF, jumperless.DimX, 1}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 12}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 0}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 13}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 1}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 0}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 1}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimY, 0}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 0}},
	{jumperless.Port{jumperless.ChipB, jumperless.DimX, 2}, jumperless.Port{jumperless.ChipI, jumperless.DimY, 1}},
	{jumperless.Port{jumperless.ChipB, jumperless.DimX, 3}, jumperless.Port{jumperless.ChipJ, jumperless.DimY, 1}},
	{jumperless.Port{jumperless.ChipB, jumperless.DimX, 4}, jumperless.Port{jumperless.ChipC, jumperless.DimX, 2}},
	{jumperless.Port{jumperless.ChipB, jumperless.DimX, 5}, jumperless.Port{jumperless.ChipC, jumperless.DimX, 3}},
	{jumperless.Port{jumperless.ChipB, jumperless.DimX, 6}, jumperless.Port{jumperless.ChipD, jumperless.DimX, 2}},
	{jumperless.Port{jumperless.ChipB, jumperless.DimX, 7}, jumperless.Port{jumperless.ChipD, jumperless.DimX, 3}},
	{jumperless.Port{jumperless.ChipB, jumperless.DimX, 8}, jumperless.Port{jumperless.ChipE, jumperless.DimX, 2}},
	{jumperless.Port{jumperless.ChipB, jumperless.DimX, 9}, jumperless.Port{jumperless.ChipE, jumperless.DimX, 3}},
	{jumperless.Port{jumperless.ChipB, jumperless.DimX, 10}, jumperless.Port{jumperless.ChipF, jumperless.DimX, 2}},
	{jumperless.Port{jumperless.ChipB, jumperless.DimX, 11}, jumperless.Port{jumperless.ChipK, jumperless.DimY, 1}},
	{jumperless.Port{jumperless.ChipB, jumperless.DimX, 12}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 2}},
	{jumperless.Port{jumperless.ChipB, jumperless.DimX, 13}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 3}},
	{jumperless.Port{jumperless.ChipB, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 2}},
	{jumperless.Port{jumperless.ChipB, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 3}},
	{jumperless.Port{jumperless.ChipB, jumperless.DimY, 0}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 1}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 4}, jumperless.Port{jumperless.ChipI, jumperless.DimY, 2}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 5}, jumperless.Port{jumperless.ChipJ, jumperless.DimY, 2}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 6}, jumperless.Port{jumperless.ChipD, jumperless.DimX, 4}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 7}, jumperless.Port{jumperless.ChipD, jumperless.DimX, 5}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 8}, jumperless.Port{jumperless.ChipE, jumperless.DimX, 4}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 9}, jumperless.Port{jumperless.ChipE, jumperless.DimX, 5}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 10}, jumperless.Port{jumperless.ChipF, jumperless.DimX, 4}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 11}, jumperless.Port{jumperless.ChipF, jumperless.DimX, 5}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 12}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 4}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 13}, jumperless.Port{jumperless.ChipK, jumperless.DimY, 2}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 4}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 5}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimY, 0}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 2}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 6}, jumperless.Port{jumperless.ChipI, jumperless.DimY, 3}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 7}, jumperless.Port{jumperless.ChipJ, jumperless.DimY, 3}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 8}, jumperless.Port{jumperless.ChipE, jumperless.DimX, 6}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 9}, jumperless.Port{jumperless.ChipE, jumperless.DimX, 7}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 10}, jumperless.Port{jumperless.ChipF, jumperless.DimX, 6}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 11}, jumperless.Port{jumperless.ChipF, jumperless.DimX, 7}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 12}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 6}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 13}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 7}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 6}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipK, jumperless.DimY, 3}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimY, 0}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 3}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 1}, jumperless.Port{jumperless.ChipK, jumperless.DimY, 4}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 8}, jumperless.Port{jumperless.ChipI, jumperless.DimY, 4}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 9}, jumperless.Port{jumperless.ChipJ, jumperless.DimY, 4}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 10}, jumperless.Port{jumperless.ChipF, jumperless.DimX, 8}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 11}, jumperless.Port{jumperless.ChipF, jumperless.DimX, 9}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 12}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 8}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 13}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 9}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 8}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 9}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimY, 0}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 4}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimX, 3}, jumperless.Port{jumperless.ChipK, jumperless.DimY, 5}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimX, 10}, jumperless.Port{jumperless.ChipI, jumperless.DimY, 5}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimX, 11}, jumperless.Port{jumperless.ChipJ, jumperless.DimY, 5}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimX, 12}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 10}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimX, 13}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 11}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 10}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 11}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimY, 0}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 5}},
	{jumperless.Port{jumperless.ChipG, jumperless.DimX, 5}, jumperless.Port{jumperless.ChipK, jumperless.DimY, 6}},
	{jumperless.Port{jumperless.ChipG, jumperless.DimX, 12}, jumperless.Port{jumperless.ChipI, jumperless.DimY, 6}},
	{jumperless.Port{jumperless.ChipG, jumperless.DimX, 13}, jumperless.Port{jumperless.ChipJ, jumperless.DimY, 6}},
	{jumperless.Port{jumperless.ChipG, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 12}},
	{jumperless.Port{jumperless.ChipG, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 13}},
	{jumperless.Port{jumperless.ChipG, jumperless.DimY, 0}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 6}},
	{jumperless.Port{jumperless.ChipH, jumperless.DimX, 7}, jumperless.Port{jumperless.ChipK, jumperless.DimY, 7}},
	{jumperless.Port{jumperless.ChipH, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipI, jumperless.DimY, 7}},
	{jumperless.Port{jumperless.ChipH, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipJ, jumperless.DimY, 7}},
	{jumperless.Port{jumperless.ChipH, jumperless.DimY, 0}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 7}},
}

var bouncePorts []jumperless.Port

// Spec returns the board spec for boardv4
// (98 nodes, 120 node-port entries, 84 lanes, 0 bounce ports).
func Spec() jumperless.BoardSpec[Node] {
	return jumperless.BoardSpec[Node]{
		NodePorts:   nodePorts,
		Lanes:       lanes,
		BouncePorts: bouncePorts,
		FromID:      func(id uint8) Node { return Node(id) },
	}
}

// NewBoard constructs the immutable Board value for this revision.
func NewBoard() *jumperless.Board[Node] {
	return jumperless.NewBoard(Spec())
}

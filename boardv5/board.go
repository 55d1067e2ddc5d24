// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// This file was auto-generated from a board spec definition (board v5).
package boardv5

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/db47h/jumperless"
)

// Node identifies a named point on this board revision.
type Node uint8

const (
	NodeGND Node = 0
	NodeSUPPLY_5v Node = 1
	Node_1 Node = 2
	Node_2 Node = 3
	Node_3 Node = 4
	Node_4 Node = 5
	Node_5 Node = 6
	Node_6 Node = 7
	Node_7 Node = 8
	Node_8 Node = 9
	Node_9 Node = 10
	Node_10 Node = 11
	Node_11 Node = 12
	Node_12 Node = 13
	Node_13 Node = 14
	Node_14 Node = 15
	Node_15 Node = 16
	Node_16 Node = 17
	Node_17 Node = 18
	Node_18 Node = 19
	Node_19 Node = 20
	Node_20 Node = 21
	Node_21 Node = 22
	Node_22 Node = 23
	Node_23 Node = 24
	Node_24 Node = 25
	Node_25 Node = 26
	Node_26 Node = 27
	Node_27 Node = 28
	Node_28 Node = 29
	Node_29 Node = 30
	Node_30 Node = 31
	Node_31 Node = 32
	Node_32 Node = 33
	Node_33 Node = 34
	Node_34 Node = 35
	Node_35 Node = 36
	Node_36 Node = 37
	Node_37 Node = 38
	Node_38 Node = 39
	Node_39 Node = 40
	Node_40 Node = 41
	Node_41 Node = 42
	Node_42 Node = 43
	Node_43 Node = 44
	Node_44 Node = 45
	Node_45 Node = 46
	Node_46 Node = 47
	Node_47 Node = 48
	Node_48 Node = 49
	Node_49 Node = 50
	Node_50 Node = 51
	Node_51 Node = 52
	Node_52 Node = 53
	Node_53 Node = 54
	Node_54 Node = 55
	Node_55 Node = 56
	Node_56 Node = 57
	Node_57 Node = 58
	Node_58 Node = 59
	Node_59 Node = 60
	Node_60 Node = 61
	NodeNANO_D0 Node = 62
	NodeNANO_D1 Node = 63
	NodeNANO_D2 Node = 64
	NodeNANO_D3 Node = 65
	NodeNANO_D4 Node = 66
	NodeNANO_D5 Node = 67
	NodeNANO_D6 Node = 68
	NodeNANO_D7 Node = 69
	NodeNANO_D8 Node = 70
	NodeNANO_D9 Node = 71
	NodeNANO_D10 Node = 72
	NodeNANO_D11 Node = 73
	NodeNANO_D12 Node = 74
	NodeNANO_D13 Node = 75
	NodeNANO_A0 Node = 76
	NodeNANO_A1 Node = 77
	NodeNANO_A2 Node = 78
	NodeNANO_A3 Node = 79
	NodeNANO_A4 Node = 80
	NodeNANO_A5 Node = 81
	NodeNANO_A6 Node = 82
	NodeNANO_A7 Node = 83
	NodeRP_UART_RX Node = 84
	NodeRP_UART_TX Node = 85
	NodeISENSE_PLUS Node = 86
	NodeISENSE_MINUS Node = 87
	NodeTOP_RAIL Node = 88
	NodeBOTTOM_RAIL Node = 89
	NodeDAC1 Node = 90
	NodeDAC0 Node = 91
	NodeADC0 Node = 92
	NodeADC1 Node = 93
	NodeADC2 Node = 94
	NodeADC3 Node = 95
	NodeNANO_RESET_J0 Node = 96
	NodeNANO_RESET_J1 Node = 97
	NodeNANO_AREF Node = 98
	NodeGPIO_20 Node = 99
	NodeGPIO_21 Node = 100
	NodeGPIO_22 Node = 101
	NodeGPIO_23 Node = 102
	NodeGPIO_MCP_0 Node = 103
	NodeGPIO_MCP_1 Node = 104
	NodeGPIO_MCP_2 Node = 105
	NodeGPIO_MCP_3 Node = 106
)

// ID implements jumperless.Node.
func (n Node) ID() uint8 { return uint8(n) }

var nodeNames = map[Node]string{
	NodeGND: "GND",
	NodeSUPPLY_5v: "SUPPLY_5v",
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
	NodeNANO_D0: "NANO_D0",
	NodeNANO_D1: "NANO_D1",
	NodeNANO_D2: "NANO_D2",
	NodeNANO_D3: "NANO_D3",
	NodeNANO_D4: "NANO_D4",
	NodeNANO_D5: "NANO_D5",
	NodeNANO_D6: "NANO_D6",
	NodeNANO_D7: "NANO_D7",
	NodeNANO_D8: "NANO_D8",
	NodeNANO_D9: "NANO_D9",
	NodeNANO_D10: "NANO_D10",
	NodeNANO_D11: "NANO_D11",
	NodeNANO_D12: "NANO_D12",
	NodeNANO_D13: "NANO_D13",
	NodeNANO_A0: "NANO_A0",
	NodeNANO_A1: "NANO_A1",
	NodeNANO_A2: "NANO_A2",
	NodeNANO_A3: "NANO_A3",
	NodeNANO_A4: "NANO_A4",
	NodeNANO_A5: "NANO_A5",
	NodeNANO_A6: "NANO_A6",
	NodeNANO_A7: "NANO_A7",
	NodeRP_UART_RX: "RP_UART_RX",
	NodeRP_UART_TX: "RP_UART_TX",
	NodeISENSE_PLUS: "ISENSE_PLUS",
	NodeISENSE_MINUS: "ISENSE_MINUS",
	NodeTOP_RAIL: "TOP_RAIL",
	NodeBOTTOM_RAIL: "BOTTOM_RAIL",
	NodeDAC1: "DAC1",
	NodeDAC0: "DAC0",
	NodeADC0: "ADC0",
	NodeADC1: "ADC1",
	NodeADC2: "ADC2",
	NodeADC3: "ADC3",
	NodeNANO_RESET_J0: "NANO_RESET_J0",
	NodeNANO_RESET_J1: "NANO_RESET_J1",
	NodeNANO_AREF: "NANO_AREF",
	NodeGPIO_20: "GPIO_20",
	NodeGPIO_21: "GPIO_21",
	NodeGPIO_22: "GPIO_22",
	NodeGPIO_23: "GPIO_23",
	NodeGPIO_MCP_0: "GPIO_MCP_0",
	NodeGPIO_MCP_1: "GPIO_MCP_1",
	NodeGPIO_MCP_2: "GPIO_MCP_2",
	NodeGPIO_MCP_3: "GPIO_MCP_3",
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
{NodeGND, jumperless.Port{jumperless.ChipL, jumperless.DimX, 15}},
{NodeGND, jumperless.Port{jumperless.ChipK, jumperless.DimX, 15}},
{NodeSUPPLY_5v, jumperless.Port{jumperless.ChipL, jumperless.DimX, 0}},
{Node_1, jumperless.Port{jumperless.ChipK, jumperless.DimX, 0}},
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
{Node_30, jumperless.Port{jumperless.ChipK, jumperless.DimX, 1}},
{Node_31, jumperless.Port{jumperless.ChipK, jumperless.DimX, 2}},
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
{Node_60, jumperless.Port{jumperless.ChipK, jumperless.DimX, 3}},
{NodeNANO_D0, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 0}},
{NodeNANO_D1, jumperless.Port{jumperless.ChipI, jumperless.DimX, 1}},
{NodeNANO_D2, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 2}},
{NodeNANO_D3, jumperless.Port{jumperless.ChipI, jumperless.DimX, 3}},
{NodeNANO_D4, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 4}},
{NodeNANO_D5, jumperless.Port{jumperless.ChipI, jumperless.DimX, 5}},
{NodeNANO_D6, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 6}},
{NodeNANO_D7, jumperless.Port{jumperless.ChipI, jumperless.DimX, 7}},
{NodeNANO_D8, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 8}},
{NodeNANO_D9, jumperless.Port{jumperless.ChipI, jumperless.DimX, 9}},
{NodeNANO_D10, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 9}},
{NodeNANO_D11, jumperless.Port{jumperless.ChipI, jumperless.DimX, 8}},
{NodeNANO_D12, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 10}},
{NodeNANO_D13, jumperless.Port{jumperless.ChipI, jumperless.DimX, 10}},
{NodeNANO_A0, jumperless.Port{jumperless.ChipI, jumperless.DimX, 0}},
{NodeNANO_A1, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 1}},
{NodeNANO_A2, jumperless.Port{jumperless.ChipI, jumperless.DimX, 2}},
{NodeNANO_A3, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 3}},
{NodeNANO_A4, jumperless.Port{jumperless.ChipI, jumperless.DimX, 4}},
{NodeNANO_A5, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 5}},
{NodeNANO_A6, jumperless.Port{jumperless.ChipI, jumperless.DimX, 6}},
{NodeNANO_A7, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 7}},
{NodeRP_UART_RX, jumperless.Port{jumperless.ChipI, jumperless.DimX, 11}},
{NodeRP_UART_TX, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 11}},
{NodeISENSE_PLUS, jumperless.Port{jumperless.ChipI, jumperless.DimX, 15}},
{NodeISENSE_MINUS, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 15}},
{NodeTOP_RAIL, jumperless.Port{jumperless.ChipK, jumperless.DimX, 4}},
{NodeBOTTOM_RAIL, jumperless.Port{jumperless.ChipK, jumperless.DimX, 5}},
{NodeDAC1, jumperless.Port{jumperless.ChipK, jumperless.DimX, 6}},
{NodeDAC0, jumperless.Port{jumperless.ChipK, jumperless.DimX, 7}},
{NodeADC0, jumperless.Port{jumperless.ChipK, jumperless.DimX, 8}},
{NodeADC1, jumperless.Port{jumperless.ChipK, jumperless.DimX, 9}},
{NodeADC2, jumperless.Port{jumperless.ChipK, jumperless.DimX, 10}},
{NodeADC3, jumperless.Port{jumperless.ChipK, jumperless.DimX, 11}},
{NodeNANO_RESET_J0, jumperless.Port{jumperless.ChipL, jumperless.DimX, 1}},
{NodeNANO_RESET_J1, jumperless.Port{jumperless.ChipL, jumperless.DimX, 2}},
{NodeNANO_AREF, jumperless.Port{jumperless.ChipL, jumperless.DimX, 3}},
{NodeGPIO_20, jumperless.Port{jumperless.ChipL, jumperless.DimX, 4}},
{NodeGPIO_21, jumperless.Port{jumperless.ChipL, jumperless.DimX, 5}},
{NodeGPIO_22, jumperless.Port{jumperless.ChipL, jumperless.DimX, 6}},
{NodeGPIO_23, jumperless.Port{jumperless.ChipL, jumperless.DimX, 7}},
{NodeGPIO_MCP_0, jumperless.Port{jumperless.ChipL, jumperless.DimX, 8}},
{NodeGPIO_MCP_1, jumperless.Port{jumperless.ChipL, jumperless.DimX, 9}},
{NodeGPIO_MCP_2, jumperless.Port{jumperless.ChipL, jumperless.DimX, 10}},
{NodeGPIO_MCP_3, jumperless.Port{jumperless.ChipL, jumperless.DimX, 11}},
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
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 13}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 0}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 0}},
	{jumperless.Port{jumperless.ChipA, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 1}},
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
	{jumperless.Port{jumperless.ChipB, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 1}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 4}, jumperless.Port{jumperless.ChipI, jumperless.DimY, 2}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 5}, jumperless.Port{jumperless.ChipJ, jumperless.DimY, 2}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 6}, jumperless.Port{jumperless.ChipD, jumperless.DimX, 4}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 7}, jumperless.Port{jumperless.ChipD, jumperless.DimX, 5}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 8}, jumperless.Port{jumperless.ChipE, jumperless.DimX, 4}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 9}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 2}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 10}, jumperless.Port{jumperless.ChipF, jumperless.DimX, 4}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 11}, jumperless.Port{jumperless.ChipF, jumperless.DimX, 5}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 12}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 4}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 13}, jumperless.Port{jumperless.ChipK, jumperless.DimY, 2}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 4}},
	{jumperless.Port{jumperless.ChipC, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 5}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 6}, jumperless.Port{jumperless.ChipI, jumperless.DimY, 3}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 7}, jumperless.Port{jumperless.ChipJ, jumperless.DimY, 3}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 8}, jumperless.Port{jumperless.ChipE, jumperless.DimX, 6}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 9}, jumperless.Port{jumperless.ChipE, jumperless.DimX, 7}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 10}, jumperless.Port{jumperless.ChipF, jumperless.DimX, 6}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 11}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 3}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 12}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 6}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 13}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 7}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 6}},
	{jumperless.Port{jumperless.ChipD, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipK, jumperless.DimY, 3}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 1}, jumperless.Port{jumperless.ChipK, jumperless.DimY, 4}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 5}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 4}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 8}, jumperless.Port{jumperless.ChipI, jumperless.DimY, 4}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 9}, jumperless.Port{jumperless.ChipJ, jumperless.DimY, 4}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 10}, jumperless.Port{jumperless.ChipF, jumperless.DimX, 8}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 11}, jumperless.Port{jumperless.ChipF, jumperless.DimX, 9}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 12}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 8}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 13}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 9}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 8}},
	{jumperless.Port{jumperless.ChipE, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 9}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimX, 3}, jumperless.Port{jumperless.ChipK, jumperless.DimY, 5}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimX, 7}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 5}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimX, 10}, jumperless.Port{jumperless.ChipI, jumperless.DimY, 5}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimX, 11}, jumperless.Port{jumperless.ChipJ, jumperless.DimY, 5}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimX, 12}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 10}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimX, 13}, jumperless.Port{jumperless.ChipG, jumperless.DimX, 11}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 10}},
	{jumperless.Port{jumperless.ChipF, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 11}},
	{jumperless.Port{jumperless.ChipG, jumperless.DimX, 1}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 6}},
	{jumperless.Port{jumperless.ChipG, jumperless.DimX, 5}, jumperless.Port{jumperless.ChipK, jumperless.DimY, 6}},
	{jumperless.Port{jumperless.ChipG, jumperless.DimX, 12}, jumperless.Port{jumperless.ChipI, jumperless.DimY, 6}},
	{jumperless.Port{jumperless.ChipG, jumperless.DimX, 13}, jumperless.Port{jumperless.ChipJ, jumperless.DimY, 6}},
	{jumperless.Port{jumperless.ChipG, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 12}},
	{jumperless.Port{jumperless.ChipG, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipH, jumperless.DimX, 13}},
	{jumperless.Port{jumperless.ChipH, jumperless.DimX, 3}, jumperless.Port{jumperless.ChipL, jumperless.DimY, 7}},
	{jumperless.Port{jumperless.ChipH, jumperless.DimX, 7}, jumperless.Port{jumperless.ChipK, jumperless.DimY, 7}},
	{jumperless.Port{jumperless.ChipH, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipI, jumperless.DimY, 7}},
	{jumperless.Port{jumperless.ChipH, jumperless.DimX, 15}, jumperless.Port{jumperless.ChipJ, jumperless.DimY, 7}},
	{jumperless.Port{jumperless.ChipI, jumperless.DimX, 12}, jumperless.Port{jumperless.ChipL, jumperless.DimX, 12}},
	{jumperless.Port{jumperless.ChipI, jumperless.DimX, 13}, jumperless.Port{jumperless.ChipJ, jumperless.DimX, 13}},
	{jumperless.Port{jumperless.ChipI, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipK, jumperless.DimX, 13}},
	{jumperless.Port{jumperless.ChipJ, jumperless.DimX, 12}, jumperless.Port{jumperless.ChipL, jumperless.DimX, 13}},
	{jumperless.Port{jumperless.ChipJ, jumperless.DimX, 14}, jumperless.Port{jumperless.ChipK, jumperless.DimX, 14}},
	{jumperless.Port{jumperless.ChipK, jumperless.DimX, 12}, jumperless.Port{jumperless.ChipL, jumperless.DimX, 14}},
}

var bouncePorts = []jumperless.Port{
	{jumperless.ChipA, jumperless.DimY, 0},
	{jumperless.ChipB, jumperless.DimY, 0},
	{jumperless.ChipC, jumperless.DimY, 0},
	{jumperless.ChipD, jumperless.DimY, 0},
	{jumperless.ChipE, jumperless.DimY, 0},
	{jumperless.ChipF, jumperless.DimY, 0},
	{jumperless.ChipG, jumperless.DimY, 0},
	{jumperless.ChipH, jumperless.DimY, 0},
}

// Spec returns the board spec for boardv5
// (107 nodes, 108 node-port entries, 86 lanes, 8 bounce ports).
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

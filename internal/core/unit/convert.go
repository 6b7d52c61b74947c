// Package unit 提供數量字串的單位換算與份量縮放
// 換算表為靜態設定，初始化後不得變更
package unit

import (
	"math"
	"strconv"
	"strings"

	"recipe-extractor/internal/pkg/common"
)

// conversion 單一目標系統的換算：標籤與乘數
type conversion struct {
	label  string
	factor float64
}

// conversionEntry 以公制為基準單位的雙系統換算
// metric 分支的乘數恆為 1.0
type conversionEntry struct {
	imperial conversion
	metric   conversion
}

// unitConversions 基準單位換算表
var unitConversions = map[string]conversionEntry{
	"g":      {imperial: conversion{"oz", 0.035274}, metric: conversion{"g", 1.0}},
	"kg":     {imperial: conversion{"lbs", 2.20462}, metric: conversion{"kg", 1.0}},
	"gram":   {imperial: conversion{"oz", 0.035274}, metric: conversion{"g", 1.0}},
	"ml":     {imperial: conversion{"fl oz", 0.033814}, metric: conversion{"ml", 1.0}},
	"l":      {imperial: conversion{"cups", 4.22675}, metric: conversion{"l", 1.0}},
	"pcs":    {imperial: conversion{"pcs", 1.0}, metric: conversion{"pcs", 1.0}},
	"piece":  {imperial: conversion{"piece", 1.0}, metric: conversion{"piece", 1.0}},
	"cup":    {imperial: conversion{"cup", 1.0}, metric: conversion{"cup", 1.0}},
}

// qualitativeQuantities 不做任何換算的定性數量片語
var qualitativeQuantities = map[string]struct{}{
	"as needed": {},
	"to taste":  {},
	"a pinch":   {},
}

// Convert 將數量字串換算到目標單位系統
// 失敗一律回傳原字串（fail-soft，不對呼叫端拋錯）：
// 定性片語、無法解析的數字、查無的單位都原樣通過
func Convert(qtyStr string, target common.UnitSystem) string {
	if _, ok := qualitativeQuantities[qtyStr]; ok {
		return qtyStr
	}

	numPart, unitPart, ok := splitQuantity(qtyStr)
	if !ok {
		return qtyStr
	}

	num, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return qtyStr
	}

	// 去掉複數字尾再查表（"cups" → "cup"）
	baseUnit := strings.TrimRight(strings.ToLower(unitPart), "s")
	entry, ok := unitConversions[baseUnit]
	if !ok {
		return qtyStr
	}

	conv := entry.metric
	if target == common.UnitSystemImperial {
		conv = entry.imperial
	}

	// 乘數為 1.0 時完全跳過乘法與捨入，避免引入多餘小數位
	newNum := num
	if conv.factor != 1.0 {
		newNum = math.Round(num*conv.factor*100) / 100
	}

	return formatNumber(newNum) + " " + conv.label
}

// Scale 依份量倍數縮放數量字串
// servings <= 1 不動作；開頭數字乘上份量後取一位小數，其餘原樣保留
func Scale(qtyStr string, servings int) string {
	if servings <= 1 {
		return qtyStr
	}

	numPart, rest, ok := splitQuantity(qtyStr)
	if !ok {
		// 沒有單位時整串可能就是數字
		numPart, rest = qtyStr, ""
	}

	num, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return qtyStr
	}

	scaled := math.Round(num*float64(servings)*10) / 10
	result := strconv.FormatFloat(scaled, 'f', 1, 64)
	if rest != "" {
		result += " " + rest
	}
	return result
}

// splitQuantity 以第一個空白切出開頭數字與其餘文字
func splitQuantity(qtyStr string) (num, rest string, ok bool) {
	trimmed := strings.TrimSpace(qtyStr)
	idx := strings.IndexAny(trimmed, " \t")
	if idx < 0 {
		return "", "", false
	}
	return trimmed[:idx], strings.TrimSpace(trimmed[idx+1:]), true
}

// formatNumber 輸出最短的數字表示，整數不帶小數點（"500" 而非 "500.0"）
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

package dto

import "strings"

const rawMaterialICSeparator = ","

// EncodeRawMaterialICs joins the references for storage. Elements must not
// contain the separator; request validation rejects those.
func EncodeRawMaterialICs(ics []string) string {
	if len(ics) == 0 {
		return ""
	}
	return strings.Join(ics, rawMaterialICSeparator)
}

// DecodeRawMaterialICs splits a stored value. An empty value is the absent
// list and decodes to nil.
func DecodeRawMaterialICs(stored string) []string {
	if stored == "" {
		return nil
	}
	return strings.Split(stored, rawMaterialICSeparator)
}

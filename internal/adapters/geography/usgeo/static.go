package usgeo

import (
	"context"
	"strings"
)

// Static valida abreviaturas contra la tabla embebida, sin red.
// Es el default del router cuando no hay servicio de geografía configurado.
type Static struct{}

func NewStatic() *Static { return &Static{} }

func (s *Static) ValidStateAbbreviation(_ context.Context, code string) (bool, error) {
	_, ok := stateAbbreviations[strings.ToUpper(strings.TrimSpace(code))]
	return ok, nil
}

// 50 estados + DC + territorios.
var stateAbbreviations = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {},
	"DE": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {},
	"IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {},
	"MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {},
	"NH": {}, "NJ": {}, "NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {},
	"OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {}, "SD": {}, "TN": {},
	"TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {},
	"WY": {},
	"DC": {}, "AS": {}, "GU": {}, "MP": {}, "PR": {}, "VI": {},
}

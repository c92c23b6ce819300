package gst

import "strings"

// indianStates holds the recognized state and union-territory names,
// lowercased for case-insensitive matching.
var indianStates = map[string]struct{}{
	"andhra pradesh":                           {},
	"arunachal pradesh":                        {},
	"assam":                                    {},
	"bihar":                                    {},
	"chhattisgarh":                             {},
	"goa":                                      {},
	"gujarat":                                  {},
	"haryana":                                  {},
	"himachal pradesh":                         {},
	"jharkhand":                                {},
	"karnataka":                                {},
	"kerala":                                   {},
	"madhya pradesh":                           {},
	"maharashtra":                              {},
	"manipur":                                  {},
	"meghalaya":                                {},
	"mizoram":                                  {},
	"nagaland":                                 {},
	"odisha":                                   {},
	"punjab":                                   {},
	"rajasthan":                                {},
	"sikkim":                                   {},
	"tamil nadu":                               {},
	"telangana":                                {},
	"tripura":                                  {},
	"uttar pradesh":                            {},
	"uttarakhand":                              {},
	"west bengal":                              {},
	"andaman and nicobar islands":              {},
	"chandigarh":                               {},
	"dadra and nagar haveli and daman and diu": {},
	"delhi":                                    {},
	"jammu and kashmir":                        {},
	"ladakh":                                   {},
	"lakshadweep":                              {},
	"puducherry":                               {},
}

func normalizeState(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// KnownState reports whether s is a recognized state or union territory.
func KnownState(s string) bool {
	_, ok := indianStates[normalizeState(s)]
	return ok
}

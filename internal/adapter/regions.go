package adapter

import "strings"

var knownRegions = map[string]struct{}{
	"us-east-1":      {},
	"us-east-2":      {},
	"us-west-1":      {},
	"us-west-2":      {},
	"ca-central-1":   {},
	"sa-east-1":      {},
	"eu-west-1":      {},
	"eu-west-2":      {},
	"eu-west-3":      {},
	"eu-central-1":   {},
	"eu-central-2":   {},
	"eu-north-1":     {},
	"eu-south-1":     {},
	"ap-south-1":     {},
	"ap-east-1":      {},
	"ap-northeast-1": {},
	"ap-northeast-2": {},
	"ap-northeast-3": {},
	"ap-southeast-1": {},
	"ap-southeast-2": {},
	"me-south-1":     {},
	"af-south-1":     {},
}

// NormalizeRegion accepts both "us-east-1" and "US_EAST_1".
func NormalizeRegion(region string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(region)), "_", "-")
}

// KnownRegion reports whether region names a supported region code.
func KnownRegion(region string) bool {
	_, ok := knownRegions[NormalizeRegion(region)]
	return ok
}
